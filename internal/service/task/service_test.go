package task

import (
	"context"
	"testing"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks map[string]task.Task
}

func newFakeTaskRepo(tasks ...task.Task) *fakeTaskRepo {
	repo := &fakeTaskRepo{tasks: make(map[string]task.Task)}
	for _, t := range tasks {
		repo.tasks[t.ID] = t
	}
	return repo
}

func (r *fakeTaskRepo) List(_ context.Context, filter task.Filter) ([]task.Task, error) {
	var out []task.Task
	for _, t := range r.tasks {
		if filter.LeaderID != "" && t.LeaderID != filter.LeaderID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id string) (*task.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, t task.Task) (*task.Task, error) {
	r.tasks[t.ID] = t
	return &t, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t task.Task) (*task.Task, error) {
	if _, ok := r.tasks[t.ID]; !ok {
		return nil, task.ErrTaskNotFound
	}
	r.tasks[t.ID] = t
	return &t, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return task.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) AddAllocation(_ context.Context, taskID string, alloc task.Allocation) (*task.Task, error) {
	t, ok := r.tasks[taskID]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	t.Allocations = append(t.Allocations, alloc)
	r.tasks[taskID] = t
	return &t, nil
}

func (r *fakeTaskRepo) RemoveAllocation(_ context.Context, taskID string, labourID string) (*task.Task, error) {
	t, ok := r.tasks[taskID]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	kept := t.Allocations[:0]
	for _, a := range t.Allocations {
		if a.LabourID != labourID {
			kept = append(kept, a)
		}
	}
	t.Allocations = kept
	r.tasks[taskID] = t
	return &t, nil
}

type fakePersonRepo struct {
	people map[string]person.Person
}

func newFakePersonRepo(people ...person.Person) *fakePersonRepo {
	repo := &fakePersonRepo{people: make(map[string]person.Person)}
	for _, p := range people {
		repo.people[p.ID] = p
	}
	return repo
}

func (r *fakePersonRepo) FindByRole(context.Context, []person.Role) ([]person.Person, error) {
	return nil, nil
}
func (r *fakePersonRepo) FindByID(_ context.Context, id string) (*person.Person, error) {
	p, ok := r.people[id]
	if !ok {
		return nil, person.ErrPersonNotFound
	}
	return &p, nil
}
func (r *fakePersonRepo) FindByEmail(context.Context, string) (*person.Person, error) {
	return nil, person.ErrPersonNotFound
}
func (r *fakePersonRepo) List(context.Context) ([]person.Person, error) { return nil, nil }
func (r *fakePersonRepo) Create(_ context.Context, p person.Person) (*person.Person, error) {
	r.people[p.ID] = p
	return &p, nil
}
func (r *fakePersonRepo) Update(_ context.Context, p person.Person) (*person.Person, error) {
	r.people[p.ID] = p
	return &p, nil
}
func (r *fakePersonRepo) Deactivate(context.Context, string) error { return nil }

var (
	hrActor     = task.Actor{ID: "h1", Role: "hr"}
	leaderActor = task.Actor{ID: "l1", Role: "leader"}
)

func seedPeople() *fakePersonRepo {
	return newFakePersonRepo(
		person.Person{ID: "l1", Name: "Amara", Role: person.RoleLeader, IsActive: true},
		person.Person{ID: "l2", Name: "Bimal", Role: person.RoleLeader, IsActive: true},
		person.Person{ID: "w1", Name: "Kasun", Role: person.RoleLabour, IsActive: true},
	)
}

func TestList_LeaderScopedToOwn(t *testing.T) {
	taskRepo := newFakeTaskRepo(
		task.Task{ID: "t1", LeaderID: "l1"},
		task.Task{ID: "t2", LeaderID: "l2"},
	)
	svc := NewTaskService(taskRepo, seedPeople())

	own, err := svc.List(context.Background(), leaderActor)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "t1", own[0].ID)

	all, err := svc.List(context.Background(), hrActor)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreate_DefaultsToPending(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, seedPeople())

	created, err := svc.Create(context.Background(), leaderActor, task.CreateRequest{
		Title:           "Clear north field",
		LeaderID:        "l1",
		ExpectedManDays: 3,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.Equal(t, "Amara", created.LeaderName)
	assert.NotNil(t, created.Allocations)
	assert.Empty(t, created.Allocations)
}

func TestCreate_NormalizesStatusSpelling(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), seedPeople())

	created, err := svc.Create(context.Background(), hrActor, task.CreateRequest{
		Title:    "Fence repair",
		LeaderID: "l2",
		Status:   "in-progress",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, created.Status)

	_, err = svc.Create(context.Background(), hrActor, task.CreateRequest{
		Title:    "Bad status",
		LeaderID: "l2",
		Status:   "cancelled",
	})
	assert.ErrorIs(t, err, task.ErrInvalidTaskStatus)
}

func TestCreate_LeaderOnlyForSelf(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), seedPeople())

	_, err := svc.Create(context.Background(), leaderActor, task.CreateRequest{
		Title:    "Someone else's task",
		LeaderID: "l2",
	})
	assert.ErrorIs(t, err, task.ErrNotTaskLeader)
}

func TestUpdate_LeaderCannotTouchOthers(t *testing.T) {
	taskRepo := newFakeTaskRepo(task.Task{ID: "t2", LeaderID: "l2", Status: task.StatusPending})
	svc := NewTaskService(taskRepo, seedPeople())

	title := "Renamed"
	_, err := svc.Update(context.Background(), leaderActor, "t2", task.UpdateRequest{Title: &title})
	assert.ErrorIs(t, err, task.ErrNotTaskLeader)

	// hr can.
	updated, err := svc.Update(context.Background(), hrActor, "t2", task.UpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestUpdate_PartialFields(t *testing.T) {
	taskRepo := newFakeTaskRepo(task.Task{
		ID: "t1", LeaderID: "l1", Title: "Original", Status: task.StatusPending, ExpectedManDays: 2,
	})
	svc := NewTaskService(taskRepo, seedPeople())

	status := "completed"
	updated, err := svc.Update(context.Background(), leaderActor, "t1", task.UpdateRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, task.StatusCompleted, updated.Status)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, 2, updated.ExpectedManDays)
}

func TestDelete(t *testing.T) {
	taskRepo := newFakeTaskRepo(task.Task{ID: "t1", LeaderID: "l1"})
	svc := NewTaskService(taskRepo, seedPeople())

	require.NoError(t, svc.Delete(context.Background(), leaderActor, "t1"))
	assert.Empty(t, taskRepo.tasks)

	err := svc.Delete(context.Background(), leaderActor, "t1")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestAllocate(t *testing.T) {
	taskRepo := newFakeTaskRepo(task.Task{ID: "t1", LeaderID: "l1"})
	svc := NewTaskService(taskRepo, seedPeople())

	updated, err := svc.Allocate(context.Background(), leaderActor, "t1", task.AllocateRequest{LabourID: "w1"})
	require.NoError(t, err)

	require.Len(t, updated.Allocations, 1)
	assert.Equal(t, "w1", updated.Allocations[0].LabourID)
	assert.Equal(t, "Kasun", updated.Allocations[0].LabourName)
	assert.False(t, updated.Allocations[0].AllocatedAt.IsZero())
}

func TestAllocate_Duplicate(t *testing.T) {
	taskRepo := newFakeTaskRepo(task.Task{ID: "t1", LeaderID: "l1", Allocations: []task.Allocation{
		{LabourID: "w1", AllocatedAt: time.Now()},
	}})
	svc := NewTaskService(taskRepo, seedPeople())

	_, err := svc.Allocate(context.Background(), leaderActor, "t1", task.AllocateRequest{LabourID: "w1"})
	assert.ErrorIs(t, err, task.ErrAlreadyAllocated)
}

func TestAllocate_UnknownLabour(t *testing.T) {
	taskRepo := newFakeTaskRepo(task.Task{ID: "t1", LeaderID: "l1"})
	svc := NewTaskService(taskRepo, seedPeople())

	_, err := svc.Allocate(context.Background(), leaderActor, "t1", task.AllocateRequest{LabourID: "ghost"})
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestDeallocate(t *testing.T) {
	taskRepo := newFakeTaskRepo(task.Task{ID: "t1", LeaderID: "l1", Allocations: []task.Allocation{
		{LabourID: "w1"},
	}})
	svc := NewTaskService(taskRepo, seedPeople())

	updated, err := svc.Deallocate(context.Background(), leaderActor, "t1", "w1")
	require.NoError(t, err)
	assert.Empty(t, updated.Allocations)

	_, err = svc.Deallocate(context.Background(), leaderActor, "t1", "w1")
	assert.ErrorIs(t, err, task.ErrAllocationNotFound)
}
