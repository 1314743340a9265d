package allocation

import (
	"context"
	"testing"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/dayrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotRepo struct {
	labourSnaps map[string]allocation.LabourSnapshot
	taskSnaps   map[string]allocation.TaskSnapshot
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{
		labourSnaps: make(map[string]allocation.LabourSnapshot),
		taskSnaps:   make(map[string]allocation.TaskSnapshot),
	}
}

func (r *fakeSnapshotRepo) FindLabourSnapshot(_ context.Context, start, end time.Time) (*allocation.LabourSnapshot, error) {
	for _, snap := range r.labourSnaps {
		if !snap.Date.Before(start) && !snap.Date.After(end) {
			s := snap
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSnapshotRepo) FindTaskSnapshot(_ context.Context, start, end time.Time) (*allocation.TaskSnapshot, error) {
	for _, snap := range r.taskSnaps {
		if !snap.Date.Before(start) && !snap.Date.After(end) {
			s := snap
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSnapshotRepo) UpsertLabourSnapshot(_ context.Context, snap allocation.LabourSnapshot) (*allocation.LabourSnapshot, bool, error) {
	_, replaced := r.labourSnaps[snap.DateKey]
	r.labourSnaps[snap.DateKey] = snap
	return &snap, replaced, nil
}

func (r *fakeSnapshotRepo) UpsertTaskSnapshot(_ context.Context, snap allocation.TaskSnapshot) (*allocation.TaskSnapshot, bool, error) {
	_, replaced := r.taskSnaps[snap.DateKey]
	r.taskSnaps[snap.DateKey] = snap
	return &snap, replaced, nil
}

type fakePersonRepo struct {
	people []person.Person
}

func (r *fakePersonRepo) FindByRole(_ context.Context, roles []person.Role) ([]person.Person, error) {
	var out []person.Person
	for _, p := range r.people {
		if !p.IsActive {
			continue
		}
		for _, role := range roles {
			if p.Role == role {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}
func (r *fakePersonRepo) FindByID(context.Context, string) (*person.Person, error) {
	return nil, person.ErrPersonNotFound
}
func (r *fakePersonRepo) FindByEmail(context.Context, string) (*person.Person, error) {
	return nil, person.ErrPersonNotFound
}
func (r *fakePersonRepo) List(context.Context) ([]person.Person, error) { return r.people, nil }
func (r *fakePersonRepo) Create(_ context.Context, p person.Person) (*person.Person, error) {
	return &p, nil
}
func (r *fakePersonRepo) Update(_ context.Context, p person.Person) (*person.Person, error) {
	return &p, nil
}
func (r *fakePersonRepo) Deactivate(context.Context, string) error { return nil }

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (r *fakeAttendanceRepo) FindInRange(context.Context, time.Time, time.Time) ([]attendance.Record, error) {
	return r.records, nil
}
func (r *fakeAttendanceRepo) FindByPersonInRange(context.Context, string, time.Time, time.Time) ([]attendance.Record, error) {
	return r.records, nil
}
func (r *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (*attendance.Record, bool, error) {
	return &rec, false, nil
}

type fakeTaskRepo struct {
	tasks []task.Task
}

func (r *fakeTaskRepo) List(context.Context, task.Filter) ([]task.Task, error) { return r.tasks, nil }
func (r *fakeTaskRepo) FindByID(context.Context, string) (*task.Task, error) {
	return nil, task.ErrTaskNotFound
}
func (r *fakeTaskRepo) Create(_ context.Context, t task.Task) (*task.Task, error) { return &t, nil }
func (r *fakeTaskRepo) Update(_ context.Context, t task.Task) (*task.Task, error) { return &t, nil }
func (r *fakeTaskRepo) Delete(context.Context, string) error                      { return nil }
func (r *fakeTaskRepo) AddAllocation(context.Context, string, task.Allocation) (*task.Task, error) {
	return nil, task.ErrTaskNotFound
}
func (r *fakeTaskRepo) RemoveAllocation(context.Context, string, string) (*task.Task, error) {
	return nil, task.ErrTaskNotFound
}

func newService(snapRepo *fakeSnapshotRepo, people []person.Person, records []attendance.Record, tasks []task.Task) allocation.Service {
	return NewAllocationService(
		snapRepo,
		&fakePersonRepo{people: people},
		&fakeAttendanceRepo{records: records},
		&fakeTaskRepo{tasks: tasks},
		dayrange.DefaultOffsetMinutes,
		nil,
	)
}

func TestLeadersStatus(t *testing.T) {
	people := []person.Person{
		{ID: "l1", Name: "Amara", Role: person.RoleLeader, IsActive: true},
		{ID: "l2", Name: "Bimal", Role: person.RoleLeader, IsActive: true},
		{ID: "w1", Name: "Kasun", Role: person.RoleLabour, IsActive: true},
	}
	records := []attendance.Record{
		{PersonID: "l1", Status: attendance.StatusPresent},
	}
	tasks := []task.Task{
		{ID: "t1", LeaderID: "l1", Status: task.StatusPending, Allocations: []task.Allocation{
			{LabourID: "w1"}, {LabourID: "w2"},
		}},
		{ID: "t2", LeaderID: "l1", Status: task.StatusCompleted, Allocations: []task.Allocation{
			{LabourID: "w3"},
		}},
	}

	svc := newService(newFakeSnapshotRepo(), people, records, tasks)
	out, err := svc.LeadersStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Leaders, 2)

	byID := make(map[string]allocation.LeaderStatus)
	for _, ls := range out.Leaders {
		byID[ls.LeaderID] = ls
	}

	l1 := byID["l1"]
	assert.Equal(t, attendance.StatusPresent, l1.AttendanceStatus)
	assert.True(t, l1.IsWorking)
	assert.Equal(t, 2, l1.TasksCount)
	assert.Equal(t, 3, l1.LabourCount)

	l2 := byID["l2"]
	assert.Equal(t, attendance.StatusNotMarked, l2.AttendanceStatus)
	assert.False(t, l2.IsWorking)
	assert.Equal(t, 0, l2.TasksCount)
	assert.Equal(t, 0, l2.LabourCount)
}

func TestSaveLabourSnapshot_EmptyAllocations(t *testing.T) {
	svc := newService(newFakeSnapshotRepo(), nil, nil, nil)

	_, err := svc.SaveLabourSnapshot(context.Background(), "hr-1", allocation.SaveLabourSnapshotRequest{})
	assert.ErrorIs(t, err, allocation.ErrEmptyAllocations)
}

func TestSaveLabourSnapshot_TotalDefaultsToSum(t *testing.T) {
	snapRepo := newFakeSnapshotRepo()
	svc := newService(snapRepo, nil, nil, nil)

	snap, err := svc.SaveLabourSnapshot(context.Background(), "hr-1", allocation.SaveLabourSnapshotRequest{
		Date: "2024-03-15",
		LeaderAllocations: []allocation.LeaderAllocationItem{
			{LeaderID: "l1", LabourCount: 3},
			{LeaderID: "l2", LabourCount: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", snap.DateKey)
	assert.Equal(t, 5, snap.TotalLabourCount)
	assert.Equal(t, "hr-1", snap.SavedBy)
	assert.Len(t, snapRepo.labourSnaps, 1)
}

func TestSaveLabourSnapshot_ExplicitTotalKept(t *testing.T) {
	svc := newService(newFakeSnapshotRepo(), nil, nil, nil)

	snap, err := svc.SaveLabourSnapshot(context.Background(), "hr-1", allocation.SaveLabourSnapshotRequest{
		Date:             "2024-03-15",
		TotalLabourCount: 10,
		LeaderAllocations: []allocation.LeaderAllocationItem{
			{LeaderID: "l1", LabourCount: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, snap.TotalLabourCount)
}

func TestSaveLabourSnapshot_SameDayReplaces(t *testing.T) {
	snapRepo := newFakeSnapshotRepo()
	svc := newService(snapRepo, nil, nil, nil)

	req := allocation.SaveLabourSnapshotRequest{
		Date: "2024-03-15",
		LeaderAllocations: []allocation.LeaderAllocationItem{
			{LeaderID: "l1", LabourCount: 3},
		},
	}
	_, err := svc.SaveLabourSnapshot(context.Background(), "hr-1", req)
	require.NoError(t, err)

	req.LeaderAllocations[0].LabourCount = 8
	snap, err := svc.SaveLabourSnapshot(context.Background(), "hr-2", req)
	require.NoError(t, err)

	assert.Len(t, snapRepo.labourSnaps, 1)
	assert.Equal(t, 8, snap.TotalLabourCount)
	assert.Equal(t, "hr-2", snap.SavedBy)
}

func TestSaveTaskSnapshot_BuildsFromLiveTasks(t *testing.T) {
	snapRepo := newFakeSnapshotRepo()
	tasks := []task.Task{
		{ID: "t1", Title: "Clear north field", Status: task.StatusPending, LeaderID: "l1",
			Allocations: []task.Allocation{{LabourID: "w1"}}},
		{ID: "t2", Title: "Fence repair", Status: task.StatusCompleted, LeaderID: "l2"},
		{ID: "t3", Title: "Irrigation check", Status: task.StatusOnHold, LeaderID: "l1"},
	}
	svc := newService(snapRepo, nil, nil, tasks)

	snap, err := svc.SaveTaskSnapshot(context.Background(), "hr-1", allocation.SaveTaskSnapshotRequest{Date: "2024-03-15"})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", snap.DateKey)
	require.Len(t, snap.TaskAllocations, 3)
	assert.Equal(t, 1, snap.Summary.Active)
	assert.Equal(t, 1, snap.Summary.Completed)
	assert.Equal(t, 3, snap.Summary.Total)
	assert.Equal(t, 1, snap.TaskAllocations[0].LabourCount)
}

func TestUpdateCompanyStats_CreatesBareSnapshot(t *testing.T) {
	snapRepo := newFakeSnapshotRepo()
	svc := newService(snapRepo, nil, nil, nil)

	snap, err := svc.UpdateCompanyStats(context.Background(), "hr-1", allocation.UpdateCompanyStatsRequest{
		Date: "2024-03-15",
		CompanyStats: []allocation.CompanyStatItem{
			{Name: "Ram studios", Count: 4},
		},
	})
	require.NoError(t, err)

	require.Len(t, snap.CompanyStats, 1)
	assert.Equal(t, "Ram studios", snap.CompanyStats[0].Name)
	assert.Empty(t, snap.LeaderAllocations)
}

func TestUpdateCompanyStats_PreservesExistingAllocations(t *testing.T) {
	snapRepo := newFakeSnapshotRepo()
	svc := newService(snapRepo, nil, nil, nil)

	_, err := svc.SaveLabourSnapshot(context.Background(), "hr-1", allocation.SaveLabourSnapshotRequest{
		Date: "2024-03-15",
		LeaderAllocations: []allocation.LeaderAllocationItem{
			{LeaderID: "l1", LabourCount: 6},
		},
	})
	require.NoError(t, err)

	snap, err := svc.UpdateCompanyStats(context.Background(), "hr-2", allocation.UpdateCompanyStatsRequest{
		Date: "2024-03-15",
		CompanyStats: []allocation.CompanyStatItem{
			{Name: "Rise Technology", Count: 9},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, snap.TotalLabourCount)
	require.Len(t, snap.LeaderAllocations, 1)
	require.Len(t, snap.CompanyStats, 1)
	assert.Equal(t, 9, snap.CompanyStats[0].Count)
}

func TestAutoSave_WritesBothSnapshots(t *testing.T) {
	snapRepo := newFakeSnapshotRepo()
	people := []person.Person{
		{ID: "l1", Name: "Amara", Role: person.RoleLeader, IsActive: true},
	}
	tasks := []task.Task{
		{ID: "t1", LeaderID: "l1", Status: task.StatusInProgress, Allocations: []task.Allocation{
			{LabourID: "w1"}, {LabourID: "w2"},
		}},
	}
	svc := newService(snapRepo, people, nil, tasks)

	require.NoError(t, svc.AutoSave(context.Background()))

	require.Len(t, snapRepo.labourSnaps, 1)
	require.Len(t, snapRepo.taskSnaps, 1)
	for _, snap := range snapRepo.labourSnaps {
		assert.Equal(t, "auto-save", snap.SavedBy)
		assert.Equal(t, 2, snap.TotalLabourCount)
		require.Len(t, snap.LeaderAllocations, 1)
		assert.Equal(t, attendance.StatusNotMarked, snap.LeaderAllocations[0].AttendanceStatus)
	}
}

func TestAutoSave_PreservesCompanyStats(t *testing.T) {
	snapRepo := newFakeSnapshotRepo()
	svc := newService(snapRepo, nil, nil, nil)

	// HR edits company stats for today, then the periodic save runs.
	_, err := svc.UpdateCompanyStats(context.Background(), "hr-1", allocation.UpdateCompanyStatsRequest{
		CompanyStats: []allocation.CompanyStatItem{
			{Name: "CodeGen/AiGrow", Count: 5},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AutoSave(context.Background()))

	require.Len(t, snapRepo.labourSnaps, 1)
	for _, snap := range snapRepo.labourSnaps {
		require.Len(t, snap.CompanyStats, 1)
		assert.Equal(t, 5, snap.CompanyStats[0].Count)
		assert.Equal(t, "auto-save", snap.SavedBy)
	}
}
