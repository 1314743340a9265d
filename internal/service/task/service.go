package task

import (
	"context"
	"fmt"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/google/uuid"
)

type TaskServiceImpl struct {
	taskRepo   task.Repository
	personRepo person.Repository
}

func NewTaskService(taskRepo task.Repository, personRepo person.Repository) task.Service {
	return &TaskServiceImpl{taskRepo: taskRepo, personRepo: personRepo}
}

func (s *TaskServiceImpl) List(ctx context.Context, actor task.Actor) ([]task.Task, error) {
	filter := task.Filter{}
	if actor.Role == string(person.RoleLeader) {
		filter.LeaderID = actor.ID
	}
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, actor task.Actor, id string) (*task.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskServiceImpl) Create(ctx context.Context, actor task.Actor, req task.CreateRequest) (*task.Task, error) {
	// A leader can only create tasks for themselves.
	if actor.Role == string(person.RoleLeader) && req.LeaderID != actor.ID {
		return nil, task.ErrNotTaskLeader
	}

	leader, err := s.personRepo.FindByID(ctx, req.LeaderID)
	if err != nil {
		return nil, err
	}

	status := task.StatusPending
	if req.Status != "" {
		normalized, ok := task.NormalizeStatus(req.Status)
		if !ok {
			return nil, task.ErrInvalidTaskStatus
		}
		status = normalized
	}

	now := time.Now().UTC()
	created, err := s.taskRepo.Create(ctx, task.Task{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Status:          status,
		LeaderID:        leader.ID,
		LeaderName:      leader.Name,
		ExpectedManDays: req.ExpectedManDays,
		Allocations:     []task.Allocation{},
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, actor task.Actor, id string, req task.UpdateRequest) (*task.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, t); err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.ExpectedManDays != nil {
		t.ExpectedManDays = *req.ExpectedManDays
	}
	if req.Status != nil {
		normalized, ok := task.NormalizeStatus(*req.Status)
		if !ok {
			return nil, task.ErrInvalidTaskStatus
		}
		t.Status = normalized
	}
	t.UpdatedAt = time.Now().UTC()

	updated, err := s.taskRepo.Update(ctx, *t)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, actor task.Actor, id string) error {
	t, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, t); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskServiceImpl) Allocate(ctx context.Context, actor task.Actor, taskID string, req task.AllocateRequest) (*task.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, t); err != nil {
		return nil, err
	}

	for _, alloc := range t.Allocations {
		if alloc.LabourID == req.LabourID {
			return nil, task.ErrAlreadyAllocated
		}
	}

	labour, err := s.personRepo.FindByID(ctx, req.LabourID)
	if err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.AddAllocation(ctx, taskID, task.Allocation{
		LabourID:    labour.ID,
		LabourName:  labour.Name,
		AllocatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate labourer: %w", err)
	}
	return updated, nil
}

func (s *TaskServiceImpl) Deallocate(ctx context.Context, actor task.Actor, taskID string, labourID string) (*task.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, t); err != nil {
		return nil, err
	}

	found := false
	for _, alloc := range t.Allocations {
		if alloc.LabourID == labourID {
			found = true
			break
		}
	}
	if !found {
		return nil, task.ErrAllocationNotFound
	}

	updated, err := s.taskRepo.RemoveAllocation(ctx, taskID, labourID)
	if err != nil {
		return nil, fmt.Errorf("failed to deallocate labourer: %w", err)
	}
	return updated, nil
}

// authorize lets hr act on any task; a leader only on their own.
func (s *TaskServiceImpl) authorize(actor task.Actor, t *task.Task) error {
	if actor.Role == string(person.RoleHR) {
		return nil
	}
	if t.LeaderID != actor.ID {
		return task.ErrNotTaskLeader
	}
	return nil
}
