package task

import "context"

// Filter narrows task listings. Zero values mean "any".
type Filter struct {
	LeaderID string
	Status   Status
}

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Task, error)
	FindByID(ctx context.Context, id string) (*Task, error)
	Create(ctx context.Context, t Task) (*Task, error)
	Update(ctx context.Context, t Task) (*Task, error)
	Delete(ctx context.Context, id string) error
	AddAllocation(ctx context.Context, taskID string, alloc Allocation) (*Task, error)
	RemoveAllocation(ctx context.Context, taskID string, labourID string) (*Task, error)
}
