package task

import "context"

// Actor identifies the authenticated caller for role checks.
type Actor struct {
	ID   string
	Role string
}

type Service interface {
	// List returns tasks; leader actors only see their own.
	List(ctx context.Context, actor Actor) ([]Task, error)
	Get(ctx context.Context, actor Actor, id string) (*Task, error)
	Create(ctx context.Context, actor Actor, req CreateRequest) (*Task, error)
	Update(ctx context.Context, actor Actor, id string, req UpdateRequest) (*Task, error)
	Delete(ctx context.Context, actor Actor, id string) error
	Allocate(ctx context.Context, actor Actor, taskID string, req AllocateRequest) (*Task, error)
	Deallocate(ctx context.Context, actor Actor, taskID string, labourID string) (*Task, error)
}
