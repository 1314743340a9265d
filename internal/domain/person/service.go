package person

import "context"

type Service interface {
	List(ctx context.Context, role string) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Response, error)
	Deactivate(ctx context.Context, id string) error
}
