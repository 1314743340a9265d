package person

import "context"

type Repository interface {
	// FindByRole returns active people holding any of the given roles.
	FindByRole(ctx context.Context, roles []Role) ([]Person, error)
	FindByID(ctx context.Context, id string) (*Person, error)
	FindByEmail(ctx context.Context, email string) (*Person, error)
	List(ctx context.Context) ([]Person, error)
	Create(ctx context.Context, p Person) (*Person, error)
	Update(ctx context.Context, p Person) (*Person, error)
	// Deactivate soft-deletes by clearing the IsActive flag.
	Deactivate(ctx context.Context, id string) error
}
