package repository

import (
	"context"

	"github.com/maxviazov/user-directory/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UserRepository declares storage operations for users.
// Implementations own identifier assignment: Create ignores any ID on its input.
// Lookups on a missing ID surface ErrNotFound; Delete reports a miss as false.
type UserRepository interface {
	// List returns every user in insertion order. The slice is a copy.
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	// Update overwrites the mutable fields of an existing user in place.
	Update(ctx context.Context, id int64, u model.User) (model.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
