package ports

import (
	"context"

	"cafeteria/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the user directory.
type UserRepository interface {
	// Add persists a new user and returns it with its assigned id.
	// Returns *errs.ConflictError when the email is already registered.
	Add(ctx context.Context, aggregate *user.User) (*user.User, error)

	// Update persists name, email, role and active flag.
	// Returns *errs.ConflictError when the new email belongs to another user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get returns *errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail looks the email up case-insensitively.
	// Returns *errs.ObjectNotFoundError when no user has it.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
