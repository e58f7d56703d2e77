package usecase

import (
	"context"

	"account_backend/internal/feature/accounts/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
//
// The storage layer is the source of truth for username/email uniqueness;
// any application-level check is advisory only.
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrDuplicateAccount if the username or email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	// It returns ErrAccountNotFound if the user does not exist.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a user by username.
	// It returns ErrAccountNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves all users ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update persists changes to an existing user.
	// It returns ErrDuplicateAccount if the new username or email collides
	// with a different user.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword overwrites the stored password hash for a user.
	// It returns ErrAccountNotFound if the user does not exist.
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// Delete removes a user from the storage.
	// It returns ErrAccountNotFound if the user does not exist.
	Delete(ctx context.Context, id string) error
}
