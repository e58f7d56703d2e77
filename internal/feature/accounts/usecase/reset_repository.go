package usecase

import (
	"context"

	"account_backend/internal/feature/accounts/domain/entity"
)

// ResetRequestRepository abstracts the persistence layer for pending
// forgot-password requests. Implementations must guarantee at most one
// active request per user: Upsert overwrites any existing record for the
// same UserID rather than creating a second one, even under concurrent
// callers.
type ResetRequestRepository interface {
	// Upsert creates the request, or overwrites the code of the existing
	// request for the same user (latest-wins).
	Upsert(ctx context.Context, req *entity.PasswordReset) error

	// FindByUserID retrieves the active request for a user.
	// It returns ErrResetCodeNotFound if none exists.
	FindByUserID(ctx context.Context, userID string) (*entity.PasswordReset, error)

	// FindByUsernameAndCode retrieves the request matching both username and
	// code exactly. It returns ErrResetCodeNotFound if no such request exists.
	FindByUsernameAndCode(ctx context.Context, username string, code int) (*entity.PasswordReset, error)

	// DeleteByUserID removes the active request for a user, making the code
	// unredeemable. Deleting a non-existent request is not an error.
	DeleteByUserID(ctx context.Context, userID string) error
}
