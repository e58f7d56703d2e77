package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/platform/password"
)

// accountUsecase implements the account-management business logic.
type accountUsecase struct {
	users UserRepository
}

// NewAccountUsecase creates a new instance of accountUsecase.
func NewAccountUsecase(users UserRepository) *accountUsecase {
	return &accountUsecase{users: users}
}

// CreateAccount registers a new user with a hashed password and returns the
// assigned user ID. The plaintext password is never persisted.
// It returns ErrDuplicateAccount if the username or email is already in use;
// the storage-layer unique constraint is the source of truth, so concurrent
// creates cannot both succeed.
func (u *accountUsecase) CreateAccount(ctx context.Context, username, fullname, email, plain string) (string, error) {
	hashed, err := password.Hash(plain)
	if err != nil {
		return "", err
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Username: username,
		Fullname: fullname,
		Email:    email,
		Password: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetAccount retrieves a single user by ID.
// It returns ErrAccountNotFound if the user does not exist.
func (u *accountUsecase) GetAccount(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// ListAccounts retrieves all users.
func (u *accountUsecase) ListAccounts(ctx context.Context) ([]*entity.User, error) {
	return u.users.FindAll(ctx)
}

// UpdateAccount replaces the profile fields of an existing user.
// The password hash is never touched by this operation.
// It returns ErrAccountNotFound if the user does not exist and
// ErrDuplicateAccount if the new username or email collides with a
// different user.
func (u *accountUsecase) UpdateAccount(ctx context.Context, id, username, fullname, email string) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Username = username
	user.Fullname = fullname
	user.Email = email

	if err := u.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update account %s: %w", id, err)
	}
	return nil
}

// DeleteAccount removes a user permanently (hard delete).
// It returns ErrAccountNotFound if the user does not exist.
func (u *accountUsecase) DeleteAccount(ctx context.Context, id string) error {
	return u.users.Delete(ctx, id)
}
