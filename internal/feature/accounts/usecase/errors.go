// Package usecase implements the business logic for the accounts feature.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned when a user cannot be found by ID or username.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when creating or updating a user would
	// violate the username/email uniqueness invariant.
	ErrDuplicateAccount = errors.New("username or email already in use")

	// ErrInvalidCredentials is returned on login when the user is absent or the
	// password does not verify. Both causes collapse into this single error so
	// the response never reveals whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrResetCodeNotFound is returned when no pending reset request matches the
	// given username and code. A stale code (overwritten by a newer request) and
	// an already-redeemed code both surface as this error.
	ErrResetCodeNotFound = errors.New("reset code not found")

	// ErrPasswordMismatch is returned when the new password and its confirmation
	// do not match during reset-password.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
