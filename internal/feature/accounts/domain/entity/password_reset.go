package entity

import "time"

// PasswordReset represents a pending forgot-password request.
// At most one record exists per user; a new request for the same user
// overwrites the code in place (latest-wins).
type PasswordReset struct {
	// ID is the unique identifier for the request (UUID string),
	// independent of the user's identity.
	ID string `gorm:"primaryKey;size:36"`

	// UserID references the owning user. The unique index enforces the
	// one-active-request-per-user invariant at the storage layer.
	UserID string `gorm:"uniqueIndex;size:36;not null"`

	// Username is a denormalized copy of the owning user's username,
	// used to match redeem attempts without a join.
	Username string `gorm:"index;size:64;not null"`

	// Code is the 4-digit reset code in [1000, 9999].
	Code int `gorm:"not null"`

	// CreatedAt is the timestamp when the request was first created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the code was last reissued.
	UpdatedAt time.Time
}
