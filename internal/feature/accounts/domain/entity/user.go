// Package entity defines the domain entities for the accounts feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user (UUID string).
	// It is assigned once at creation time and never changes.
	ID string `gorm:"primaryKey;size:36"`

	// Username is the unique login name for the user.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// Fullname is the user's display name.
	Fullname string `gorm:"size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
