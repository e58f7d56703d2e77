package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/usecase"
)

// resetPostgres is a PostgreSQL implementation of the ResetRequestRepository
// interface. The unique index on user_id is the guarantee that two concurrent
// forgot-password calls cannot leave two active rows for the same user.
type resetPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure resetPostgres implements ResetRequestRepository.
var _ usecase.ResetRequestRepository = (*resetPostgres)(nil)

// NewResetPostgres creates a new instance of resetPostgres.
func NewResetPostgres(db *gorm.DB) *resetPostgres {
	return &resetPostgres{db: db}
}

// Upsert creates the reset request, or overwrites the code of the existing
// request for the same user in a single atomic statement.
func (r *resetPostgres) Upsert(ctx context.Context, req *entity.PasswordReset) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "code", "updated_at"}),
		}).
		Create(req).Error
}

// FindByUserID retrieves the active reset request for a user.
func (r *resetPostgres) FindByUserID(ctx context.Context, userID string) (*entity.PasswordReset, error) {
	var req entity.PasswordReset
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrResetCodeNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByUsernameAndCode retrieves the request matching both username and code.
// A stale code (already overwritten by a newer request) matches nothing.
func (r *resetPostgres) FindByUsernameAndCode(ctx context.Context, username string, code int) (*entity.PasswordReset, error) {
	var req entity.PasswordReset
	if err := r.db.WithContext(ctx).
		Where("username = ? AND code = ?", username, code).
		First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrResetCodeNotFound
		}
		return nil, err
	}
	return &req, nil
}

// DeleteByUserID removes the active reset request for a user.
// Deleting a non-existent request is not an error.
func (r *resetPostgres) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Delete(&entity.PasswordReset{}, "user_id = ?", userID).Error
}
