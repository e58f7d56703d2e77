package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/usecase"
)

// newTestReset builds a persistable reset request entity.
func newTestReset(userID, username string, code int) *entity.PasswordReset {
	return &entity.PasswordReset{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: username,
		Code:     code,
	}
}

func TestResetPostgres_Upsert(t *testing.T) {
	t.Run("creates a new request", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		req := newTestReset("user-1", "alice", 1234)
		err := repo.Upsert(context.Background(), req)

		assert.NoError(t, err, "failed to upsert request")

		found, err := repo.FindByUserID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1234, found.Code)
	})

	t.Run("overwrites the code for the same user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		first := newTestReset("user-1", "alice", 1234)
		require.NoError(t, repo.Upsert(context.Background(), first))

		second := newTestReset("user-1", "alice", 5678)
		second.ID = first.ID
		require.NoError(t, repo.Upsert(context.Background(), second))

		// Only one row per user, holding the latest code
		var count int64
		require.NoError(t, db.Model(&entity.PasswordReset{}).Where("user_id = ?", "user-1").Count(&count).Error)
		assert.EqualValues(t, 1, count, "expected exactly one active request per user")

		found, err := repo.FindByUserID(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 5678, found.Code)
	})

	t.Run("concurrent-style upsert with a fresh id still keeps one row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		require.NoError(t, repo.Upsert(context.Background(), newTestReset("user-1", "alice", 1234)))
		// A second writer that never saw the first row uses a new request ID;
		// the user_id unique constraint must still collapse it into an update.
		require.NoError(t, repo.Upsert(context.Background(), newTestReset("user-1", "alice", 9999)))

		var count int64
		require.NoError(t, db.Model(&entity.PasswordReset{}).Where("user_id = ?", "user-1").Count(&count).Error)
		assert.EqualValues(t, 1, count, "expected exactly one active request per user")
	})
}

func TestResetPostgres_FindByUsernameAndCode(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		require.NoError(t, repo.Upsert(context.Background(), newTestReset("user-1", "alice", 1234)))

		found, err := repo.FindByUsernameAndCode(context.Background(), "alice", 1234)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", found.UserID)
	})

	t.Run("wrong code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		require.NoError(t, repo.Upsert(context.Background(), newTestReset("user-1", "alice", 1234)))

		found, err := repo.FindByUsernameAndCode(context.Background(), "alice", 4321)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrResetCodeNotFound)
	})

	t.Run("stale code after overwrite", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		first := newTestReset("user-1", "alice", 1234)
		require.NoError(t, repo.Upsert(context.Background(), first))

		second := newTestReset("user-1", "alice", 5678)
		second.ID = first.ID
		require.NoError(t, repo.Upsert(context.Background(), second))

		// The overwritten code matches nothing
		_, err := repo.FindByUsernameAndCode(context.Background(), "alice", 1234)
		assert.ErrorIs(t, err, usecase.ErrResetCodeNotFound)

		// The latest code still matches
		found, err := repo.FindByUsernameAndCode(context.Background(), "alice", 5678)
		assert.NoError(t, err)
		assert.Equal(t, 5678, found.Code)
	})
}

func TestResetPostgres_DeleteByUserID(t *testing.T) {
	t.Run("delete makes the code unredeemable", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		require.NoError(t, repo.Upsert(context.Background(), newTestReset("user-1", "alice", 1234)))

		err := repo.DeleteByUserID(context.Background(), "user-1")

		assert.NoError(t, err)

		_, err = repo.FindByUsernameAndCode(context.Background(), "alice", 1234)
		assert.ErrorIs(t, err, usecase.ErrResetCodeNotFound)
	})

	t.Run("deleting a non-existent request is not an error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewResetPostgres(db)

		err := repo.DeleteByUserID(context.Background(), "user-absent")

		assert.NoError(t, err)
	})
}
