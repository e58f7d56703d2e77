package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError mirrors the production gorm.Config, so duplicate-key
// classification behaves the same as against PostgreSQL.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &entity.PasswordReset{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// newTestUser builds a persistable user entity.
func newTestUser(username, email string) *entity.User {
	return &entity.User{
		ID:       uuid.NewString(),
		Username: username,
		Fullname: "Test User",
		Email:    email,
		Password: "hashed_password",
	}
}

func TestNewUserPostgres(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserPostgres(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("alice", "alice@example.com")

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Create(context.Background(), newTestUser("alice", "shared@example.com"))
		require.NoError(t, err, "failed to create first user")

		// Same email, different username
		err = repo.Create(context.Background(), newTestUser("bob", "shared@example.com"))

		assert.ErrorIs(t, err, usecase.ErrDuplicateAccount, "should return ErrDuplicateAccount")
	})

	t.Run("duplicate username error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Create(context.Background(), newTestUser("alice", "alice@example.com"))
		require.NoError(t, err, "failed to create first user")

		// Same username, different email
		err = repo.Create(context.Background(), newTestUser("alice", "alice2@example.com"))

		assert.ErrorIs(t, err, usecase.ErrDuplicateAccount, "should return ErrDuplicateAccount")
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("find user by id successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		expected := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Username, found.Username, "username does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("id not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByID(context.Background(), uuid.NewString())

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrAccountNotFound, "should return ErrAccountNotFound")
	})
}

func TestUserPostgres_FindByUsername(t *testing.T) {
	t.Run("find user by username successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		expected := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		found, err := repo.FindByUsername(context.Background(), "alice")

		assert.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("username not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByUsername(context.Background(), "nobody")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrAccountNotFound, "should return ErrAccountNotFound")
	})
}

func TestUserPostgres_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	require.NoError(t, repo.Create(context.Background(), newTestUser("alice", "alice@example.com")))
	require.NoError(t, repo.Create(context.Background(), newTestUser("bob", "bob@example.com")))

	users, err := repo.FindAll(context.Background())

	assert.NoError(t, err, "failed to list users")
	assert.Len(t, users, 2, "expected two users")
}

func TestUserPostgres_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		user.Username = "alice2"
		user.Fullname = "Alice Updated"
		err := repo.Update(context.Background(), user)

		assert.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice2", found.Username)
		assert.Equal(t, "Alice Updated", found.Fullname)
	})

	t.Run("collision with a different user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("alice", "alice@example.com")))
		bob := newTestUser("bob", "bob@example.com")
		require.NoError(t, repo.Create(context.Background(), bob))

		// Renaming bob to alice's username must hit the unique constraint
		bob.Username = "alice"
		err := repo.Update(context.Background(), bob)

		assert.ErrorIs(t, err, usecase.ErrDuplicateAccount, "should return ErrDuplicateAccount")
	})
}

func TestUserPostgres_UpdatePassword(t *testing.T) {
	t.Run("successful password update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		err := repo.UpdatePassword(context.Background(), user.ID, "new_hash")

		assert.NoError(t, err, "failed to update password")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new_hash", found.Password)
		assert.Equal(t, "alice", found.Username, "profile fields must not change")
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.UpdatePassword(context.Background(), uuid.NewString(), "new_hash")

		assert.ErrorIs(t, err, usecase.ErrAccountNotFound, "should return ErrAccountNotFound")
	})
}

func TestUserPostgres_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		err := repo.Delete(context.Background(), user.ID)

		assert.NoError(t, err, "failed to delete user")

		_, err = repo.FindByID(context.Background(), user.ID)
		assert.ErrorIs(t, err, usecase.ErrAccountNotFound, "user should be gone")
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Delete(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, usecase.ErrAccountNotFound, "should return ErrAccountNotFound")
	})
}
