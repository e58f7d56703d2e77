package usecase

import (
	"context"

	"account_backend/internal/feature/accounts/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByIDFunc       func(ctx context.Context, id string) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindAllFunc        func(ctx context.Context) ([]*entity.User, error)
	UpdateFunc         func(ctx context.Context, user *entity.User) error
	UpdatePasswordFunc func(ctx context.Context, id, passwordHash string) error
	DeleteFunc         func(ctx context.Context, id string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrAccountNotFound // Default: not found
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrAccountNotFound // Default: not found
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockResetRepository is a mock implementation of the ResetRequestRepository
// interface.
type mockResetRepository struct {
	UpsertFunc                func(ctx context.Context, req *entity.PasswordReset) error
	FindByUserIDFunc          func(ctx context.Context, userID string) (*entity.PasswordReset, error)
	FindByUsernameAndCodeFunc func(ctx context.Context, username string, code int) (*entity.PasswordReset, error)
	DeleteByUserIDFunc        func(ctx context.Context, userID string) error
}

func (m *mockResetRepository) Upsert(ctx context.Context, req *entity.PasswordReset) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, req)
	}
	return nil
}

func (m *mockResetRepository) FindByUserID(ctx context.Context, userID string) (*entity.PasswordReset, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, ErrResetCodeNotFound
}

func (m *mockResetRepository) FindByUsernameAndCode(ctx context.Context, username string, code int) (*entity.PasswordReset, error) {
	if m.FindByUsernameAndCodeFunc != nil {
		return m.FindByUsernameAndCodeFunc(ctx, username, code)
	}
	return nil, ErrResetCodeNotFound
}

func (m *mockResetRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	GenerateTokenFunc func(userID, username string) (string, error)
}

func (m *mockTokenGenerator) GenerateToken(userID, username string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, username)
	}
	return "mock-jwt-token", nil // Default: return a dummy token
}

// mockNotifier is a mock implementation of the Notifier interface.
type mockNotifier struct {
	PublishFunc func(ctx context.Context, text string) error
	published   []string
}

func (m *mockNotifier) Publish(ctx context.Context, text string) error {
	m.published = append(m.published, text)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, text)
	}
	return nil
}
