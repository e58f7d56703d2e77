package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/transport/http/dto"
	"account_backend/internal/feature/accounts/usecase"
)

// AccountUsecase defines the account-management operations consumed by the
// HTTP layer. Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type AccountUsecase interface {
	// CreateAccount registers a new user and returns the assigned ID.
	CreateAccount(ctx context.Context, username, fullname, email, password string) (string, error)
	// GetAccount retrieves a single user by ID.
	GetAccount(ctx context.Context, id string) (*entity.User, error)
	// ListAccounts retrieves all users.
	ListAccounts(ctx context.Context) ([]*entity.User, error)
	// UpdateAccount replaces the profile fields of an existing user.
	UpdateAccount(ctx context.Context, id, username, fullname, email string) error
	// DeleteAccount removes a user permanently.
	DeleteAccount(ctx context.Context, id string) error
}

// AccountHandler handles HTTP requests for account management.
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler creates a new instance of AccountHandler.
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Create handles POST /users.
// Returns 201 with the new user ID, 400 on validation failure, and 409 when
// the username or email is already taken.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create account validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id, err := h.accounts.CreateAccount(c.Request.Context(), req.Username, req.Fullname, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already in use"})
			return
		}
		slog.Error("create account failed", "username", req.Username, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}
	slog.Info("account created", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Get handles GET /users/:id.
// The response projection never includes the password hash.
func (h *AccountHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.accounts.GetAccount(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.Error("get account failed", "id", id, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResp(user))
}

// List handles GET /users.
func (h *AccountHandler) List(c *gin.Context) {
	users, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		slog.Error("list accounts failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRespList(users))
}

// Update handles PUT /users/:id.
// Returns 404 when the user is absent and 409 when the new username or email
// collides with a different user.
func (h *AccountHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var req dto.UpdateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update account validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err := h.accounts.UpdateAccount(c.Request.Context(), id, req.Username, req.Fullname, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		case errors.Is(err, usecase.ErrDuplicateAccount):
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already in use"})
		default:
			slog.Error("update account failed", "id", id, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		}
		return
	}
	slog.Info("account updated", "id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Delete handles DELETE /users/:id.
// Returns 204 on success and 404 when the user is absent.
func (h *AccountHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.accounts.DeleteAccount(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.Error("delete account failed", "id", id, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}
	slog.Info("account deleted", "id", id, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}
