// Package handler はaccountsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/accounts/transport/http/dto"
	"account_backend/internal/feature/accounts/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, username, password string) (string, error)
	// ForgotPassword はリセットコードを発行します。
	ForgotPassword(ctx context.Context, username string) (int, error)
	// ResetPassword はリセットコードを照合し、パスワードを差し替えます。
	ResetPassword(ctx context.Context, username string, code int, password, confirm string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（ユーザー未検出も同じ401でユーザー名列挙を防止）
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// 実際の失敗理由（ユーザー不在かパスワード不一致か）を公開しない
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ForgotPassword はリセットコード発行APIエンドポイントを処理します。
// - ユーザーが存在しない場合は404を返却
// - 成功時は発行したコード付きで200を返却
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forgot-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	code, err := h.auth.ForgotPassword(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.Error("forgot-password failed", "username", req.Username, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}
	slog.Info("reset code issued", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"code": code})
}

// ResetPassword はパスワードリセットAPIエンドポイントを処理します。
// - (username, code) が一致しない場合は404を返却
// - 確認用パスワードが一致しない場合は400を返却
// - 成功時は200を返却
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err := h.auth.ResetPassword(c.Request.Context(), req.Username, req.Code, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResetCodeNotFound), errors.Is(err, usecase.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "reset code not found"})
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		default:
			slog.Error("reset-password failed", "username", req.Username, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		}
		return
	}
	slog.Info("password reset successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
