package router

import (
	accounthandler "account_backend/internal/feature/accounts/transport/handler"
	messagehandler "account_backend/internal/feature/messages/transport/handler"
	"account_backend/internal/platform/http/handler"
	jwtmw "account_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(accounts *accounthandler.AccountHandler, auth *accounthandler.AuthHandler,
	messages *messagehandler.MessageHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規アカウント登録
	r.POST("/users", accounts.Create)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)
	// パスワードリセットフロー
	r.POST("/users/forgot-password", auth.ForgotPassword)
	r.POST("/users/reset-password", auth.ResetPassword)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(verifier))
	{
		protected.GET("/users", accounts.List)
		protected.GET("/users/:id", accounts.Get)
		protected.PUT("/users/:id", accounts.Update)
		protected.DELETE("/users/:id", accounts.Delete)
		protected.POST("/messages", messages.Publish)
	}

	return r
}
