package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/google/uuid"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/platform/password"
)

const (
	// resetCodeMin はリセットコードの下限値です。
	resetCodeMin = 1000
	// resetCodeMax はリセットコードの上限値です。
	resetCodeMax = 9999
)

// TokenGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID, username string) (string, error)
}

// Notifier はアウトバウンドメッセージ送信のインターフェースを定義します。
// ベストエフォートであり、失敗しても呼び出し元の処理は成功します。
type Notifier interface {
	// Publish はメッセージをキューに発行します。
	Publish(ctx context.Context, text string) error
}

// authUsecase は認証・クレデンシャルライフサイクルのビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	resets   ResetRequestRepository
	tokens   TokenGenerator
	notifier Notifier
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, resets ResetRequestRepository,
	tokens TokenGenerator, notifier Notifier) *authUsecase {
	return &authUsecase{
		users:    users,
		resets:   resets,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// ユーザー未検出とパスワード不一致はどちらもErrInvalidCredentialsに集約され、
// ユーザー名の列挙を防ぎます。
func (u *authUsecase) Login(ctx context.Context, username, plain string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// ユーザーが存在しない場合もダミーハッシュに対して必ず検証を実行する
	passwordHash := password.DummyHash
	if err == nil {
		passwordHash = user.Password
	}

	verified := password.Verify(plain, passwordHash)

	if err != nil || !verified {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Username)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// ForgotPassword はユーザーの新しいリセットコードを発行します。
// 既存のアクティブなリクエストがある場合はコードを上書きします（latest-wins）。
// 発行したコードはキュー経由でベストエフォート配信されますが、
// 配信失敗は処理の成否に影響しません。
func (u *authUsecase) ForgotPassword(ctx context.Context, username string) (int, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	code, err := newResetCode()
	if err != nil {
		return 0, fmt.Errorf("failed to generate reset code: %w", err)
	}

	req := &entity.PasswordReset{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Username: user.Username,
		Code:     code,
	}

	// 既存リクエストがあればIDを引き継いでコードのみ差し替える
	if existing, findErr := u.resets.FindByUserID(ctx, user.ID); findErr == nil {
		req.ID = existing.ID
		req.CreatedAt = existing.CreatedAt
	}

	if err := u.resets.Upsert(ctx, req); err != nil {
		return 0, fmt.Errorf("failed to persist reset request: %w", err)
	}

	// アウトオブバンド配信（ファイアアンドフォーゲット）
	text := fmt.Sprintf("password reset code for %s: %d", user.Username, code)
	if err := u.notifier.Publish(ctx, text); err != nil {
		slog.Warn("failed to publish reset code message", "username", username, "error", err)
	}

	return code, nil
}

// ResetPassword はリセットコードを照合し、ユーザーのパスワードを差し替えます。
// (username, code) に一致するリクエストがない場合はErrResetCodeNotFoundを返します。
// 成功時はコードを無効化し、同じコードの再利用を防ぎます（シングルユース）。
func (u *authUsecase) ResetPassword(ctx context.Context, username string, code int, plain, confirm string) error {
	req, err := u.resets.FindByUsernameAndCode(ctx, username, code)
	if err != nil {
		return err
	}

	if plain != confirm {
		return ErrPasswordMismatch
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return err
	}

	if err := u.users.UpdatePassword(ctx, req.UserID, hashed); err != nil {
		return err
	}

	// 使用済みコードを無効化する
	if err := u.resets.DeleteByUserID(ctx, req.UserID); err != nil {
		return fmt.Errorf("failed to invalidate reset code: %w", err)
	}

	return nil
}

// newResetCode は[1000, 9999]の一様乱数コードを生成します。
// 外部入力から予測できないよう crypto/rand を使用します。
func newResetCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(resetCodeMax-resetCodeMin+1))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + resetCodeMin, nil
}
