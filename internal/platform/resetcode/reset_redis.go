// Package resetcode provides a Redis-backed store for pending forgot-password
// requests.
package resetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/usecase"
)

// ResetRedis implements usecase.ResetRequestRepository using Redis.
//
// Layout: one JSON value per username plus a user-ID lookup key, both sharing
// the same TTL. A plain SET on the username key gives latest-wins overwrite
// semantics, so at most one code is ever redeemable per user.
type ResetRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Compile-time check to ensure ResetRedis implements ResetRequestRepository.
var _ usecase.ResetRequestRepository = (*ResetRedis)(nil)

// NewResetRedis creates a new ResetRedis instance. Codes expire after ttl.
func NewResetRedis(client *redis.Client, prefix string, ttl time.Duration) *ResetRedis {
	return &ResetRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// codeKey returns the Redis key holding a user's reset request.
func (r *ResetRedis) codeKey(username string) string {
	return fmt.Sprintf("%s:%s", r.prefix, username)
}

// userKey returns the Redis key mapping a user ID to its username.
func (r *ResetRedis) userKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", r.prefix, userID)
}

// Upsert stores the reset request, overwriting any existing one for the same
// user (latest-wins). Both keys commit in a single MULTI/EXEC so a redeemable
// code can never exist without its user-ID lookup key.
func (r *ResetRedis) Upsert(ctx context.Context, req *entity.PasswordReset) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal reset request: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.codeKey(req.Username), data, r.ttl)
	pipe.Set(ctx, r.userKey(req.UserID), req.Username, r.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// FindByUserID retrieves the active reset request for a user.
func (r *ResetRedis) FindByUserID(ctx context.Context, userID string) (*entity.PasswordReset, error) {
	username, err := r.client.Get(ctx, r.userKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrResetCodeNotFound
		}
		return nil, err
	}
	return r.find(ctx, username)
}

// FindByUsernameAndCode retrieves the request matching both username and code.
func (r *ResetRedis) FindByUsernameAndCode(ctx context.Context, username string, code int) (*entity.PasswordReset, error) {
	req, err := r.find(ctx, username)
	if err != nil {
		return nil, err
	}
	if req.Code != code {
		return nil, usecase.ErrResetCodeNotFound
	}
	return req, nil
}

// DeleteByUserID removes the active reset request for a user.
// A missing request is not an error.
func (r *ResetRedis) DeleteByUserID(ctx context.Context, userID string) error {
	username, err := r.client.Get(ctx, r.userKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}

	if err := r.client.Del(ctx, r.codeKey(username)).Err(); err != nil {
		return err
	}
	return r.client.Del(ctx, r.userKey(userID)).Err()
}

func (r *ResetRedis) find(ctx context.Context, username string) (*entity.PasswordReset, error) {
	data, err := r.client.Get(ctx, r.codeKey(username)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrResetCodeNotFound
		}
		return nil, err
	}

	var req entity.PasswordReset
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset request: %w", err)
	}
	return &req, nil
}
