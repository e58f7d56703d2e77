package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"account_backend/internal/feature/accounts/adapters"
	"account_backend/internal/feature/accounts/usecase"
	"account_backend/internal/platform/resetcode"
)

// NewResetRequestRepository creates a ResetRequestRepository implementation.
// If Redis is available, it returns a Redis-backed implementation whose codes
// expire after ttl. Otherwise, it falls back to PostgreSQL, where codes live
// until they are overwritten or redeemed.
func NewResetRequestRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.ResetRequestRepository {
	if rdb != nil {
		return resetcode.NewResetRedis(rdb, "resetcode", ttl)
	}
	return adapters.NewResetPostgres(db)
}
