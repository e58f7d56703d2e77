package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"account_backend/internal/feature/accounts/domain/entity"
)

// OpenDB connects to PostgreSQL with the given DSN, retrying until the
// database becomes reachable, and optionally runs schema migrations.
// TranslateError lets the repositories classify unique-constraint violations
// via gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(dsn string, migrate bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if migrate {
		// マイグレーション（User, PasswordReset）
		if err := db.AutoMigrate(
			&entity.User{},
			&entity.PasswordReset{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
