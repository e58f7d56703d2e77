package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/config"
	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	accountadapters "account_backend/internal/feature/accounts/adapters"
	accounthandler "account_backend/internal/feature/accounts/transport/handler"
	accountusecase "account_backend/internal/feature/accounts/usecase"
	messagehandler "account_backend/internal/feature/messages/transport/handler"
	messageusecase "account_backend/internal/feature/messages/usecase"
	infradb "account_backend/internal/platform/db"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/platform/queue"
	infraredis "account_backend/internal/platform/redis"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DatabaseDSN, cfg.RunMigrations)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Reset codes fall back to PostgreSQL.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Queue
	queueClient := queue.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	defer func() {
		if err := queueClient.Close(); err != nil {
			log.Println("[ERROR] Failed to close queue client:", err)
		}
	}()

	// Repository
	userRepo := accountadapters.NewUserPostgres(db)
	resetRepo := di.NewResetRequestRepository(rdb, db, cfg.ResetCodeTTL)

	// JWT
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)

	// Usecase
	accountUC := accountusecase.NewAccountUsecase(userRepo)
	authUC := accountusecase.NewAuthUsecase(userRepo, resetRepo, tokens, queueClient)
	messageUC := messageusecase.NewMessageUsecase(queueClient)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)
	authH := accounthandler.NewAuthHandler(authUC)
	messageH := messagehandler.NewMessageHandler(messageUC)

	// ルータ生成
	router := router.NewRouter(accountH, authH, messageH, tokens)

	if err := router.Run(cfg.AppAddr); err != nil {
		log.Fatal(err)
	}
}
