// Command worker runs the background task consumer draining the outbound
// message queue.
package main

import (
	"log"

	"github.com/hibiken/asynq"

	"account_backend/internal/app/config"
	"account_backend/internal/platform/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				queue.QueueDefault: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskTypeMessageSend, queue.HandleMessageTask)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
