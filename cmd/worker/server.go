package main

import (
	"context"
	"log"

	"pulse-backend/internal/shared"
	"pulse-backend/pkg/container"

	"github.com/hibiken/asynq"
)

// asynqServer wraps asynq.Server so shutdown stays in one place.
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer configures queue priorities and starts consuming.
func setupAsynqServer(c *container.Container, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueDefault: 10,
				shared.QueueFeeds:   5,
				shared.QueueCleanup: 2,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[WORKER] Task failed - type: %s, error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[WORKER] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[WORKER] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

func (s *asynqServer) Shutdown() {
	log.Println("[WORKER] Shutting down task server...")
	s.Server.Shutdown()
}
