package main

import (
	"log"

	"pulse-backend/internal/infrastructure/queue"
	"pulse-backend/pkg/container"
)

// setupScheduler registers the recurring jobs and starts the scheduler.
func setupScheduler(c *container.Container) *queue.Scheduler {
	scheduler := queue.NewScheduler(c.Config.Redis, c.Config.Jobs)

	if err := scheduler.Register(); err != nil {
		log.Fatalf("[WORKER] Failed to register scheduled jobs: %v", err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("[WORKER] Failed to start scheduler: %v", err)
	}

	return scheduler
}
