package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pulse-backend/internal/infrastructure/queue"
	"pulse-backend/pkg/container"
	"pulse-backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WORKER] No .env file found, using system environment variables")
	}

	logger.Init(os.Getenv("APP_ENV"))

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("[WORKER] Failed to initialize container: %v", err)
	}
	defer c.Cleanup()

	handlers := initializeHandlers(c)

	srv := setupAsynqServer(c, handlers)
	scheduler := setupScheduler(c)

	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *queue.Scheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("[WORKER] Stopped")
}
