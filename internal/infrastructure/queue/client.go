package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pulse-backend/internal/config"
	"pulse-backend/internal/shared"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client enqueues background tasks from the API process. The worker process
// consumes them.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Host,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueuePurgeShareStats schedules removal of a deleted post's share
// counters. Counters have no TTL, so this is the only path that frees them.
func (c *Client) EnqueuePurgeShareStats(ctx context.Context, postID uuid.UUID) error {
	payload, err := json.Marshal(shared.PurgeShareStatsPayload{PostID: postID.String()})
	if err != nil {
		return fmt.Errorf("marshal purge payload: %w", err)
	}

	task := asynq.NewTask(shared.TypePurgeShareStats, payload)

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueCleanup),
		asynq.MaxRetry(3),
		asynq.Timeout(1*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue purge task: %w", err)
	}

	logger.Info("[QUEUE] Enqueued share-stat purge", map[string]interface{}{
		"task_id": info.ID,
		"post_id": postID.String(),
	})

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
