package job

import (
	"context"

	"pulse-backend/internal/domains/hackernews"

	"github.com/hibiken/asynq"
)

// SyncHandler pulls the HackerNews RSS feed on schedule.
type SyncHandler struct {
	service hackernews.HackerNewsService
}

func NewSyncHandler(svc hackernews.HackerNewsService) *SyncHandler {
	return &SyncHandler{service: svc}
}

func (h *SyncHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	return h.service.Sync(ctx)
}
