package job

import (
	"context"

	"pulse-backend/internal/domains/topic"

	"github.com/hibiken/asynq"
)

// RefreshTrendingHandler recomputes the trending leaderboard on schedule so
// reads almost never hit the cold path.
type RefreshTrendingHandler struct {
	service topic.TrendingService
}

func NewRefreshTrendingHandler(svc topic.TrendingService) *RefreshTrendingHandler {
	return &RefreshTrendingHandler{service: svc}
}

func (h *RefreshTrendingHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	return h.service.Refresh(ctx)
}
