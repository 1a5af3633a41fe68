package job

import (
	"context"
	"fmt"

	"pulse-backend/internal/domains/post"
	"pulse-backend/internal/shared"
	"pulse-backend/internal/shared/utils"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// PurgeShareStatsHandler removes a deleted post's share counters. Enqueued by
// the API on post deletion; safe to retry because the purge is idempotent.
type PurgeShareStatsHandler struct {
	shares post.ShareService
}

func NewPurgeShareStatsHandler(shares post.ShareService) *PurgeShareStatsHandler {
	return &PurgeShareStatsHandler{shares: shares}
}

func (h *PurgeShareStatsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.PurgeShareStatsPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return err
	}

	postID, err := uuid.Parse(payload.PostID)
	if err != nil {
		// A malformed id never becomes valid; don't retry.
		logger.Error("[JOB] PurgeShareStats: bad post id", err)
		return fmt.Errorf("invalid post id %q: %w", payload.PostID, asynq.SkipRetry)
	}

	return h.shares.PurgeStats(ctx, postID)
}
