package hackernews

import (
	"context"

	"github.com/google/uuid"
)

type HackerNewsService interface {
	List(ctx context.Context, cursor *uuid.UUID, pageSize int) (*ListResp, error)

	// Sync pulls the configured RSS feed and upserts its stories.
	// Called by the scheduled worker job.
	Sync(ctx context.Context) error
}
