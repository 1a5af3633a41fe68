package post

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// SERVICE INTERFACES
// ============================================================

type PostService interface {
	Create(ctx context.Context, authorID uuid.UUID, req *CreatePostReq) (*Post, error)

	// Delete removes the actor's own post and schedules its share counters
	// for purging.
	Delete(ctx context.Context, actorID, postID uuid.UUID) error

	ForYou(ctx context.Context, cursor *uuid.UUID, pageSize int) (*FeedResp, error)

	Following(ctx context.Context, viewerID uuid.UUID, cursor *uuid.UUID, pageSize int) (*FeedResp, error)
}

// ShareService owns the cache-backed share/click counters.
type ShareService interface {
	RecordShare(ctx context.Context, postID uuid.UUID, platform Platform) (int64, error)

	RecordClick(ctx context.Context, postID uuid.UUID, platform Platform) (int64, error)

	// Stats reads every platform's counter pair for the post.
	Stats(ctx context.Context, postID uuid.UUID) ([]PlatformStats, error)

	// PurgeStats drops all counters belonging to a deleted post.
	PurgeStats(ctx context.Context, postID uuid.UUID) error
}
