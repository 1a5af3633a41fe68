package post

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// REPOSITORY INTERFACE: PostRepository
// ============================================================

type PostRepository interface {
	// Create inserts the post and its topic rows in one transaction.
	Create(ctx context.Context, authorID uuid.UUID, p *Post) error

	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// ForYouFeed returns up to limit posts in descending creation order,
	// starting at the cursor row when cursor is non-nil.
	ForYouFeed(ctx context.Context, cursor *uuid.UUID, limit int) ([]Post, error)

	// FollowingFeed is ForYouFeed restricted to authors the viewer follows.
	FollowingFeed(ctx context.Context, viewerID uuid.UUID, cursor *uuid.UUID, limit int) ([]Post, error)
}
