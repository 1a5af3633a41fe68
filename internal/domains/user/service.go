package user

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// SERVICE INTERFACES
// ============================================================

// FollowService owns the follow-state read path and the follow/unfollow
// mutations with their cache invalidation fan-out.
type FollowService interface {
	// GetFollowerInfo returns the cached (viewer, subject) follow state,
	// recomputing from the database on a miss.
	GetFollowerInfo(ctx context.Context, viewerID, subjectID uuid.UUID) (*FollowerInfo, error)

	Follow(ctx context.Context, followerID, subjectID uuid.UUID) (*FollowerInfo, error)

	Unfollow(ctx context.Context, followerID, subjectID uuid.UUID) (*FollowerInfo, error)
}

// SuggestionService computes who-to-follow lists.
type SuggestionService interface {
	// Suggest returns up to 6 users for the viewer. Results are cached per
	// viewer and chosen ids are excluded from repeat suggestion for an hour.
	Suggest(ctx context.Context, viewerID uuid.UUID) ([]SuggestedUser, error)
}
