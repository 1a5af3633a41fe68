package user

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// REPOSITORY INTERFACE: UserRepository
// ============================================================

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// CountFollowers returns the number of follow edges pointing at userID.
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)

	// IsFollowing reports whether the follower->following edge exists.
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)

	// Follow inserts the edge and, when the edge is new, a follow notification
	// for the target in the same transaction. Inserting an edge that already
	// exists is a no-op, so retries are safe.
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error

	// Unfollow removes the edge. Removing an absent edge is a no-op.
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error

	// SuggestionCandidates returns up to limit users ranked for the viewer,
	// excluding the viewer, users the viewer already follows, and the given
	// exclusion set. Ranking is by aura or by follower count per byAura.
	SuggestionCandidates(ctx context.Context, viewerID uuid.UUID, exclude []uuid.UUID, byAura bool, limit int) ([]SuggestedUser, error)

	// MutualFollowers returns up to limit followers of the viewer who also
	// follow the candidate.
	MutualFollowers(ctx context.Context, viewerID, candidateID uuid.UUID, limit int) ([]MutualFollower, error)
}
