package service

import (
	"context"

	"pulse-backend/internal/domains/user"

	"github.com/google/uuid"
)

// mockRepository implements user.UserRepository with overridable function
// fields. Unset fields return zero values.
type mockRepository struct {
	getByID              func(ctx context.Context, id uuid.UUID) (*user.User, error)
	existsByID           func(ctx context.Context, id uuid.UUID) (bool, error)
	countFollowers       func(ctx context.Context, userID uuid.UUID) (int64, error)
	isFollowing          func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	follow               func(ctx context.Context, followerID, followingID uuid.UUID) error
	unfollow             func(ctx context.Context, followerID, followingID uuid.UUID) error
	suggestionCandidates func(ctx context.Context, viewerID uuid.UUID, exclude []uuid.UUID, byAura bool, limit int) ([]user.SuggestedUser, error)
	mutualFollowers      func(ctx context.Context, viewerID, candidateID uuid.UUID, limit int) ([]user.MutualFollower, error)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsByID != nil {
		return m.existsByID(ctx, id)
	}
	return true, nil
}

func (m *mockRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.countFollowers != nil {
		return m.countFollowers(ctx, userID)
	}
	return 0, nil
}

func (m *mockRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	if m.isFollowing != nil {
		return m.isFollowing(ctx, followerID, followingID)
	}
	return false, nil
}

func (m *mockRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if m.follow != nil {
		return m.follow(ctx, followerID, followingID)
	}
	return nil
}

func (m *mockRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if m.unfollow != nil {
		return m.unfollow(ctx, followerID, followingID)
	}
	return nil
}

func (m *mockRepository) SuggestionCandidates(ctx context.Context, viewerID uuid.UUID, exclude []uuid.UUID, byAura bool, limit int) ([]user.SuggestedUser, error) {
	if m.suggestionCandidates != nil {
		return m.suggestionCandidates(ctx, viewerID, exclude, byAura, limit)
	}
	return nil, nil
}

func (m *mockRepository) MutualFollowers(ctx context.Context, viewerID, candidateID uuid.UUID, limit int) ([]user.MutualFollower, error) {
	if m.mutualFollowers != nil {
		return m.mutualFollowers(ctx, viewerID, candidateID, limit)
	}
	return nil, nil
}
