package service

import (
	"context"
	"testing"

	"pulse-backend/internal/domains/user"
	"pulse-backend/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFollowerInfo_ComputesOnMissAndCaches(t *testing.T) {
	viewer := uuid.New()
	subject := uuid.New()

	dbReads := 0
	repo := &mockRepository{
		countFollowers: func(ctx context.Context, userID uuid.UUID) (int64, error) {
			dbReads++
			assert.Equal(t, subject, userID)
			return 42, nil
		},
		isFollowing: func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	svc := NewFollowService(repo, cache.NewMemoryCache())

	info, err := svc.GetFollowerInfo(context.Background(), viewer, subject)
	require.NoError(t, err)
	assert.Equal(t, int64(42), info.Followers)
	assert.True(t, info.IsFollowedByUser)

	// Second read is served from the cache.
	info, err = svc.GetFollowerInfo(context.Background(), viewer, subject)
	require.NoError(t, err)
	assert.Equal(t, int64(42), info.Followers)
	assert.Equal(t, 1, dbReads)
}

func TestGetFollowerInfo_AnonymousViewer(t *testing.T) {
	subject := uuid.New()

	repo := &mockRepository{
		countFollowers: func(ctx context.Context, userID uuid.UUID) (int64, error) {
			return 7, nil
		},
		isFollowing: func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
			t.Fatal("edge lookup should not run for anonymous viewers")
			return false, nil
		},
	}

	svc := NewFollowService(repo, cache.NewMemoryCache())

	info, err := svc.GetFollowerInfo(context.Background(), uuid.Nil, subject)
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.Followers)
	assert.False(t, info.IsFollowedByUser)
}

func TestGetFollowerInfo_UnknownSubject(t *testing.T) {
	repo := &mockRepository{
		existsByID: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		},
	}

	svc := NewFollowService(repo, cache.NewMemoryCache())

	_, err := svc.GetFollowerInfo(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestFollow_RejectsSelfFollow(t *testing.T) {
	repo := &mockRepository{
		follow: func(ctx context.Context, followerID, followingID uuid.UUID) error {
			t.Fatal("self-follow must be rejected before the repository")
			return nil
		},
	}

	svc := NewFollowService(repo, cache.NewMemoryCache())

	id := uuid.New()
	_, err := svc.Follow(context.Background(), id, id)
	assert.ErrorIs(t, err, user.ErrSelfFollow)
}

func TestFollow_InvalidatesCachedViews(t *testing.T) {
	viewer := uuid.New()
	subject := uuid.New()
	otherViewer := uuid.New()

	followed := false
	repo := &mockRepository{
		follow: func(ctx context.Context, followerID, followingID uuid.UUID) error {
			followed = true
			assert.Equal(t, viewer, followerID)
			assert.Equal(t, subject, followingID)
			return nil
		},
		countFollowers: func(ctx context.Context, userID uuid.UUID) (int64, error) {
			return 1, nil
		},
		isFollowing: func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	mem := cache.NewMemoryCache()
	ctx := context.Background()

	// Pre-seed views that the mutation must drop.
	stale := user.FollowerInfo{Followers: 99, IsFollowedByUser: false}
	require.NoError(t, mem.Set(ctx, followerInfoKey(viewer, subject), stale, 0))
	require.NoError(t, mem.Set(ctx, followerInfoKey(otherViewer, subject), stale, 0))
	require.NoError(t, mem.Set(ctx, suggestedUsersKey(viewer), []user.SuggestedUser{}, 0))

	svc := NewFollowService(repo, mem)

	info, err := svc.Follow(ctx, viewer, subject)
	require.NoError(t, err)
	assert.True(t, followed)
	assert.Equal(t, int64(1), info.Followers)
	assert.True(t, info.IsFollowedByUser)

	exists, err := mem.Exists(ctx, followerInfoKey(otherViewer, subject))
	require.NoError(t, err)
	assert.False(t, exists, "other viewers' entries for the subject must be invalidated")

	exists, err = mem.Exists(ctx, suggestedUsersKey(viewer))
	require.NoError(t, err)
	assert.False(t, exists, "the actor's suggestion list must be invalidated")
}

func TestUnfollow_ReportsFreshState(t *testing.T) {
	viewer := uuid.New()
	subject := uuid.New()

	repo := &mockRepository{
		countFollowers: func(ctx context.Context, userID uuid.UUID) (int64, error) {
			return 0, nil
		},
		isFollowing: func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
			return false, nil
		},
	}

	svc := NewFollowService(repo, cache.NewMemoryCache())

	info, err := svc.Unfollow(context.Background(), viewer, subject)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Followers)
	assert.False(t, info.IsFollowedByUser)
}
