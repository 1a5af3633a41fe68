package service

import (
	"context"
	"fmt"

	"pulse-backend/internal/domains/user"
	"pulse-backend/internal/metrics"
	"pulse-backend/pkg/cache"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
)

type followServiceImpl struct {
	repository user.UserRepository
	cache      cache.Cache
}

func NewFollowService(repo user.UserRepository, c cache.Cache) user.FollowService {
	return &followServiceImpl{
		repository: repo,
		cache:      c,
	}
}

// ============================================================
// READ: GetFollowerInfo
// ============================================================
// Read-through: serve the cached pair entry when present, otherwise compute
// from the follows table and write back with a short TTL. A failed cache read
// is treated as a miss; the database stays the source of truth.
func (s *followServiceImpl) GetFollowerInfo(
	ctx context.Context,
	viewerID, subjectID uuid.UUID,
) (*user.FollowerInfo, error) {
	key := followerInfoKey(viewerID, subjectID)

	var cached user.FollowerInfo
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("GetFollowerInfo: cache read failed", err)
	}
	if found {
		metrics.CacheHits.WithLabelValues("follower-info").Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues("follower-info").Inc()

	info, err := s.computeFollowerInfo(ctx, viewerID, subjectID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, info, followerInfoTTL); err != nil {
		logger.Warn("GetFollowerInfo: cache write failed", err)
	}

	return info, nil
}

func (s *followServiceImpl) computeFollowerInfo(
	ctx context.Context,
	viewerID, subjectID uuid.UUID,
) (*user.FollowerInfo, error) {
	exists, err := s.repository.ExistsByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("follower info: failed to verify user: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	count, err := s.repository.CountFollowers(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("follower info: %w", err)
	}

	following := false
	if viewerID != uuid.Nil && viewerID != subjectID {
		following, err = s.repository.IsFollowing(ctx, viewerID, subjectID)
		if err != nil {
			return nil, fmt.Errorf("follower info: %w", err)
		}
	}

	return &user.FollowerInfo{
		Followers:        count,
		IsFollowedByUser: following,
	}, nil
}

// ============================================================
// MUTATION: Follow
// ============================================================
func (s *followServiceImpl) Follow(
	ctx context.Context,
	followerID, subjectID uuid.UUID,
) (*user.FollowerInfo, error) {
	if followerID == subjectID {
		return nil, user.ErrSelfFollow
	}

	exists, err := s.repository.ExistsByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("follow: failed to verify user: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	if err := s.repository.Follow(ctx, followerID, subjectID); err != nil {
		return nil, err
	}

	s.invalidateFollowState(ctx, followerID, subjectID)

	return s.computeFollowerInfo(ctx, followerID, subjectID)
}

// ============================================================
// MUTATION: Unfollow
// ============================================================
func (s *followServiceImpl) Unfollow(
	ctx context.Context,
	followerID, subjectID uuid.UUID,
) (*user.FollowerInfo, error) {
	exists, err := s.repository.ExistsByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("unfollow: failed to verify user: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	if err := s.repository.Unfollow(ctx, followerID, subjectID); err != nil {
		return nil, err
	}

	s.invalidateFollowState(ctx, followerID, subjectID)

	return s.computeFollowerInfo(ctx, followerID, subjectID)
}

// invalidateFollowState drops every cached view the edge change can stale:
// the acting pair entry, all viewers' entries for the subject, and the
// actor's suggestion list (the subject's follow eligibility just changed).
// Invalidation is best-effort; entries also carry TTLs.
func (s *followServiceImpl) invalidateFollowState(ctx context.Context, followerID, subjectID uuid.UUID) {
	if err := s.cache.Delete(ctx, followerInfoKey(followerID, subjectID), suggestedUsersKey(followerID)); err != nil {
		logger.Warn("invalidateFollowState: delete failed", err)
	}

	if err := s.cache.DeletePattern(ctx, followerInfoSubjectPattern(subjectID)); err != nil {
		logger.Warn("invalidateFollowState: pattern delete failed", err)
	}
}
