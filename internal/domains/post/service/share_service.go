package service

import (
	"context"
	"fmt"

	"pulse-backend/internal/domains/post"
	"pulse-backend/internal/metrics"
	"pulse-backend/pkg/cache"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
)

// Share and click counters live in the cache with no TTL. The cache's atomic
// increment is the only write path, so concurrent shares never lose updates.
// Counters are freed by the purge task when the post is deleted.
func shareKey(postID uuid.UUID, platform post.Platform) string {
	return fmt.Sprintf("share:%s:%s:shares", postID, platform)
}

func clickKey(postID uuid.UUID, platform post.Platform) string {
	return fmt.Sprintf("share:%s:%s:clicks", postID, platform)
}

func sharePattern(postID uuid.UUID) string {
	return fmt.Sprintf("share:%s:*", postID)
}

type shareServiceImpl struct {
	repository post.PostRepository
	cache      cache.Cache
}

func NewShareService(repo post.PostRepository, c cache.Cache) post.ShareService {
	return &shareServiceImpl{
		repository: repo,
		cache:      c,
	}
}

func (s *shareServiceImpl) RecordShare(
	ctx context.Context,
	postID uuid.UUID,
	platform post.Platform,
) (int64, error) {
	if err := s.verify(ctx, postID, platform); err != nil {
		return 0, err
	}

	count, err := s.cache.Increment(ctx, shareKey(postID, platform))
	if err != nil {
		return 0, fmt.Errorf("record share: %w", err)
	}

	metrics.SharesRecorded.WithLabelValues(string(platform)).Inc()

	return count, nil
}

func (s *shareServiceImpl) RecordClick(
	ctx context.Context,
	postID uuid.UUID,
	platform post.Platform,
) (int64, error) {
	if err := s.verify(ctx, postID, platform); err != nil {
		return 0, err
	}

	count, err := s.cache.Increment(ctx, clickKey(postID, platform))
	if err != nil {
		return 0, fmt.Errorf("record click: %w", err)
	}

	return count, nil
}

// Stats reads both counters for every known platform. A missing key reads as
// zero; platforms are never merged server-side.
func (s *shareServiceImpl) Stats(
	ctx context.Context,
	postID uuid.UUID,
) ([]post.PlatformStats, error) {
	exists, err := s.repository.ExistsByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("share stats: failed to verify post: %w", err)
	}
	if !exists {
		return nil, post.ErrPostNotFound
	}

	platforms := post.AllPlatforms()
	stats := make([]post.PlatformStats, 0, len(platforms))
	for _, platform := range platforms {
		shares, err := s.readCounter(ctx, shareKey(postID, platform))
		if err != nil {
			return nil, fmt.Errorf("share stats: %w", err)
		}

		clicks, err := s.readCounter(ctx, clickKey(postID, platform))
		if err != nil {
			return nil, fmt.Errorf("share stats: %w", err)
		}

		stats = append(stats, post.PlatformStats{
			Platform: platform,
			Shares:   shares,
			Clicks:   clicks,
		})
	}

	return stats, nil
}

// PurgeStats drops every counter for the post, shares and clicks across all
// platforms. Runs from the cleanup worker after a post delete.
func (s *shareServiceImpl) PurgeStats(ctx context.Context, postID uuid.UUID) error {
	if err := s.cache.DeletePattern(ctx, sharePattern(postID)); err != nil {
		return fmt.Errorf("purge share stats: %w", err)
	}

	logger.Info("[SHARE] Purged counters", map[string]interface{}{
		"post_id": postID.String(),
	})

	return nil
}

func (s *shareServiceImpl) verify(ctx context.Context, postID uuid.UUID, platform post.Platform) error {
	if !platform.Valid() {
		return post.ErrInvalidPlatform
	}

	exists, err := s.repository.ExistsByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to verify post: %w", err)
	}
	if !exists {
		return post.ErrPostNotFound
	}

	return nil
}

func (s *shareServiceImpl) readCounter(ctx context.Context, key string) (int64, error) {
	var count int64
	found, err := s.cache.Get(ctx, key, &count)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return count, nil
}
