package service

import (
	"context"
	"math"
	"sort"
	"time"

	"pulse-backend/internal/config"
	"pulse-backend/internal/domains/topic"
	"pulse-backend/pkg/cache"
	"pulse-backend/pkg/logger"

	"github.com/shopspring/decimal"
)

const (
	trendingKey = "trending:topics"
	trendingTTL = 15 * time.Minute

	// Usage counts lose half their weight every 12 hours, so a burst from
	// yesterday cannot pin the leaderboard all day.
	halfLifeHours = 12.0
)

type trendingServiceImpl struct {
	repository topic.TopicRepository
	cache      cache.Cache
	window     time.Duration
	limit      int
}

func NewTrendingService(
	repo topic.TopicRepository,
	cacheClient cache.Cache,
	cfg config.JobConfig,
) topic.TrendingService {
	return &trendingServiceImpl{
		repository: repo,
		cache:      cacheClient,
		window:     time.Duration(cfg.TrendingWindowHours) * time.Hour,
		limit:      cfg.TrendingLimit,
	}
}

func (s *trendingServiceImpl) GetTrending(ctx context.Context) (*topic.TrendingResp, error) {
	cached := []topic.TrendingTopic{}
	found, err := s.cache.Get(ctx, trendingKey, &cached)
	if err != nil {
		logger.Warn("GetTrending: cache read failed, recomputing", err)
	} else if found {
		return &topic.TrendingResp{Topics: cached}, nil
	}

	topics, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, trendingKey, topics, trendingTTL); err != nil {
		return nil, err
	}

	return &topic.TrendingResp{Topics: topics}, nil
}

func (s *trendingServiceImpl) Refresh(ctx context.Context) error {
	topics, err := s.compute(ctx)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, trendingKey, topics, trendingTTL); err != nil {
		return err
	}

	logger.Info("[TRENDING] Leaderboard refreshed", map[string]interface{}{
		"topics": len(topics),
	})

	return nil
}

// compute scores every topic used inside the window and keeps the top
// entries. The result is never nil, an empty leaderboard is cached too.
func (s *trendingServiceImpl) compute(ctx context.Context) ([]topic.TrendingTopic, error) {
	now := time.Now()

	usages, err := s.repository.UsageSince(ctx, now.Add(-s.window))
	if err != nil {
		return nil, err
	}

	scored := make([]topic.TrendingTopic, 0, len(usages))
	for _, usage := range usages {
		scored = append(scored, topic.TrendingTopic{
			Topic: usage.Topic,
			Count: usage.Count,
			Score: scoreUsage(usage, now),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score.GreaterThan(scored[j].Score)
	})

	if len(scored) > s.limit {
		scored = scored[:s.limit]
	}

	return scored, nil
}

func scoreUsage(usage topic.TopicUsage, now time.Time) decimal.Decimal {
	ageHours := now.Sub(usage.LastUsed).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	decay := decimal.NewFromFloat(math.Pow(0.5, ageHours/halfLifeHours))

	return decimal.NewFromInt(usage.Count).Mul(decay).Round(4)
}
