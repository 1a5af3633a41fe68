package service

import (
	"context"
	"testing"
	"time"

	"pulse-backend/internal/config"
	"pulse-backend/internal/domains/topic"
	"pulse-backend/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	usageSince func(ctx context.Context, since time.Time) ([]topic.TopicUsage, error)
}

func (m *mockRepository) UsageSince(ctx context.Context, since time.Time) ([]topic.TopicUsage, error) {
	if m.usageSince != nil {
		return m.usageSince(ctx, since)
	}
	return nil, nil
}

func testJobConfig() config.JobConfig {
	return config.JobConfig{TrendingWindowHours: 24, TrendingLimit: 10}
}

func TestGetTrending_RanksFreshUsageAboveStale(t *testing.T) {
	now := time.Now()
	repo := &mockRepository{
		usageSince: func(ctx context.Context, since time.Time) ([]topic.TopicUsage, error) {
			assert.WithinDuration(t, now.Add(-24*time.Hour), since, 2*time.Second)
			return []topic.TopicUsage{
				{Topic: "golang", Count: 10, LastUsed: now.Add(-23 * time.Hour)},
				{Topic: "rustlang", Count: 8, LastUsed: now.Add(-10 * time.Minute)},
				{Topic: "devops", Count: 3, LastUsed: now.Add(-1 * time.Hour)},
			}, nil
		},
	}

	svc := NewTrendingService(repo, cache.NewMemoryCache(), testJobConfig())

	resp, err := svc.GetTrending(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Topics, 3)

	// 10 uses decayed by nearly two half-lives score below 8 recent ones.
	assert.Equal(t, "rustlang", resp.Topics[0].Topic)
	assert.Equal(t, "devops", resp.Topics[1].Topic)
	assert.Equal(t, "golang", resp.Topics[2].Topic)
}

func TestGetTrending_ServesCachedLeaderboard(t *testing.T) {
	dbReads := 0
	repo := &mockRepository{
		usageSince: func(ctx context.Context, since time.Time) ([]topic.TopicUsage, error) {
			dbReads++
			return []topic.TopicUsage{
				{Topic: "golang", Count: 5, LastUsed: time.Now()},
			}, nil
		},
	}

	svc := NewTrendingService(repo, cache.NewMemoryCache(), testJobConfig())

	_, err := svc.GetTrending(context.Background())
	require.NoError(t, err)

	resp, err := svc.GetTrending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, dbReads)
	require.Len(t, resp.Topics, 1)
	assert.Equal(t, "golang", resp.Topics[0].Topic)
}

func TestGetTrending_KeepsOnlyTopEntries(t *testing.T) {
	now := time.Now()
	repo := &mockRepository{
		usageSince: func(ctx context.Context, since time.Time) ([]topic.TopicUsage, error) {
			usages := make([]topic.TopicUsage, 15)
			for i := range usages {
				usages[i] = topic.TopicUsage{
					Topic:    string(rune('a' + i)),
					Count:    int64(i + 1),
					LastUsed: now,
				}
			}
			return usages, nil
		},
	}

	cfg := testJobConfig()
	svc := NewTrendingService(repo, cache.NewMemoryCache(), cfg)

	resp, err := svc.GetTrending(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Topics, cfg.TrendingLimit)
	assert.Equal(t, int64(15), resp.Topics[0].Count)
	assert.Equal(t, int64(6), resp.Topics[cfg.TrendingLimit-1].Count)
}

func TestRefresh_ReplacesCachedLeaderboard(t *testing.T) {
	usages := []topic.TopicUsage{
		{Topic: "golang", Count: 5, LastUsed: time.Now()},
	}
	repo := &mockRepository{
		usageSince: func(ctx context.Context, since time.Time) ([]topic.TopicUsage, error) {
			return usages, nil
		},
	}

	svc := NewTrendingService(repo, cache.NewMemoryCache(), testJobConfig())

	require.NoError(t, svc.Refresh(context.Background()))

	usages = append(usages, topic.TopicUsage{Topic: "devops", Count: 2, LastUsed: time.Now()})
	require.NoError(t, svc.Refresh(context.Background()))

	resp, err := svc.GetTrending(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Topics, 2)
}

func TestGetTrending_CachesEmptyLeaderboard(t *testing.T) {
	dbReads := 0
	repo := &mockRepository{
		usageSince: func(ctx context.Context, since time.Time) ([]topic.TopicUsage, error) {
			dbReads++
			return nil, nil
		},
	}

	svc := NewTrendingService(repo, cache.NewMemoryCache(), testJobConfig())

	resp, err := svc.GetTrending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Topics)

	_, err = svc.GetTrending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dbReads)
}
