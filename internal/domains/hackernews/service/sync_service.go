package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulse-backend/internal/config"
	"pulse-backend/internal/domains/hackernews"
	"pulse-backend/internal/metrics"
	"pulse-backend/internal/shared/pagination"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

type hackerNewsServiceImpl struct {
	repository hackernews.HackerNewsRepository
	parser     *gofeed.Parser
	sanitizer  *bluemonday.Policy
	feedURL    string
	syncLimit  int
}

func NewHackerNewsService(
	repo hackernews.HackerNewsRepository,
	feedCfg config.HackerNewsConfig,
	jobCfg config.JobConfig,
) hackernews.HackerNewsService {
	return &hackerNewsServiceImpl{
		repository: repo,
		parser:     gofeed.NewParser(),
		sanitizer:  bluemonday.StrictPolicy(),
		feedURL:    feedCfg.FeedURL,
		syncLimit:  jobCfg.HNSyncLimit,
	}
}

func (s *hackerNewsServiceImpl) List(
	ctx context.Context,
	cursor *uuid.UUID,
	pageSize int,
) (*hackernews.ListResp, error) {
	pageSize = pagination.ClampPageSize(pageSize)

	rows, err := s.repository.ListItems(ctx, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	page := pagination.Slice(rows, pageSize, func(item hackernews.Item) string {
		return item.ID.String()
	})

	return &hackernews.ListResp{
		Items:      page.Items,
		NextCursor: page.NextCursor,
	}, nil
}

func (s *hackerNewsServiceImpl) Sync(ctx context.Context) error {
	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	items := feed.Items
	if len(items) > s.syncLimit {
		items = items[:s.syncLimit]
	}

	upserted := 0
	for _, raw := range items {
		item, ok := s.mapItem(raw)
		if !ok {
			continue
		}

		written, err := s.repository.Upsert(ctx, item)
		if err != nil {
			return err
		}
		if written {
			upserted++
			metrics.HackerNewsItemsUpserted.Inc()
		}
	}

	logger.Info("[HACKERNEWS] Sync completed", map[string]interface{}{
		"fetched":  len(items),
		"upserted": upserted,
	})

	return nil
}

// mapItem converts a raw feed entry into a storable item. Entries without a
// usable identifier or link are skipped rather than failing the whole sync.
func (s *hackerNewsServiceImpl) mapItem(raw *gofeed.Item) (*hackernews.Item, bool) {
	guid := raw.GUID
	if guid == "" {
		guid = raw.Link
	}
	if guid == "" || raw.Link == "" || raw.Title == "" {
		return nil, false
	}

	item := &hackernews.Item{
		ID:          uuid.New(),
		Guid:        guid,
		Title:       strings.TrimSpace(raw.Title),
		URL:         raw.Link,
		PublishedAt: time.Now(),
	}

	if raw.PublishedParsed != nil {
		item.PublishedAt = *raw.PublishedParsed
	}

	if raw.Author != nil && raw.Author.Name != "" {
		name := raw.Author.Name
		item.Author = &name
	}

	if summary := strings.TrimSpace(s.sanitizer.Sanitize(raw.Description)); summary != "" {
		item.Summary = &summary
	}

	return item, true
}
