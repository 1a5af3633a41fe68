package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulse-backend/internal/config"
	"pulse-backend/internal/domains/hackernews"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	upsert    func(ctx context.Context, item *hackernews.Item) (bool, error)
	listItems func(ctx context.Context, cursor *uuid.UUID, limit int) ([]hackernews.Item, error)
}

func (m *mockRepository) Upsert(ctx context.Context, item *hackernews.Item) (bool, error) {
	if m.upsert != nil {
		return m.upsert(ctx, item)
	}
	return true, nil
}

func (m *mockRepository) ListItems(ctx context.Context, cursor *uuid.UUID, limit int) ([]hackernews.Item, error) {
	if m.listItems != nil {
		return m.listItems(ctx, cursor, limit)
	}
	return nil, nil
}

const feedBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Hacker News: Front Page</title>
<item>
	<title>Show HN: A tiny database</title>
	<link>https://example.com/tinydb</link>
	<guid>https://news.ycombinator.com/item?id=1001</guid>
	<author>alice</author>
	<description>A &lt;b&gt;tiny&lt;/b&gt; database &lt;script&gt;alert(1)&lt;/script&gt;</description>
	<pubDate>Mon, 24 Aug 2026 10:00:00 +0000</pubDate>
</item>
<item>
	<title>Untitled story with no link</title>
	<guid>https://news.ycombinator.com/item?id=1002</guid>
</item>
<item>
	<title>Second story</title>
	<link>https://example.com/second</link>
	<guid>https://news.ycombinator.com/item?id=1003</guid>
	<pubDate>Mon, 24 Aug 2026 09:00:00 +0000</pubDate>
</item>
</channel>
</rss>`

func newTestService(t *testing.T, repo hackernews.HackerNewsRepository, syncLimit int) (hackernews.HackerNewsService, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feedBody)
	}))
	t.Cleanup(server.Close)

	svc := NewHackerNewsService(
		repo,
		config.HackerNewsConfig{FeedURL: server.URL},
		config.JobConfig{HNSyncLimit: syncLimit},
	)

	return svc, server
}

func TestSync_UpsertsSanitizedItems(t *testing.T) {
	var stored []*hackernews.Item
	repo := &mockRepository{
		upsert: func(ctx context.Context, item *hackernews.Item) (bool, error) {
			stored = append(stored, item)
			return true, nil
		},
	}

	svc, _ := newTestService(t, repo, 50)

	require.NoError(t, svc.Sync(context.Background()))

	// The link-less entry is skipped, the other two land.
	require.Len(t, stored, 2)

	first := stored[0]
	assert.Equal(t, "https://news.ycombinator.com/item?id=1001", first.Guid)
	assert.Equal(t, "Show HN: A tiny database", first.Title)
	assert.Equal(t, "https://example.com/tinydb", first.URL)
	require.NotNil(t, first.Summary)
	assert.NotContains(t, *first.Summary, "<script>")
	assert.NotContains(t, *first.Summary, "<b>")
	assert.Contains(t, *first.Summary, "tiny")
	assert.Equal(t, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), first.PublishedAt.UTC())

	// Stories without an author or description are stored with nil fields;
	// the columns are nullable, so the upsert must not reject them.
	second := stored[1]
	assert.Equal(t, "https://news.ycombinator.com/item?id=1003", second.Guid)
	assert.Nil(t, second.Author)
	assert.Nil(t, second.Summary)
}

func TestSync_HonorsSyncLimit(t *testing.T) {
	upserts := 0
	repo := &mockRepository{
		upsert: func(ctx context.Context, item *hackernews.Item) (bool, error) {
			upserts++
			return true, nil
		},
	}

	svc, _ := newTestService(t, repo, 1)

	require.NoError(t, svc.Sync(context.Background()))
	assert.Equal(t, 1, upserts)
}

func TestSync_UnreachableFeedFails(t *testing.T) {
	repo := &mockRepository{}
	svc, server := newTestService(t, repo, 50)
	server.Close()

	assert.Error(t, svc.Sync(context.Background()))
}

func TestList_DerivesNextCursor(t *testing.T) {
	now := time.Now()
	rows := make([]hackernews.Item, 21)
	for i := range rows {
		rows[i] = hackernews.Item{
			ID:          uuid.New(),
			Guid:        fmt.Sprintf("guid-%d", i),
			Title:       fmt.Sprintf("Story %d", i),
			URL:         "https://example.com",
			PublishedAt: now.Add(-time.Duration(i) * time.Minute),
		}
	}

	repo := &mockRepository{
		listItems: func(ctx context.Context, cursor *uuid.UUID, limit int) ([]hackernews.Item, error) {
			assert.Equal(t, 21, limit)
			return rows, nil
		},
	}

	svc := NewHackerNewsService(repo, config.HackerNewsConfig{}, config.JobConfig{HNSyncLimit: 50})

	resp, err := svc.List(context.Background(), nil, 20)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 20)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, rows[20].ID.String(), *resp.NextCursor)
}
