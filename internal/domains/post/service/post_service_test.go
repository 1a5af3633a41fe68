package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pulse-backend/internal/domains/post"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePosts(n int) []post.Post {
	now := time.Now()
	out := make([]post.Post, n)
	for i := range out {
		out[i] = post.Post{
			ID:      uuid.New(),
			Content: fmt.Sprintf("post %02d", i),
			Author: post.Author{
				ID:       uuid.New(),
				Username: fmt.Sprintf("author%02d", i),
			},
			// Descending creation order, newest first.
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

// feedFrom mimics the cursor semantics of the real query: the cursor row is
// the first row of the page.
func feedFrom(rows []post.Post, cursor *uuid.UUID, limit int) []post.Post {
	start := 0
	if cursor != nil {
		for i, p := range rows {
			if p.ID == *cursor {
				start = i
				break
			}
		}
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func TestForYou_PaginatesExactlyOnce(t *testing.T) {
	rows := makePosts(25)
	repo := &mockRepository{
		forYouFeed: func(ctx context.Context, cursor *uuid.UUID, limit int) ([]post.Post, error) {
			return feedFrom(rows, cursor, limit), nil
		},
	}

	svc := NewPostService(repo, &mockEnqueuer{})
	ctx := context.Background()

	first, err := svc.ForYou(ctx, nil, 20)
	require.NoError(t, err)
	assert.Len(t, first.Posts, 20)
	require.NotNil(t, first.NextCursor)

	cursorID, err := uuid.Parse(*first.NextCursor)
	require.NoError(t, err)

	second, err := svc.ForYou(ctx, &cursorID, 20)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 5)
	assert.Nil(t, second.NextCursor)

	// Concatenated pages cover all 25 rows exactly once, in order.
	all := append(append([]post.Post{}, first.Posts...), second.Posts...)
	require.Len(t, all, 25)
	for i, p := range all {
		assert.Equal(t, rows[i].ID, p.ID)
	}
}

func TestForYou_DefaultsPageSize(t *testing.T) {
	var gotLimit int
	repo := &mockRepository{
		forYouFeed: func(ctx context.Context, cursor *uuid.UUID, limit int) ([]post.Post, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	svc := NewPostService(repo, &mockEnqueuer{})

	feed, err := svc.ForYou(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 21, gotLimit, "the query over-fetches one row to detect the next page")
	assert.Empty(t, feed.Posts)
	assert.Nil(t, feed.NextCursor)
}

func TestCreate_SanitizesAndExtractsTopics(t *testing.T) {
	author := uuid.New()

	var stored *post.Post
	repo := &mockRepository{
		create: func(ctx context.Context, authorID uuid.UUID, p *post.Post) error {
			assert.Equal(t, author, authorID)
			stored = p
			return nil
		},
		getByID: func(ctx context.Context, id uuid.UUID) (*post.Post, error) {
			return stored, nil
		},
	}

	svc := NewPostService(repo, &mockEnqueuer{})

	created, err := svc.Create(context.Background(), author, &post.CreatePostReq{
		Content: `Shipping <script>alert(1)</script>the new #Golang build`,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotContains(t, created.Content, "<script>")
	assert.Contains(t, created.Content, "the new #Golang build")
	assert.Equal(t, []string{"golang"}, created.Topics)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreate_RejectsEmptyContent(t *testing.T) {
	svc := NewPostService(&mockRepository{}, &mockEnqueuer{})

	_, err := svc.Create(context.Background(), uuid.New(), &post.CreatePostReq{Content: ""})
	assert.Error(t, err)
}

func TestDelete_OnlyAuthorAndEnqueuesPurge(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	postID := uuid.New()

	deleted := false
	repo := &mockRepository{
		getByID: func(ctx context.Context, id uuid.UUID) (*post.Post, error) {
			return &post.Post{ID: postID, Author: post.Author{ID: author}}, nil
		},
		delete: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	queue := &mockEnqueuer{}

	svc := NewPostService(repo, queue)
	ctx := context.Background()

	err := svc.Delete(ctx, stranger, postID)
	assert.ErrorIs(t, err, post.ErrNotAuthor)
	assert.False(t, deleted)
	assert.Empty(t, queue.purged)

	require.NoError(t, svc.Delete(ctx, author, postID))
	assert.True(t, deleted)
	require.Len(t, queue.purged, 1)
	assert.Equal(t, postID, queue.purged[0])
}

func TestDelete_MissingPost(t *testing.T) {
	svc := NewPostService(&mockRepository{}, &mockEnqueuer{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
