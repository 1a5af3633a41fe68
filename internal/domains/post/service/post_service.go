package service

import (
	"context"
	"fmt"
	"time"

	"pulse-backend/internal/domains/post"
	"pulse-backend/internal/shared/pagination"
	"pulse-backend/internal/shared/utils"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Enqueuer is the slice of the queue client the post service needs.
type Enqueuer interface {
	EnqueuePurgeShareStats(ctx context.Context, postID uuid.UUID) error
}

type postServiceImpl struct {
	repository post.PostRepository
	queue      Enqueuer
	sanitizer  *bluemonday.Policy
}

func NewPostService(repo post.PostRepository, queue Enqueuer) post.PostService {
	return &postServiceImpl{
		repository: repo,
		queue:      queue,
		// Post content is plain text; all markup is stripped.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ============================================================
// CREATE
// ============================================================
func (s *postServiceImpl) Create(
	ctx context.Context,
	authorID uuid.UUID,
	req *post.CreatePostReq,
) (*post.Post, error) {
	if req == nil {
		return nil, fmt.Errorf("create post: invalid request")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	content := s.sanitizer.Sanitize(req.Content)
	if content == "" {
		return nil, fmt.Errorf("create post: content is empty after sanitization")
	}

	entity := &post.Post{
		ID:        uuid.New(),
		Content:   content,
		Topics:    utils.ExtractHashtags(content),
		CreatedAt: time.Now(),
	}

	if err := s.repository.Create(ctx, authorID, entity); err != nil {
		return nil, err
	}

	// The feed row carries the author summary; read it back so the response
	// matches what the feed will serve.
	created, err := s.repository.GetByID(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ============================================================
// DELETE
// ============================================================
func (s *postServiceImpl) Delete(
	ctx context.Context,
	actorID, postID uuid.UUID,
) error {
	entity, err := s.repository.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if entity.Author.ID != actorID {
		return post.ErrNotAuthor
	}

	if err := s.repository.Delete(ctx, postID); err != nil {
		return err
	}

	// The post is gone either way; a failed enqueue only leaves orphaned
	// counters behind, so it is logged rather than surfaced.
	if err := s.queue.EnqueuePurgeShareStats(ctx, postID); err != nil {
		logger.Error("Delete: failed to enqueue share-stat purge", err)
	}

	return nil
}

// ============================================================
// FEEDS
// ============================================================
func (s *postServiceImpl) ForYou(
	ctx context.Context,
	cursor *uuid.UUID,
	pageSize int,
) (*post.FeedResp, error) {
	pageSize = pagination.ClampPageSize(pageSize)

	rows, err := s.repository.ForYouFeed(ctx, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	return feedPage(rows, pageSize), nil
}

func (s *postServiceImpl) Following(
	ctx context.Context,
	viewerID uuid.UUID,
	cursor *uuid.UUID,
	pageSize int,
) (*post.FeedResp, error) {
	pageSize = pagination.ClampPageSize(pageSize)

	rows, err := s.repository.FollowingFeed(ctx, viewerID, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	return feedPage(rows, pageSize), nil
}

func feedPage(rows []post.Post, pageSize int) *post.FeedResp {
	page := pagination.Slice(rows, pageSize, func(p post.Post) string { return p.ID.String() })
	return &post.FeedResp{
		Posts:      page.Items,
		NextCursor: page.NextCursor,
	}
}
