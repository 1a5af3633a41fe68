package service

import (
	"context"

	"pulse-backend/internal/domains/post"

	"github.com/google/uuid"
)

// mockRepository implements post.PostRepository with overridable function
// fields.
type mockRepository struct {
	create        func(ctx context.Context, authorID uuid.UUID, p *post.Post) error
	getByID       func(ctx context.Context, id uuid.UUID) (*post.Post, error)
	existsByID    func(ctx context.Context, id uuid.UUID) (bool, error)
	delete        func(ctx context.Context, id uuid.UUID) error
	forYouFeed    func(ctx context.Context, cursor *uuid.UUID, limit int) ([]post.Post, error)
	followingFeed func(ctx context.Context, viewerID uuid.UUID, cursor *uuid.UUID, limit int) ([]post.Post, error)
}

func (m *mockRepository) Create(ctx context.Context, authorID uuid.UUID, p *post.Post) error {
	if m.create != nil {
		return m.create(ctx, authorID, p)
	}
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return nil, post.ErrPostNotFound
}

func (m *mockRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsByID != nil {
		return m.existsByID(ctx, id)
	}
	return true, nil
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

func (m *mockRepository) ForYouFeed(ctx context.Context, cursor *uuid.UUID, limit int) ([]post.Post, error) {
	if m.forYouFeed != nil {
		return m.forYouFeed(ctx, cursor, limit)
	}
	return nil, nil
}

func (m *mockRepository) FollowingFeed(ctx context.Context, viewerID uuid.UUID, cursor *uuid.UUID, limit int) ([]post.Post, error) {
	if m.followingFeed != nil {
		return m.followingFeed(ctx, viewerID, cursor, limit)
	}
	return nil, nil
}

// mockEnqueuer records purge enqueues.
type mockEnqueuer struct {
	purged []uuid.UUID
	err    error
}

func (m *mockEnqueuer) EnqueuePurgeShareStats(ctx context.Context, postID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.purged = append(m.purged, postID)
	return nil
}
