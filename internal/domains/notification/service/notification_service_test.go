package service

import (
	"context"
	"testing"
	"time"

	"pulse-backend/internal/domains/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	listByRecipient     func(ctx context.Context, recipientID uuid.UUID, cursor *uuid.UUID, limit int) ([]notification.Notification, error)
	countUnread         func(ctx context.Context, recipientID uuid.UUID) (int64, error)
	markRead            func(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID) (int64, error)
	markAllRead         func(ctx context.Context, recipientID uuid.UUID) (int64, error)
	deleteReadOlderThan func(ctx context.Context, days int) (int64, error)
}

func (m *mockRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, cursor *uuid.UUID, limit int) ([]notification.Notification, error) {
	if m.listByRecipient != nil {
		return m.listByRecipient(ctx, recipientID, cursor, limit)
	}
	return nil, nil
}

func (m *mockRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	if m.countUnread != nil {
		return m.countUnread(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockRepository) MarkRead(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if m.markRead != nil {
		return m.markRead(ctx, recipientID, ids)
	}
	return 0, nil
}

func (m *mockRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	if m.markAllRead != nil {
		return m.markAllRead(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockRepository) DeleteReadOlderThan(ctx context.Context, days int) (int64, error) {
	if m.deleteReadOlderThan != nil {
		return m.deleteReadOlderThan(ctx, days)
	}
	return 0, nil
}

func TestList_DerivesNextCursor(t *testing.T) {
	recipient := uuid.New()
	now := time.Now()

	rows := make([]notification.Notification, 11)
	for i := range rows {
		rows[i] = notification.Notification{
			ID:        uuid.New(),
			Type:      notification.TypeFollow,
			CreatedAt: now.Add(-time.Duration(i) * time.Second),
		}
	}

	repo := &mockRepository{
		listByRecipient: func(ctx context.Context, recipientID uuid.UUID, cursor *uuid.UUID, limit int) ([]notification.Notification, error) {
			assert.Equal(t, recipient, recipientID)
			assert.Equal(t, 11, limit)
			return rows, nil
		},
	}

	svc := NewNotificationService(repo)

	resp, err := svc.List(context.Background(), recipient, nil, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 10)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, rows[10].ID.String(), *resp.NextCursor)
}

func TestMarkRead_EmptyListMarksAll(t *testing.T) {
	recipient := uuid.New()

	allCalled := false
	repo := &mockRepository{
		markAllRead: func(ctx context.Context, recipientID uuid.UUID) (int64, error) {
			allCalled = true
			return 5, nil
		},
		markRead: func(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID) (int64, error) {
			t.Fatal("id-scoped update must not run for an empty list")
			return 0, nil
		},
	}

	svc := NewNotificationService(repo)

	resp, err := svc.MarkRead(context.Background(), recipient, nil)
	require.NoError(t, err)
	assert.True(t, allCalled)
	assert.Equal(t, int64(5), resp.Updated)
}

func TestMarkRead_ScopedToGivenIDs(t *testing.T) {
	recipient := uuid.New()
	targets := []uuid.UUID{uuid.New(), uuid.New()}

	repo := &mockRepository{
		markRead: func(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID) (int64, error) {
			assert.Equal(t, targets, ids)
			return int64(len(ids)), nil
		},
	}

	svc := NewNotificationService(repo)

	resp, err := svc.MarkRead(context.Background(), recipient, targets)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)
}
