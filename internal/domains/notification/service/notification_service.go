package service

import (
	"context"

	"pulse-backend/internal/domains/notification"
	"pulse-backend/internal/shared/pagination"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
)

type notificationServiceImpl struct {
	repository notification.NotificationRepository
}

func NewNotificationService(repo notification.NotificationRepository) notification.NotificationService {
	return &notificationServiceImpl{repository: repo}
}

func (s *notificationServiceImpl) List(
	ctx context.Context,
	recipientID uuid.UUID,
	cursor *uuid.UUID,
	pageSize int,
) (*notification.ListResp, error) {
	pageSize = pagination.ClampPageSize(pageSize)

	rows, err := s.repository.ListByRecipient(ctx, recipientID, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	page := pagination.Slice(rows, pageSize, func(n notification.Notification) string {
		return n.ID.String()
	})

	return &notification.ListResp{
		Notifications: page.Items,
		NextCursor:    page.NextCursor,
	}, nil
}

func (s *notificationServiceImpl) UnreadCount(
	ctx context.Context,
	recipientID uuid.UUID,
) (*notification.UnreadCountResp, error) {
	count, err := s.repository.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	return &notification.UnreadCountResp{UnreadCount: count}, nil
}

func (s *notificationServiceImpl) MarkRead(
	ctx context.Context,
	recipientID uuid.UUID,
	ids []uuid.UUID,
) (*notification.MarkReadResp, error) {
	var updated int64
	var err error

	if len(ids) == 0 {
		updated, err = s.repository.MarkAllRead(ctx, recipientID)
	} else {
		updated, err = s.repository.MarkRead(ctx, recipientID, ids)
	}
	if err != nil {
		return nil, err
	}

	return &notification.MarkReadResp{Updated: updated}, nil
}

func (s *notificationServiceImpl) CleanupOld(ctx context.Context, days int) (int64, error) {
	removed, err := s.repository.DeleteReadOlderThan(ctx, days)
	if err != nil {
		return 0, err
	}

	logger.Info("[NOTIFICATION] Cleanup completed", map[string]interface{}{
		"removed":        removed,
		"retention_days": days,
	})

	return removed, nil
}
