package notification

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// REPOSITORY INTERFACE: NotificationRepository
// ============================================================

type NotificationRepository interface {
	// ListByRecipient returns up to limit notifications in descending
	// creation order, starting at the cursor row when cursor is non-nil.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, cursor *uuid.UUID, limit int) ([]Notification, error)

	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead flips the given notifications read, restricted to rows the
	// recipient owns. Returns the number of rows updated.
	MarkRead(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID) (int64, error)

	// MarkAllRead flips every unread notification for the recipient.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// DeleteReadOlderThan removes read notifications past the retention
	// window. Returns the number of rows removed.
	DeleteReadOlderThan(ctx context.Context, days int) (int64, error)
}
