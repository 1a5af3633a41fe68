package notification

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// SERVICE INTERFACE
// ============================================================

type NotificationService interface {
	List(ctx context.Context, recipientID uuid.UUID, cursor *uuid.UUID, pageSize int) (*ListResp, error)

	UnreadCount(ctx context.Context, recipientID uuid.UUID) (*UnreadCountResp, error)

	// MarkRead marks the given ids read, or the whole inbox when ids is
	// empty.
	MarkRead(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID) (*MarkReadResp, error)

	// CleanupOld enforces the retention window. Runs from the worker.
	CleanupOld(ctx context.Context, days int) (int64, error)
}
