package job

import (
	"context"

	"pulse-backend/internal/domains/notification"
	"pulse-backend/internal/shared"
	"pulse-backend/internal/shared/utils"

	"github.com/hibiken/asynq"
)

const defaultRetentionDays = 30

// CleanupOldHandler deletes read notifications past the retention window.
// Scheduled daily; unread rows are never touched.
type CleanupOldHandler struct {
	service notification.NotificationService
}

func NewCleanupOldHandler(svc notification.NotificationService) *CleanupOldHandler {
	return &CleanupOldHandler{service: svc}
}

func (h *CleanupOldHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.CleanupNotificationsPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return err
	}

	days := payload.Days
	if days <= 0 {
		days = defaultRetentionDays
	}

	_, err := h.service.CleanupOld(ctx, days)
	return err
}
