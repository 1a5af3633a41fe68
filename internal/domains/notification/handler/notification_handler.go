package handler

import (
	"net/http"
	"strconv"

	"pulse-backend/internal/domains/notification"
	"pulse-backend/internal/shared/middleware"
	"pulse-backend/internal/shared/response"
	"pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// ========== GET /api/notifications ==========
func (h *NotificationHandler) List(c *gin.Context) {
	recipientID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var cursor *uuid.UUID
	if raw := c.Query("cursor"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid cursor")
			return
		}
		cursor = &id
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}

	resp, err := h.service.List(c.Request.Context(), recipientID, cursor, limit)
	if err != nil {
		logger.Error("List: notification read failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// ========== GET /api/notifications/unread-count ==========
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	recipientID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	resp, err := h.service.UnreadCount(c.Request.Context(), recipientID)
	if err != nil {
		logger.Error("UnreadCount: count failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// ========== POST /api/notifications/mark-read ==========
// An empty or absent id list marks the whole inbox read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	recipientID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req notification.MarkReadReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.MarkRead(c.Request.Context(), recipientID, req.IDs)
	if err != nil {
		logger.Error("MarkRead: update failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
