package handler

import (
	"net/http"
	"strconv"

	"pulse-backend/internal/domains/hackernews"
	"pulse-backend/internal/shared/response"
	"pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HackerNewsHandler struct {
	service hackernews.HackerNewsService
}

func NewHackerNewsHandler(svc hackernews.HackerNewsService) *HackerNewsHandler {
	return &HackerNewsHandler{service: svc}
}

// ========== GET /api/hackernews ==========
func (h *HackerNewsHandler) List(c *gin.Context) {
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

	resp, err := h.service.List(c.Request.Context(), cursor, limit)
	if err != nil {
		logger.Error("List: feed read failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
