package handler

import (
	"net/http"

	"pulse-backend/internal/domains/topic"
	"pulse-backend/internal/shared/response"
	"pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	service topic.TrendingService
}

func NewTopicHandler(svc topic.TrendingService) *TopicHandler {
	return &TopicHandler{service: svc}
}

// ========== GET /api/topics/trending ==========
func (h *TopicHandler) GetTrending(c *gin.Context) {
	resp, err := h.service.GetTrending(c.Request.Context())
	if err != nil {
		logger.Error("GetTrending: compute failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
