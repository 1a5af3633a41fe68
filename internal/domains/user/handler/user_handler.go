package handler

import (
	"errors"
	"net/http"

	"pulse-backend/internal/domains/user"
	"pulse-backend/internal/shared/middleware"
	"pulse-backend/internal/shared/response"
	"pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type UserHandler struct {
	follows     user.FollowService
	suggestions user.SuggestionService
}

func NewUserHandler(follows user.FollowService, suggestions user.SuggestionService) *UserHandler {
	return &UserHandler{
		follows:     follows,
		suggestions: suggestions,
	}
}

// ========== GET /api/users/suggested ==========
func (h *UserHandler) GetSuggested(c *gin.Context) {
	viewerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	suggested, err := h.suggestions.Suggest(c.Request.Context(), viewerID)
	if err != nil {
		logger.Error("GetSuggested: pipeline failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, suggested)
}

// ========== GET /api/users/:id/followers ==========
// Served to anonymous viewers too; isFollowedByUser is simply false without
// a session.
func (h *UserHandler) GetFollowerInfo(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	viewerID, _ := middleware.CurrentUserID(c)

	info, err := h.follows.GetFollowerInfo(c.Request.Context(), viewerID, subjectID)
	if err != nil {
		h.respondFollowError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, info)
}

// ========== POST /api/users/:id/followers ==========
func (h *UserHandler) Follow(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	viewerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	info, err := h.follows.Follow(c.Request.Context(), viewerID, subjectID)
	if err != nil {
		h.respondFollowError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, info)
}

// ========== DELETE /api/users/:id/followers ==========
func (h *UserHandler) Unfollow(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	viewerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	info, err := h.follows.Unfollow(c.Request.Context(), viewerID, subjectID)
	if err != nil {
		h.respondFollowError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, info)
}

func (h *UserHandler) respondFollowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, user.ErrSelfFollow):
		response.BadRequest(c, "Cannot follow yourself")
	default:
		logger.Error("follow state request failed", err)
		response.InternalServerError(c)
	}
}
