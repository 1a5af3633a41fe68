package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pulse-backend/internal/domains/post"
	"pulse-backend/internal/shared/middleware"
	"pulse-backend/internal/shared/response"
	"pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type PostHandler struct {
	posts  post.PostService
	shares post.ShareService
}

func NewPostHandler(posts post.PostService, shares post.ShareService) *PostHandler {
	return &PostHandler{
		posts:  posts,
		shares: shares,
	}
}

// parseFeedParams reads the cursor and limit query params shared by the feed
// endpoints.
func parseFeedParams(c *gin.Context) (*uuid.UUID, int, error) {
	var cursor *uuid.UUID
	if raw := c.Query("cursor"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, 0, errors.New("invalid cursor")
		}
		cursor = &id
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, 0, errors.New("invalid limit")
		}
		limit = n
	}

	return cursor, limit, nil
}

// ========== GET /api/posts/for-you ==========
func (h *PostHandler) ForYou(c *gin.Context) {
	cursor, limit, err := parseFeedParams(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	feed, err := h.posts.ForYou(c.Request.Context(), cursor, limit)
	if err != nil {
		logger.Error("ForYou: feed read failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, feed)
}

// ========== GET /api/posts/following ==========
func (h *PostHandler) Following(c *gin.Context) {
	viewerID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	cursor, limit, err := parseFeedParams(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	feed, err := h.posts.Following(c.Request.Context(), viewerID, cursor, limit)
	if err != nil {
		logger.Error("Following: feed read failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, feed)
}

// ========== POST /api/posts ==========
func (h *PostHandler) Create(c *gin.Context) {
	authorID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req post.CreatePostReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.posts.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		var vErr validation.Errors
		if errors.As(err, &vErr) {
			response.BadRequest(c, vErr.Error())
			return
		}
		logger.Error("Create: post creation failed", err)
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ========== DELETE /api/posts/:id ==========
func (h *PostHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post id")
		return
	}

	if err := h.posts.Delete(c.Request.Context(), actorID, postID); err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			response.NotFound(c, "Post not found")
		case errors.Is(err, post.ErrNotAuthor):
			response.Forbidden(c, "Only the author can delete a post")
		default:
			logger.Error("Delete: post deletion failed", err)
			response.InternalServerError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ========== POST /api/posts/:id/share ==========
func (h *PostHandler) RecordShare(c *gin.Context) {
	h.recordCounter(c, func(ctx *gin.Context, postID uuid.UUID, platform post.Platform) (interface{}, error) {
		count, err := h.shares.RecordShare(ctx.Request.Context(), postID, platform)
		if err != nil {
			return nil, err
		}
		return post.ShareCountResp{Shares: count}, nil
	})
}

// ========== POST /api/posts/:id/share/click ==========
func (h *PostHandler) RecordClick(c *gin.Context) {
	h.recordCounter(c, func(ctx *gin.Context, postID uuid.UUID, platform post.Platform) (interface{}, error) {
		count, err := h.shares.RecordClick(ctx.Request.Context(), postID, platform)
		if err != nil {
			return nil, err
		}
		return post.ClickCountResp{Clicks: count}, nil
	})
}

func (h *PostHandler) recordCounter(
	c *gin.Context,
	record func(c *gin.Context, postID uuid.UUID, platform post.Platform) (interface{}, error),
) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post id")
		return
	}

	var req post.ShareReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Unknown platform")
		return
	}

	body, err := record(c, postID, req.Platform)
	if err != nil {
		h.respondShareError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, body)
}

// ========== GET /api/posts/:id/share/stats ==========
func (h *PostHandler) ShareStats(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post id")
		return
	}

	stats, err := h.shares.Stats(c.Request.Context(), postID)
	if err != nil {
		h.respondShareError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

func (h *PostHandler) respondShareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, post.ErrInvalidPlatform):
		response.BadRequest(c, "Unknown platform")
	default:
		logger.Error("share counter request failed", err)
		response.InternalServerError(c)
	}
}
