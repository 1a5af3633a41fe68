package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse-backend/internal/domains/auth"
)

// AuthHandler proxies session introspection for the frontend.
type AuthHandler struct {
	resolver *auth.Resolver
}

func NewAuthHandler(resolver *auth.Resolver) *AuthHandler {
	return &AuthHandler{resolver: resolver}
}

// GetSession handles GET /api/auth/get-session.
// Responds with {session, user} or null; never an error status, so the
// frontend can always branch on the body.
func (h *AuthHandler) GetSession(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	data, err := h.resolver.Resolve(c.Request.Context(), c.GetHeader("Cookie"))
	if err != nil || data == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, data)
}
