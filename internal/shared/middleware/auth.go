package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulse-backend/internal/domains/auth"
	"pulse-backend/internal/shared/response"
)

const (
	ctxSessionKey = "session"
	ctxUserKey    = "user"
	ctxUserIDKey  = "userID"
)

// RequireSession gates a route group behind an authenticated session.
// Anonymous callers get the uniform 401 body and the handler never runs, so
// gated endpoints cannot produce side effects without a session.
func RequireSession(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := resolver.Resolve(c.Request.Context(), c.GetHeader("Cookie"))
		if err != nil || data == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, data.Session)
		c.Set(ctxUserKey, data.User)
		c.Set(ctxUserIDKey, data.User.ID)

		c.Next()
	}
}

// OptionalSession resolves the caller's identity when present but never
// rejects. Used by read endpoints whose response is personalized for viewers
// yet still served to anonymous callers.
func OptionalSession(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := resolver.Resolve(c.Request.Context(), c.GetHeader("Cookie"))
		if err == nil && data != nil {
			c.Set(ctxSessionKey, data.Session)
			c.Set(ctxUserKey, data.User)
			c.Set(ctxUserIDKey, data.User.ID)
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id.
// Second return is false for anonymous requests.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// CurrentUser returns the session user injected by the gate.
func CurrentUser(c *gin.Context) (*auth.SessionUser, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*auth.SessionUser)
	return u, ok
}
