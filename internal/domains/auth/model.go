package auth

import (
	"time"

	"github.com/google/uuid"
)

// Session mirrors the identity service's session record. Owned by the
// identity service; this API only reads it.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionUser is the user subset attached to a session.
type SessionUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	Aura        int       `json:"aura"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SessionData is the introspection result: the authenticated pair, or nil as
// a whole when the caller is anonymous.
type SessionData struct {
	Session *Session     `json:"session"`
	User    *SessionUser `json:"user"`
}
