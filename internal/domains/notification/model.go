package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type discriminates what a notification is about.
type Type string

const (
	TypeFollow  Type = "follow"
	TypeMention Type = "mention"
	TypeShare   Type = "share"
)

// Notification is one inbox entry, denormalized with its issuer summary.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	Issuer    Issuer     `json:"issuer"`
	PostID    *uuid.UUID `json:"postId,omitempty"`
	Type      Type       `json:"type"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Issuer is the acting user rendered in the inbox row.
type Issuer struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
}

// ListResp is one page of the inbox.
type ListResp struct {
	Notifications []Notification `json:"notifications"`
	NextCursor    *string        `json:"nextCursor"`
}

// UnreadCountResp backs the navigation badge.
type UnreadCountResp struct {
	UnreadCount int64 `json:"unreadCount"`
}

// MarkReadReq marks the listed ids read, or everything when IDs is empty.
type MarkReadReq struct {
	IDs []uuid.UUID `json:"ids"`
}

// MarkReadResp reports how many rows flipped.
type MarkReadResp struct {
	Updated int64 `json:"updated"`
}
