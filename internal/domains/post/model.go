package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is one feed entry, denormalized with its author summary and topics.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	Topics    []string  `json:"topics"`
	CreatedAt time.Time `json:"createdAt"`
}

// Author is the profile subset rendered next to a post.
type Author struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
}

// Platform identifies where a post was shared to.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformReddit    Platform = "reddit"
	PlatformLinkedin  Platform = "linkedin"
	PlatformEmail     Platform = "email"
	PlatformClipboard Platform = "clipboard"
)

// AllPlatforms enumerates the counters the stats endpoint fans out over.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformTwitter,
		PlatformFacebook,
		PlatformReddit,
		PlatformLinkedin,
		PlatformEmail,
		PlatformClipboard,
	}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitter, PlatformFacebook, PlatformReddit,
		PlatformLinkedin, PlatformEmail, PlatformClipboard:
		return true
	}
	return false
}

// PlatformStats is the per-platform counter pair. Callers merge platforms
// client-side; the server never aggregates across them.
type PlatformStats struct {
	Platform Platform `json:"platform"`
	Shares   int64    `json:"shares"`
	Clicks   int64    `json:"clicks"`
}
