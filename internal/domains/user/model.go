package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile subset the aggregator serves. Profiles are owned by the
// identity service; this side only reads them.
type User struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
	Aura        int       `json:"aura"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowerInfo is the derived view of a (viewer, subject) pair. It is never
// persisted; it is recomputed from the follows table and cached with a short
// TTL.
type FollowerInfo struct {
	Followers        int64 `json:"followers"`
	IsFollowedByUser bool  `json:"isFollowedByUser"`
}

// MutualFollower is the summary shown under a suggestion ("followed by ...").
type MutualFollower struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
}

// SuggestedUser is one entry of a viewer's suggestion list.
type SuggestedUser struct {
	User
	FollowerCount   int64            `json:"followerCount"`
	MutualFollowers []MutualFollower `json:"mutualFollowers"`
}
