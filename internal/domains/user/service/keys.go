package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cache keys shared by the follow and suggestion services. Invalidation in
// one service must match the keys written by the other, so they live in one
// place.
const (
	followerInfoTTL   = 60 * time.Second
	suggestedUsersTTL = 5 * time.Minute
	recentlyShownTTL  = time.Hour
)

func followerInfoKey(viewerID, subjectID uuid.UUID) string {
	return fmt.Sprintf("follower-info:%s:%s", viewerID, subjectID)
}

// followerInfoSubjectPattern matches every viewer's cached entry for a
// subject, used for fan-out invalidation after follow/unfollow.
func followerInfoSubjectPattern(subjectID uuid.UUID) string {
	return fmt.Sprintf("follower-info:*:%s", subjectID)
}

func suggestedUsersKey(viewerID uuid.UUID) string {
	return fmt.Sprintf("suggested-users:%s", viewerID)
}

func recentlyShownKey(viewerID uuid.UUID) string {
	return fmt.Sprintf("recently-shown-users:%s", viewerID)
}
