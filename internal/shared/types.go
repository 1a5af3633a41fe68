package shared

// Asynq task type names
const (
	TypeRefreshTrending      = "topics:refresh_trending"
	TypeSyncHackerNews       = "hackernews:sync"
	TypePurgeShareStats      = "posts:purge_share_stats"
	TypeCleanupNotifications = "notifications:cleanup_old"
)

// Queue names with their worker priorities
const (
	QueueDefault = "default"
	QueueFeeds   = "feeds"
	QueueCleanup = "cleanup"
)

// PurgeShareStatsPayload carries the post whose counters should be removed.
type PurgeShareStatsPayload struct {
	PostID string `json:"post_id"`
}

// CleanupNotificationsPayload optionally overrides the retention window.
type CleanupNotificationsPayload struct {
	Days int `json:"days"`
}
