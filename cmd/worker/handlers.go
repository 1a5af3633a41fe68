package main

import (
	"github.com/hibiken/asynq"

	hnJob "pulse-backend/internal/domains/hackernews/job"
	notificationJob "pulse-backend/internal/domains/notification/job"
	postJob "pulse-backend/internal/domains/post/job"
	topicJob "pulse-backend/internal/domains/topic/job"
	"pulse-backend/internal/shared"
	"pulse-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	purgeShareStats      *postJob.PurgeShareStatsHandler
	refreshTrending      *topicJob.RefreshTrendingHandler
	syncHackerNews       *hnJob.SyncHandler
	cleanupNotifications *notificationJob.CleanupOldHandler
}

// initializeHandlers wires job handlers to the container's services.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		purgeShareStats:      postJob.NewPurgeShareStatsHandler(c.ShareService),
		refreshTrending:      topicJob.NewRefreshTrendingHandler(c.TrendingService),
		syncHackerNews:       hnJob.NewSyncHandler(c.HackerNewsService),
		cleanupNotifications: notificationJob.NewCleanupOldHandler(c.NotificationService),
	}
}

// RegisterHandlers maps task types to handlers.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypePurgeShareStats, h.purgeShareStats.ProcessTask)
	mux.HandleFunc(shared.TypeRefreshTrending, h.refreshTrending.ProcessTask)
	mux.HandleFunc(shared.TypeSyncHackerNews, h.syncHackerNews.ProcessTask)
	mux.HandleFunc(shared.TypeCleanupNotifications, h.cleanupNotifications.ProcessTask)
}
