package main

import (
	"net/http"
	"os"

	"pulse-backend/internal/shared/middleware"
	"pulse-backend/internal/shared/response"
	"pulse-backend/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(os.Getenv("CORS_ALLOWED_ORIGIN")),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupUserRoutes(api, c)
		setupPostRoutes(api, c)
		setupNotificationRoutes(api, c)
		setupTopicRoutes(api, c)
		setupHackerNewsRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.GET("/get-session", c.AuthHandler.GetSession)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.GET("/suggested",
			middleware.RequireSession(c.Resolver),
			c.UserHandler.GetSuggested,
		)

		// Follower info works for anonymous readers; isFollowedByUser is
		// simply false without a session.
		users.GET("/:id/followers",
			middleware.OptionalSession(c.Resolver),
			c.UserHandler.GetFollowerInfo,
		)
		users.POST("/:id/followers",
			middleware.RequireSession(c.Resolver),
			c.UserHandler.Follow,
		)
		users.DELETE("/:id/followers",
			middleware.RequireSession(c.Resolver),
			c.UserHandler.Unfollow,
		)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(api *gin.RouterGroup, c *container.Container) {
	shareLimiter := middleware.NewRateLimiter(
		c.Config.RateLimit.SharePerMinute,
		c.Config.RateLimit.ShareBurst,
	)

	posts := api.Group("/posts")
	{
		posts.GET("/for-you",
			middleware.RequireSession(c.Resolver),
			c.PostHandler.ForYou,
		)
		posts.GET("/following",
			middleware.RequireSession(c.Resolver),
			c.PostHandler.Following,
		)
		posts.POST("",
			middleware.RequireSession(c.Resolver),
			c.PostHandler.Create,
		)
		posts.DELETE("/:id",
			middleware.RequireSession(c.Resolver),
			c.PostHandler.Delete,
		)

		// Share endpoints are public but rate-limited per client IP.
		posts.POST("/:id/share",
			shareLimiter.Middleware(),
			c.PostHandler.RecordShare,
		)
		posts.POST("/:id/share/click",
			shareLimiter.Middleware(),
			c.PostHandler.RecordClick,
		)
		posts.GET("/:id/share/stats", c.PostHandler.ShareStats)
	}
}

// ========================================
// NOTIFICATION ROUTES
// ========================================
func setupNotificationRoutes(api *gin.RouterGroup, c *container.Container) {
	notifications := api.Group("/notifications")
	notifications.Use(middleware.RequireSession(c.Resolver))
	{
		notifications.GET("", c.NotificationHandler.List)
		notifications.GET("/unread-count", c.NotificationHandler.UnreadCount)
		notifications.POST("/mark-read", c.NotificationHandler.MarkRead)
	}
}

// ========================================
// TOPIC ROUTES
// ========================================
func setupTopicRoutes(api *gin.RouterGroup, c *container.Container) {
	topics := api.Group("/topics")
	{
		topics.GET("/trending", c.TopicHandler.GetTrending)
	}
}

// ========================================
// HACKERNEWS ROUTES
// ========================================
func setupHackerNewsRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/hackernews", c.HackerNewsHandler.List)
}

// ========================================
// HEALTH CHECK
// ========================================
// Probes the database and the cache. The cache being down degrades features
// but does not fail the probe, it is reported as a component status instead.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		overall := "ok"
		status := http.StatusOK
		switch {
		case dbStatus != "ok":
			overall = "down"
			status = http.StatusServiceUnavailable
		case cacheStatus != "ok":
			overall = "degraded"
		}

		response.JSON(ctx, status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
