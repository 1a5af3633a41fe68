package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"pulse-backend/internal/config"
	"pulse-backend/internal/domains/auth"
	infraCache "pulse-backend/internal/infrastructure/cache"
	"pulse-backend/internal/infrastructure/database"
	"pulse-backend/internal/infrastructure/queue"
	"pulse-backend/pkg/cache"

	authHandler "pulse-backend/internal/domains/auth/handler"

	"pulse-backend/internal/domains/hackernews"
	hnHandler "pulse-backend/internal/domains/hackernews/handler"
	hnRepo "pulse-backend/internal/domains/hackernews/repository"
	hnService "pulse-backend/internal/domains/hackernews/service"

	"pulse-backend/internal/domains/notification"
	notificationHandler "pulse-backend/internal/domains/notification/handler"
	notificationRepo "pulse-backend/internal/domains/notification/repository"
	notificationService "pulse-backend/internal/domains/notification/service"

	"pulse-backend/internal/domains/post"
	postHandler "pulse-backend/internal/domains/post/handler"
	postRepo "pulse-backend/internal/domains/post/repository"
	postService "pulse-backend/internal/domains/post/service"

	"pulse-backend/internal/domains/topic"
	topicHandler "pulse-backend/internal/domains/topic/handler"
	topicRepo "pulse-backend/internal/domains/topic/repository"
	topicService "pulse-backend/internal/domains/topic/service"

	"pulse-backend/internal/domains/user"
	userHandler "pulse-backend/internal/domains/user/handler"
	userRepo "pulse-backend/internal/domains/user/repository"
	userService "pulse-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Both processes build one:
// the API uses the handlers, the worker uses the services.
type Container struct {
	// Infrastructure, shared across all domains.
	Config   *config.Config
	DB       *database.PostgresDB
	Cache    cache.Cache
	Queue    *queue.Client
	Resolver *auth.Resolver

	// Repositories.
	UserRepo         user.UserRepository
	PostRepo         post.PostRepository
	NotificationRepo notification.NotificationRepository
	TopicRepo        topic.TopicRepository
	HackerNewsRepo   hackernews.HackerNewsRepository

	// Services.
	FollowService       user.FollowService
	SuggestionService   user.SuggestionService
	PostService         post.PostService
	ShareService        post.ShareService
	NotificationService notification.NotificationService
	TrendingService     topic.TrendingService
	HackerNewsService   hackernews.HackerNewsService

	// HTTP handlers.
	AuthHandler         *authHandler.AuthHandler
	UserHandler         *userHandler.UserHandler
	PostHandler         *postHandler.PostHandler
	NotificationHandler *notificationHandler.NotificationHandler
	TopicHandler        *topicHandler.TopicHandler
	HackerNewsHandler   *hnHandler.HackerNewsHandler
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer initializes the whole graph in dependency order:
// config, then infrastructure, then repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing...")

	c := &Container{}

	// ========== STEP 1: CONFIGURATION ==========
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	// ========== STEP 2: DATABASE ==========
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	if err := database.RunMigrations(db.URL()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("[CONTAINER] Database ready")

	// ========== STEP 3: CACHE ==========
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect is not part of the Cache interface; type-assert for the
	// eager check. A Redis outage at boot is not fatal, services degrade
	// per their own cache policies.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	// ========== STEP 4: QUEUE + IDENTITY ==========
	c.Queue = queue.NewClient(cfg.Redis)
	c.Resolver = auth.NewResolver(cfg.Identity)

	// ========== STEP 5: REPOSITORIES ==========
	c.initRepositories()

	// ========== STEP 6: SERVICES ==========
	c.initServices()

	// ========== STEP 7: HANDLERS ==========
	c.initHandlers()

	log.Println("[CONTAINER] Initialized successfully")
	return c, nil
}

// ========================================
// LAYER INITIALIZATION
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.NotificationRepo = notificationRepo.NewPostgresRepository(pool)
	c.TopicRepo = topicRepo.NewPostgresRepository(pool)
	c.HackerNewsRepo = hnRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.FollowService = userService.NewFollowService(c.UserRepo, c.Cache)

	// nil Rand selects the production source.
	c.SuggestionService = userService.NewSuggestionService(c.UserRepo, c.Cache, nil)

	c.PostService = postService.NewPostService(c.PostRepo, c.Queue)
	c.ShareService = postService.NewShareService(c.PostRepo, c.Cache)

	c.NotificationService = notificationService.NewNotificationService(c.NotificationRepo)

	c.TrendingService = topicService.NewTrendingService(c.TopicRepo, c.Cache, c.Config.Jobs)

	c.HackerNewsService = hnService.NewHackerNewsService(
		c.HackerNewsRepo,
		c.Config.HackerNews,
		c.Config.Jobs,
	)
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.Resolver)
	c.UserHandler = userHandler.NewUserHandler(c.FollowService, c.SuggestionService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.ShareService)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)
	c.TopicHandler = topicHandler.NewTopicHandler(c.TrendingService)
	c.HackerNewsHandler = hnHandler.NewHackerNewsHandler(c.HackerNewsService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases external connections. Called during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("[CONTAINER] Cleaning up resources...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close queue client: %v", err)
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("[CONTAINER] Failed to close Redis: %v", err)
			}
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("[CONTAINER] Cleanup completed")
}
