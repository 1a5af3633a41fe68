package queue

import (
	"encoding/json"
	"fmt"

	"pulse-backend/internal/config"
	"pulse-backend/internal/shared"
	"pulse-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// Scheduler registers the recurring jobs the worker runs: trending refresh,
// HackerNews sync and notification cleanup. One-off tasks such as share-stat
// purges are enqueued by the API instead.
type Scheduler struct {
	scheduler *asynq.Scheduler
	jobs      config.JobConfig
}

func NewScheduler(redisCfg config.RedisConfig, jobCfg config.JobConfig) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(
			asynq.RedisClientOpt{
				Addr:     redisCfg.Host,
				Password: redisCfg.Password,
				DB:       redisCfg.DB,
			},
			&asynq.SchedulerOpts{},
		),
		jobs: jobCfg,
	}
}

// Register wires every recurring job with its cron expression.
func (s *Scheduler) Register() error {
	if err := s.registerRefreshTrending(); err != nil {
		return err
	}
	if err := s.registerSyncHackerNews(); err != nil {
		return err
	}
	if err := s.registerCleanupNotifications(); err != nil {
		return err
	}
	return nil
}

func (s *Scheduler) registerRefreshTrending() error {
	task := asynq.NewTask(shared.TypeRefreshTrending, nil)

	entryID, err := s.scheduler.Register("*/10 * * * *", task,
		asynq.Queue(shared.QueueFeeds),
	)
	if err != nil {
		return fmt.Errorf("register trending refresh: %w", err)
	}

	logger.Info("[SCHEDULER] Registered trending refresh", map[string]interface{}{
		"entry_id": entryID,
		"cron":     "*/10 * * * *",
	})

	return nil
}

func (s *Scheduler) registerSyncHackerNews() error {
	task := asynq.NewTask(shared.TypeSyncHackerNews, nil)

	entryID, err := s.scheduler.Register("*/15 * * * *", task,
		asynq.Queue(shared.QueueFeeds),
	)
	if err != nil {
		return fmt.Errorf("register hackernews sync: %w", err)
	}

	logger.Info("[SCHEDULER] Registered hackernews sync", map[string]interface{}{
		"entry_id": entryID,
		"cron":     "*/15 * * * *",
	})

	return nil
}

func (s *Scheduler) registerCleanupNotifications() error {
	payload, err := json.Marshal(shared.CleanupNotificationsPayload{
		Days: s.jobs.CleanupRetentionDays,
	})
	if err != nil {
		return fmt.Errorf("marshal cleanup payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeCleanupNotifications, payload)

	entryID, err := s.scheduler.Register("0 3 * * *", task,
		asynq.Queue(shared.QueueCleanup),
	)
	if err != nil {
		return fmt.Errorf("register notification cleanup: %w", err)
	}

	logger.Info("[SCHEDULER] Registered notification cleanup", map[string]interface{}{
		"entry_id":       entryID,
		"cron":           "0 3 * * *",
		"retention_days": s.jobs.CleanupRetentionDays,
	})

	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
