package repository

import (
	"context"
	"fmt"
	"time"

	"pulse-backend/internal/domains/topic"
	"pulse-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) topic.TopicRepository {
	return &postgresRepository{pool: pool}
}

// ============================================================
// READ: UsageSince
// ============================================================
func (r *postgresRepository) UsageSince(
	ctx context.Context,
	since time.Time,
) ([]topic.TopicUsage, error) {
	const query = `
		SELECT t.topic, COUNT(*), MAX(p.created_at)
		FROM post_topics t
		INNER JOIN posts p ON p.id = t.post_id
		WHERE p.created_at >= $1
		GROUP BY t.topic
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		logger.Error("UsageSince: query failed", err)
		return nil, fmt.Errorf("failed to aggregate topic usage: %w", err)
	}
	defer rows.Close()

	entities := []topic.TopicUsage{}
	for rows.Next() {
		entity := topic.TopicUsage{}
		if err := rows.Scan(&entity.Topic, &entity.Count, &entity.LastUsed); err != nil {
			logger.Error("UsageSince: scan error", err)
			return nil, fmt.Errorf("failed to scan topic usage: %w", err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("UsageSince: rows error", err)
		return nil, fmt.Errorf("failed to aggregate topic usage: %w", err)
	}

	return entities, nil
}
