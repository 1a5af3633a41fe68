package repository

import (
	"context"
	"fmt"

	"pulse-backend/internal/domains/hackernews"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) hackernews.HackerNewsRepository {
	return &postgresRepository{pool: pool}
}

// ============================================================
// MUTATION: Upsert
// ============================================================
func (r *postgresRepository) Upsert(
	ctx context.Context,
	item *hackernews.Item,
) (bool, error) {
	const query = `
		INSERT INTO hn_items (id, guid, title, url, author, summary, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (guid) DO UPDATE SET
			title        = EXCLUDED.title,
			url          = EXCLUDED.url,
			author       = EXCLUDED.author,
			summary      = EXCLUDED.summary,
			published_at = EXCLUDED.published_at
	`

	result, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Guid,
		item.Title,
		item.URL,
		item.Author,
		item.Summary,
		item.PublishedAt,
	)
	if err != nil {
		logger.Error("Upsert: database error", err)
		return false, fmt.Errorf("failed to upsert feed item: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ============================================================
// READ: ListItems
// ============================================================
// A cursor pointing at a row that no longer exists ends the listing early
// (the tuple comparison is NULL); the next refresh starts from the head.
func (r *postgresRepository) ListItems(
	ctx context.Context,
	cursor *uuid.UUID,
	limit int,
) ([]hackernews.Item, error) {
	const query = `
		SELECT id, guid, title, url, author, summary, published_at, created_at
		FROM hn_items
		WHERE ($1::uuid IS NULL
			OR (published_at, id) <= (SELECT published_at, id FROM hn_items WHERE id = $1))
		ORDER BY published_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, cursor, limit)
	if err != nil {
		logger.Error("ListItems: query failed", err)
		return nil, fmt.Errorf("failed to list feed items: %w", err)
	}
	defer rows.Close()

	entities := make([]hackernews.Item, 0, limit)
	for rows.Next() {
		entity := hackernews.Item{}
		err := rows.Scan(
			&entity.ID,
			&entity.Guid,
			&entity.Title,
			&entity.URL,
			&entity.Author,
			&entity.Summary,
			&entity.PublishedAt,
			&entity.CreatedAt,
		)
		if err != nil {
			logger.Error("ListItems: scan error", err)
			return nil, fmt.Errorf("failed to scan feed item: %w", err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("ListItems: rows error", err)
		return nil, fmt.Errorf("failed to list feed items: %w", err)
	}

	return entities, nil
}
