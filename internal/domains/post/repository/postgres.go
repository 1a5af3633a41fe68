package repository

import (
	"context"
	"errors"
	"fmt"

	"pulse-backend/internal/domains/post"
	"pulse-backend/pkg/database"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.PostRepository {
	return &postgresRepository{pool: pool}
}

// selectColumns is shared by every read so Scan order stays consistent.
const selectColumns = `
	p.id,
	u.id, u.username, u.display_name, u.avatar_url,
	p.content, p.created_at,
	COALESCE(array_agg(t.topic ORDER BY t.topic) FILTER (WHERE t.topic IS NOT NULL), '{}') AS topics
`

func scanPost(row pgx.Row) (*post.Post, error) {
	entity := &post.Post{}
	err := row.Scan(
		&entity.ID,
		&entity.Author.ID,
		&entity.Author.Username,
		&entity.Author.DisplayName,
		&entity.Author.AvatarURL,
		&entity.Content,
		&entity.CreatedAt,
		&entity.Topics,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// ============================================================
// CREATE
// ============================================================
func (r *postgresRepository) Create(
	ctx context.Context,
	authorID uuid.UUID,
	entity *post.Post,
) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		const postQuery = `
			INSERT INTO posts (id, author_id, content, created_at)
			VALUES ($1, $2, $3, $4)
		`

		if _, err := tx.Exec(ctx, postQuery, entity.ID, authorID, entity.Content, entity.CreatedAt); err != nil {
			logger.Error("Create: post insert failed", err)
			return fmt.Errorf("failed to create post: %w", err)
		}

		const topicQuery = `
			INSERT INTO post_topics (post_id, topic)
			VALUES ($1, $2)
			ON CONFLICT (post_id, topic) DO NOTHING
		`

		for _, topic := range entity.Topics {
			if _, err := tx.Exec(ctx, topicQuery, entity.ID, topic); err != nil {
				logger.Error("Create: topic insert failed", err)
				return fmt.Errorf("failed to create post topic: %w", err)
			}
		}

		return nil
	})
}

// ============================================================
// READ: GetByID
// ============================================================
func (r *postgresRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON u.id = p.author_id
		LEFT JOIN post_topics t ON t.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, u.id
	`, selectColumns)

	entity, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) ExistsByID(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {
	const query = "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)"

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}

	return exists, nil
}

// ============================================================
// DELETE
// ============================================================
func (r *postgresRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	const query = "DELETE FROM posts WHERE id = $1"

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return nil
}

// ============================================================
// READ: ForYouFeed
// ============================================================
// The cursor names the row the page starts at. The (created_at, id) tuple
// comparison keeps the ordering total, so newer inserts never shift a cursor
// already handed out.
//
// If the cursor row was deleted between pages the subselect yields no row,
// the comparison is NULL and the page comes back empty. The client sees a
// terminated feed one page early; a refresh restarts cleanly from the head.
func (r *postgresRepository) ForYouFeed(
	ctx context.Context,
	cursor *uuid.UUID,
	limit int,
) ([]post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON u.id = p.author_id
		LEFT JOIN post_topics t ON t.post_id = p.id
		WHERE ($1::uuid IS NULL
			OR (p.created_at, p.id) <= (SELECT created_at, id FROM posts WHERE id = $1))
		GROUP BY p.id, u.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2
	`, selectColumns)

	return r.queryFeed(ctx, query, cursor, limit)
}

// ============================================================
// READ: FollowingFeed
// ============================================================
func (r *postgresRepository) FollowingFeed(
	ctx context.Context,
	viewerID uuid.UUID,
	cursor *uuid.UUID,
	limit int,
) ([]post.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		INNER JOIN users u ON u.id = p.author_id
		LEFT JOIN post_topics t ON t.post_id = p.id
		WHERE p.author_id IN (
				SELECT following_id FROM follows WHERE follower_id = $3
			)
			AND ($1::uuid IS NULL
				OR (p.created_at, p.id) <= (SELECT created_at, id FROM posts WHERE id = $1))
		GROUP BY p.id, u.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2
	`, selectColumns)

	return r.queryFeed(ctx, query, cursor, limit, viewerID)
}

func (r *postgresRepository) queryFeed(
	ctx context.Context,
	query string,
	cursor *uuid.UUID,
	limit int,
	extraArgs ...interface{},
) ([]post.Post, error) {
	args := append([]interface{}{cursor, limit}, extraArgs...)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("queryFeed: query failed", err)
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}
	defer rows.Close()

	entities := make([]post.Post, 0, limit)
	for rows.Next() {
		entity, err := scanPost(rows)
		if err != nil {
			logger.Error("queryFeed: scan error", err)
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		entities = append(entities, *entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("queryFeed: rows error", err)
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return entities, nil
}
