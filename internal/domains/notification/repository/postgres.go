package repository

import (
	"context"
	"fmt"

	"pulse-backend/internal/domains/notification"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) notification.NotificationRepository {
	return &postgresRepository{pool: pool}
}

// ============================================================
// READ: ListByRecipient
// ============================================================
// A cursor whose row was cleaned up in the meantime ends the listing early
// (the tuple comparison is NULL); the next refresh starts from the head.
func (r *postgresRepository) ListByRecipient(
	ctx context.Context,
	recipientID uuid.UUID,
	cursor *uuid.UUID,
	limit int,
) ([]notification.Notification, error) {
	const query = `
		SELECT
			n.id,
			u.id, u.username, u.display_name, u.avatar_url,
			n.post_id, n.type, n.read, n.created_at
		FROM notifications n
		INNER JOIN users u ON u.id = n.issuer_id
		WHERE n.recipient_id = $1
			AND ($2::uuid IS NULL
				OR (n.created_at, n.id) <= (SELECT created_at, id FROM notifications WHERE id = $2))
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, recipientID, cursor, limit)
	if err != nil {
		logger.Error("ListByRecipient: query failed", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	entities := make([]notification.Notification, 0, limit)
	for rows.Next() {
		entity := notification.Notification{}
		err := rows.Scan(
			&entity.ID,
			&entity.Issuer.ID,
			&entity.Issuer.Username,
			&entity.Issuer.DisplayName,
			&entity.Issuer.AvatarURL,
			&entity.PostID,
			&entity.Type,
			&entity.Read,
			&entity.CreatedAt,
		)
		if err != nil {
			logger.Error("ListByRecipient: scan error", err)
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("ListByRecipient: rows error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return entities, nil
}

// ============================================================
// READ: CountUnread
// ============================================================
func (r *postgresRepository) CountUnread(
	ctx context.Context,
	recipientID uuid.UUID,
) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM notifications
		WHERE recipient_id = $1 AND read = FALSE
	`

	var count int64
	err := r.pool.QueryRow(ctx, query, recipientID).Scan(&count)
	if err != nil {
		logger.Error("CountUnread: database error", err)
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// ============================================================
// MUTATION: MarkRead / MarkAllRead
// ============================================================
// The recipient filter keeps callers from flipping other users' rows even
// when they guess valid ids.
func (r *postgresRepository) MarkRead(
	ctx context.Context,
	recipientID uuid.UUID,
	ids []uuid.UUID,
) (int64, error) {
	const query = `
		UPDATE notifications
		SET read = TRUE
		WHERE recipient_id = $1 AND id = ANY($2::uuid[]) AND read = FALSE
	`

	result, err := r.pool.Exec(ctx, query, recipientID, ids)
	if err != nil {
		logger.Error("MarkRead: database error", err)
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *postgresRepository) MarkAllRead(
	ctx context.Context,
	recipientID uuid.UUID,
) (int64, error) {
	const query = `
		UPDATE notifications
		SET read = TRUE
		WHERE recipient_id = $1 AND read = FALSE
	`

	result, err := r.pool.Exec(ctx, query, recipientID)
	if err != nil {
		logger.Error("MarkAllRead: database error", err)
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return result.RowsAffected(), nil
}

// ============================================================
// MUTATION: DeleteReadOlderThan
// ============================================================
func (r *postgresRepository) DeleteReadOlderThan(
	ctx context.Context,
	days int,
) (int64, error) {
	const query = `
		DELETE FROM notifications
		WHERE read = TRUE AND created_at < now() - ($1 || ' days')::interval
	`

	result, err := r.pool.Exec(ctx, query, days)
	if err != nil {
		logger.Error("DeleteReadOlderThan: database error", err)
		return 0, fmt.Errorf("failed to delete old notifications: %w", err)
	}

	return result.RowsAffected(), nil
}
