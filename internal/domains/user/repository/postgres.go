package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulse-backend/internal/domains/user"
	"pulse-backend/pkg/database"
	"pulse-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.UserRepository {
	return &postgresRepository{pool: pool}
}

// ============================================================
// READ: GetByID
// ============================================================
func (r *postgresRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*user.User, error) {
	const query = `
		SELECT id, username, display_name, avatar_url, aura, created_at
		FROM users
		WHERE id = $1
	`

	entity := &user.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entity.ID,
		&entity.Username,
		&entity.DisplayName,
		&entity.AvatarURL,
		&entity.Aura,
		&entity.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) ExistsByID(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {
	const query = "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)"

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// ============================================================
// READ: CountFollowers / IsFollowing
// ============================================================
func (r *postgresRepository) CountFollowers(
	ctx context.Context,
	userID uuid.UUID,
) (int64, error) {
	const query = "SELECT COUNT(*) FROM follows WHERE following_id = $1"

	var count int64
	err := r.pool.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		logger.Error("CountFollowers: database error", err)
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) IsFollowing(
	ctx context.Context,
	followerID, followingID uuid.UUID,
) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM follows
			WHERE follower_id = $1 AND following_id = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, followerID, followingID).Scan(&exists)
	if err != nil {
		logger.Error("IsFollowing: database error", err)
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	return exists, nil
}

// ============================================================
// MUTATION: Follow
// ============================================================
// The edge insert and its follow notification commit atomically. The
// unique (follower_id, following_id) key deduplicates concurrent follows,
// so the notification is only written by the transaction that actually
// created the edge.
func (r *postgresRepository) Follow(
	ctx context.Context,
	followerID, followingID uuid.UUID,
) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		const edgeQuery = `
			INSERT INTO follows (follower_id, following_id, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (follower_id, following_id) DO NOTHING
		`

		tag, err := tx.Exec(ctx, edgeQuery, followerID, followingID, time.Now())
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "no_self_follow" {
				return user.ErrSelfFollow
			}
			logger.Error("Follow: database error", err)
			return fmt.Errorf("failed to create follow edge: %w", err)
		}

		if tag.RowsAffected() == 0 {
			// Edge already existed.
			return nil
		}

		const notifQuery = `
			INSERT INTO notifications (id, recipient_id, issuer_id, type, created_at)
			VALUES ($1, $2, $3, 'follow', $4)
		`

		if _, err := tx.Exec(ctx, notifQuery, uuid.New(), followingID, followerID, time.Now()); err != nil {
			logger.Error("Follow: notification insert failed", err)
			return fmt.Errorf("failed to create follow notification: %w", err)
		}

		return nil
	})
}

// ============================================================
// MUTATION: Unfollow
// ============================================================
func (r *postgresRepository) Unfollow(
	ctx context.Context,
	followerID, followingID uuid.UUID,
) error {
	const query = `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2
	`

	if _, err := r.pool.Exec(ctx, query, followerID, followingID); err != nil {
		logger.Error("Unfollow: database error", err)
		return fmt.Errorf("failed to delete follow edge: %w", err)
	}

	return nil
}

// ============================================================
// READ: SuggestionCandidates
// ============================================================
// Candidates are ranked in SQL; the ORDER BY column is picked per call so
// repeated refreshes can surface different users.
func (r *postgresRepository) SuggestionCandidates(
	ctx context.Context,
	viewerID uuid.UUID,
	exclude []uuid.UUID,
	byAura bool,
	limit int,
) ([]user.SuggestedUser, error) {
	orderClause := "ORDER BY u.aura DESC, u.created_at DESC"
	if !byAura {
		orderClause = "ORDER BY follower_count DESC, u.created_at DESC"
	}

	query := fmt.Sprintf(`
		SELECT
			u.id, u.username, u.display_name, u.avatar_url, u.aura, u.created_at,
			COUNT(f.follower_id) AS follower_count
		FROM users u
		LEFT JOIN follows f ON f.following_id = u.id
		WHERE u.id <> $1
			AND u.id <> ALL($2::uuid[])
			AND NOT EXISTS (
				SELECT 1 FROM follows own
				WHERE own.follower_id = $1 AND own.following_id = u.id
			)
		GROUP BY u.id
		%s
		LIMIT $3
	`, orderClause)

	if exclude == nil {
		exclude = []uuid.UUID{}
	}

	rows, err := r.pool.Query(ctx, query, viewerID, exclude, limit)
	if err != nil {
		logger.Error("SuggestionCandidates: query failed", err)
		return nil, fmt.Errorf("failed to get suggestion candidates: %w", err)
	}
	defer rows.Close()

	entities := make([]user.SuggestedUser, 0, limit)
	for rows.Next() {
		entity := user.SuggestedUser{}
		err := rows.Scan(
			&entity.ID,
			&entity.Username,
			&entity.DisplayName,
			&entity.AvatarURL,
			&entity.Aura,
			&entity.CreatedAt,
			&entity.FollowerCount,
		)
		if err != nil {
			logger.Error("SuggestionCandidates: scan error", err)
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}

		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("SuggestionCandidates: rows error", err)
		return nil, fmt.Errorf("failed to get suggestion candidates: %w", err)
	}

	return entities, nil
}

// ============================================================
// READ: MutualFollowers
// ============================================================
func (r *postgresRepository) MutualFollowers(
	ctx context.Context,
	viewerID, candidateID uuid.UUID,
	limit int,
) ([]user.MutualFollower, error) {
	const query = `
		SELECT u.id, u.username, u.display_name, u.avatar_url
		FROM follows vf
		INNER JOIN follows cf ON cf.follower_id = vf.follower_id
		INNER JOIN users u ON u.id = vf.follower_id
		WHERE vf.following_id = $1
			AND cf.following_id = $2
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, viewerID, candidateID, limit)
	if err != nil {
		logger.Error("MutualFollowers: query failed", err)
		return nil, fmt.Errorf("failed to get mutual followers: %w", err)
	}
	defer rows.Close()

	entities := make([]user.MutualFollower, 0, limit)
	for rows.Next() {
		entity := user.MutualFollower{}
		err := rows.Scan(
			&entity.ID,
			&entity.Username,
			&entity.DisplayName,
			&entity.AvatarURL,
		)
		if err != nil {
			logger.Error("MutualFollowers: scan error", err)
			return nil, fmt.Errorf("failed to scan mutual follower: %w", err)
		}

		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("MutualFollowers: rows error", err)
		return nil, fmt.Errorf("failed to get mutual followers: %w", err)
	}

	return entities, nil
}
