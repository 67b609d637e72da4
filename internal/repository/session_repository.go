package repository

import (
	"context"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles session row persistence. Rows are written at
// sign-in, removed at sign-out, and bulk-deleted by the expiry sweep.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Create inserts a new session row.
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sessions (id, user_id, expires)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		s.ID, s.UserID, s.Expires,
	).Scan(&s.CreatedAt)
}

// DeleteByID removes a single session row (sign-out).
func (r *SessionRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// DeleteExpired removes every session whose expiry is before the given
// instant and returns the number of rows deleted. Safe to call repeatedly.
func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
