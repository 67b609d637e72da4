package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// SessionSweepStore deletes expired session rows.
type SessionSweepStore interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// SessionService owns the expired-session maintenance sweep.
type SessionService struct {
	sessions SessionSweepStore
	log      zerolog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions SessionSweepStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		log:      log.With().Str("component", "session_service").Logger(),
	}
}

// CleanupExpired deletes every session whose expiry has passed and returns
// the deleted count plus the execution timestamp. Idempotent: with no newly
// expired rows it deletes zero and succeeds.
func (s *SessionService) CleanupExpired(ctx context.Context) (int64, time.Time, error) {
	now := time.Now().UTC()

	deleted, err := s.sessions.DeleteExpired(ctx, now)
	if err != nil {
		s.log.Error().Err(err).Str("op", "session_sweep").Msg("expired session delete failed")
		return 0, now, fmt.Errorf("delete expired sessions: %w", err)
	}

	if deleted > 0 {
		s.log.Info().Int64("deleted", deleted).Msg("Expired sessions removed")
	}
	return deleted, now, nil
}
