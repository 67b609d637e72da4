package worker

import (
	"context"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/rs/zerolog"
)

// SessionSweeper periodically deletes expired session rows. It is an
// optional in-process fallback for deployments without an external cron
// hitting the cleanup endpoint.
type SessionSweeper struct {
	sessionService *service.SessionService
	interval       time.Duration
	log            zerolog.Logger
}

// NewSessionSweeper creates a new SessionSweeper.
func NewSessionSweeper(sessionService *service.SessionService, interval time.Duration, log zerolog.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessionService: sessionService,
		interval:       interval,
		log:            log.With().Str("component", "session_sweeper").Logger(),
	}
}

// Start begins the sweep loop. Call in a goroutine; returns when ctx is done.
func (w *SessionSweeper) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			// Failures are logged by the service; the next tick retries.
			_, _, _ = w.sessionService.CleanupExpired(ctx)
		}
	}
}
