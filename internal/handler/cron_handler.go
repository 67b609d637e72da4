package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/response"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CronHandler exposes the scheduled maintenance endpoints. Invocations
// authenticate with a shared-secret bearer token.
type CronHandler struct {
	cfg            *config.Config
	sessionService *service.SessionService
	log            zerolog.Logger
}

// NewCronHandler creates a new CronHandler.
func NewCronHandler(cfg *config.Config, sessionService *service.SessionService, log zerolog.Logger) *CronHandler {
	return &CronHandler{
		cfg:            cfg,
		sessionService: sessionService,
		log:            log.With().Str("component", "cron_handler").Logger(),
	}
}

// CleanupSessions godoc
// GET /api/v1/cron/cleanup-sessions
// Deletes all expired session rows. 500 when CRON_SECRET is unconfigured,
// 401 on a missing or mismatched bearer token.
func (h *CronHandler) CleanupSessions(c *gin.Context) {
	if h.cfg.CronSecret == "" {
		h.log.Error().Str("op", "cron_auth").Msg("CRON_SECRET is not configured")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if !h.authorized(c) {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCronSecret)
		return
	}

	deleted, ts, err := h.sessionService.CleanupExpired(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"deleted_count": deleted,
		"timestamp":     ts.Format(time.RFC3339),
	})
}

func (h *CronHandler) authorized(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(parts[1]), []byte(h.cfg.CronSecret)) == 1
}
