package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionStore struct {
	expiries []time.Time
	calls    int
}

func (s *stubSessionStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.calls++
	var kept []time.Time
	var deleted int64
	for _, e := range s.expiries {
		if e.Before(before) {
			deleted++
		} else {
			kept = append(kept, e)
		}
	}
	s.expiries = kept
	return deleted, nil
}

type cronEnvelope struct {
	Data *struct {
		DeletedCount int64  `json:"deleted_count"`
		Timestamp    string `json:"timestamp"`
	} `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func cronTestRouter(secret string, store *stubSessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{CronSecret: secret}
	sessionService := service.NewSessionService(store, zerolog.Nop())
	h := NewCronHandler(cfg, sessionService, zerolog.Nop())

	r := gin.New()
	r.GET("/api/v1/cron/cleanup-sessions", h.CleanupSessions)
	return r
}

func invokeCleanup(t *testing.T, r *gin.Engine, bearer string) (*httptest.ResponseRecorder, cronEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/cleanup-sessions", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env cronEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCleanupSessions(t *testing.T) {
	now := time.Now()

	t.Run("deletes expired rows and reports the count", func(t *testing.T) {
		store := &stubSessionStore{expiries: []time.Time{
			now.Add(-time.Hour),
			now.Add(-time.Minute),
			now.Add(time.Hour),
		}}
		r := cronTestRouter("s3cret", store)

		w, env := invokeCleanup(t, r, "s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, env.Data)
		assert.Equal(t, int64(2), env.Data.DeletedCount)

		ts, err := time.Parse(time.RFC3339, env.Data.Timestamp)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), ts, time.Minute)

		// Immediate re-run has nothing left to delete.
		w, env = invokeCleanup(t, r, "s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, env.Data)
		assert.Equal(t, int64(0), env.Data.DeletedCount)
	})

	t.Run("mismatched secret is unauthorized and deletes nothing", func(t *testing.T) {
		store := &stubSessionStore{expiries: []time.Time{now.Add(-time.Hour)}}
		r := cronTestRouter("s3cret", store)

		w, env := invokeCleanup(t, r, "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CRON_SECRET", env.Error.Code)
		assert.Zero(t, store.calls)
		assert.Len(t, store.expiries, 1)
	})

	t.Run("missing bearer token is unauthorized", func(t *testing.T) {
		store := &stubSessionStore{}
		r := cronTestRouter("s3cret", store)

		w, _ := invokeCleanup(t, r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, store.calls)
	})

	t.Run("unconfigured secret is a server error", func(t *testing.T) {
		store := &stubSessionStore{}
		r := cronTestRouter("", store)

		w, env := invokeCleanup(t, r, "anything")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Zero(t, store.calls)
	})
}
