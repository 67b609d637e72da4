package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweepStore struct {
	expiries []time.Time
	failErr  error
}

func (f *fakeSweepStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	var kept []time.Time
	var deleted int64
	for _, e := range f.expiries {
		if e.Before(before) {
			deleted++
		} else {
			kept = append(kept, e)
		}
	}
	f.expiries = kept
	return deleted, nil
}

func TestCleanupExpired(t *testing.T) {
	t.Run("deletes only past-expiry rows and is idempotent", func(t *testing.T) {
		now := time.Now()
		store := &fakeSweepStore{expiries: []time.Time{
			now.Add(-2 * time.Hour),
			now.Add(-time.Minute),
			now.Add(time.Hour),
		}}
		svc := NewSessionService(store, zerolog.Nop())

		deleted, ts, err := svc.CleanupExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		assert.WithinDuration(t, time.Now(), ts, time.Minute)

		deleted, _, err = svc.CleanupExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
		assert.Len(t, store.expiries, 1)
	})

	t.Run("store failure surfaces to the caller", func(t *testing.T) {
		store := &fakeSweepStore{failErr: errors.New("connection refused")}
		svc := NewSessionService(store, zerolog.Nop())

		_, _, err := svc.CleanupExpired(context.Background())
		assert.Error(t, err)
	})
}
