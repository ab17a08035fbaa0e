package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint/pkg/ratelimiter"
)

func TestMemoryStoreConsumeTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 10, RefillRate: 2, RefillInterval: 100 * time.Millisecond}

	t.Run("new bucket starts full", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()
		remaining, resetAt, err := store.ConsumeTokens(ctx, "k", 3, cfg)
		require.NoError(t, err)
		assert.Equal(t, 7, remaining)
		assert.False(t, resetAt.IsZero())
	})

	t.Run("balance can go negative", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()
		_, _, err := store.ConsumeTokens(ctx, "k", 8, cfg)
		require.NoError(t, err)
		remaining, _, err := store.ConsumeTokens(ctx, "k", 5, cfg)
		require.NoError(t, err)
		assert.Equal(t, -3, remaining)
	})

	t.Run("refills per interval", func(t *testing.T) {
		t.Parallel()

		clk := newClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clk.Now))

		remaining, _, err := store.ConsumeTokens(ctx, "k", 10, cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		clk.Advance(150 * time.Millisecond)
		remaining, resetAt, err := store.ConsumeTokens(ctx, "k", 0, cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
		assert.Equal(t, clk.Now().Add(50*time.Millisecond), resetAt)

		clk.Advance(50 * time.Millisecond)
		remaining, _, err = store.ConsumeTokens(ctx, "k", 0, cfg)
		require.NoError(t, err)
		assert.Equal(t, 4, remaining)
	})

	t.Run("caps at capacity", func(t *testing.T) {
		t.Parallel()

		clk := newClock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clk.Now))

		_, _, err := store.ConsumeTokens(ctx, "k", 1, cfg)
		require.NoError(t, err)

		clk.Advance(24 * time.Hour)
		remaining, _, err := store.ConsumeTokens(ctx, "k", 0, cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.Capacity, remaining)
	})
}

func TestMemoryStoreCleanup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}
	clk := newClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clk.Now))

	_, _, err := store.ConsumeTokens(ctx, "old", 1, cfg)
	require.NoError(t, err)
	clk.Advance(2 * time.Hour)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.Cleanup())
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Reset(ctx, "fresh"))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreRun(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(10 * time.Millisecond))
	assert.ErrorIs(t, store.Healthcheck(context.Background()), ratelimiter.ErrNotStarted)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Run(ctx) }()

	require.Eventually(t, func() bool {
		return store.Healthcheck(context.Background()) == nil
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, store.Run(ctx), ratelimiter.ErrAlreadyStarted)

	cancel()
	require.NoError(t, <-done)
	assert.ErrorIs(t, store.Healthcheck(context.Background()), ratelimiter.ErrNotStarted)
}

func TestMemoryStoreRunDisabled(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	assert.ErrorIs(t, store.Run(context.Background()), ratelimiter.ErrInvalidConfig)
}
