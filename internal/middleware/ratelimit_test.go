package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimiterReusesBucketPerIP(t *testing.T) {
	store := newRateLimiterStore()

	first := store.getLimiter("203.0.113.10")
	second := store.getLimiter("203.0.113.10")
	other := store.getLimiter("203.0.113.20")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestSweepEvictsIdleClients(t *testing.T) {
	store := newRateLimiterStore()

	store.getLimiter("203.0.113.10")
	store.getLimiter("203.0.113.20")
	require.Len(t, store.clients, 2)

	store.clients["203.0.113.10"].lastSeen = time.Now().Add(-limiterIdleTTL - time.Minute)

	store.sweep(limiterIdleTTL)

	assert.NotContains(t, store.clients, "203.0.113.10")
	assert.Contains(t, store.clients, "203.0.113.20")
}

func TestSweepRefreshedClientSurvives(t *testing.T) {
	store := newRateLimiterStore()

	store.getLimiter("203.0.113.10")
	store.clients["203.0.113.10"].lastSeen = time.Now().Add(-limiterIdleTTL - time.Minute)

	// A new request from the same IP resets the idle clock.
	store.getLimiter("203.0.113.10")

	store.sweep(limiterIdleTTL)

	assert.Contains(t, store.clients, "203.0.113.10")
}
