package http

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(capacity int, window time.Duration) (*RateLimiter, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(capacity, window, zerolog.New(nil).Level(zerolog.Disabled))
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

func TestRateLimiter_AllowsUpToCapacity(t *testing.T) {
	limiter, _ := newTestLimiter(3, time.Minute)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"))

	// Otro cliente tiene su propio balde
	assert.True(t, limiter.Allow("2.2.2.2"))
}

func TestRateLimiter_Refills(t *testing.T) {
	limiter, now := newTestLimiter(1, time.Minute)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"))

	*now = now.Add(time.Minute)
	assert.True(t, limiter.Allow("1.1.1.1"))
}

func TestRateLimiter_CleanupRemovesStaleBuckets(t *testing.T) {
	limiter, now := newTestLimiter(1, time.Minute)
	defer limiter.Stop()

	limiter.Allow("1.1.1.1")
	*now = now.Add(2 * bucketCleanupThreshold)
	limiter.cleanup()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.clients)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)
	assert.NotPanics(t, func() {
		limiter.Stop()
		limiter.Stop()
	})
}
