package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/resume/render", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	}
}

func TestBucketTake(t *testing.T) {
	b := newBucket(2, 0.001)

	allowed, remaining := b.take()
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)

	allowed, _ = b.take()
	assert.True(t, allowed)

	allowed, remaining = b.take()
	assert.False(t, allowed)
	assert.Zero(t, remaining)
}

func TestBucketRefill(t *testing.T) {
	b := newBucket(1, 1000)

	allowed, _ := b.take()
	require.True(t, allowed)

	time.Sleep(5 * time.Millisecond)

	allowed, _ = b.take()
	assert.True(t, allowed, "bucket should refill at the configured rate")
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	t.Run("health is always unlimited", func(t *testing.T) {
		tier := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, tier)
		assert.Zero(t, tier.Limit)
	})

	t.Run("document endpoints have a tier", func(t *testing.T) {
		tier := MatchEndpoint("/resume/parse", "POST", configs)
		require.NotNil(t, tier)
		assert.Equal(t, 60, tier.Limit)
		assert.Equal(t, 10, tier.Burst)
	})

	t.Run("method must match", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/resume/parse", "GET", configs))
	})

	t.Run("unknown path falls through", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/templates", "GET", configs))
	})
}

func TestLimiterAllow(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-a", "/resume/render", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)

	allowed, _ = limiter.Allow("client-a", "/resume/render", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("client-a", "/resume/render", "POST")
	assert.False(t, allowed, "third request must exceed the burst of 2")
	assert.False(t, info.Allowed)
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("client-a", "/resume/render", "POST")
		require.True(t, allowed)
	}

	allowed, _ := limiter.Allow("client-b", "/resume/render", "POST")
	assert.True(t, allowed, "another client must have its own bucket")
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-a", "/resume/render", "POST")
		require.True(t, allowed)
	}
}

func TestLimiterHealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("client-a", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 600, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.Len(t, cfg.Endpoints, 2)
}
