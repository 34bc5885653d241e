// Package ratelimit provides per-client token bucket rate limiting for the
// resume API endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket refilling at a steady rate up to a burst capacity.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take refills the bucket for the elapsed time and consumes one token if
// available. Returns whether the request is allowed and the remaining tokens.
func (b *bucket) take() (bool, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens < 1.0 {
		return false, 0
	}
	b.tokens--
	return true, int(b.tokens)
}

// Info reports the outcome of a rate limit check.
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
}

// Limiter manages token buckets keyed by client and endpoint tier.
type Limiter struct {
	config     *Config
	buckets    map[string]*bucket
	lastAccess map[string]time.Time
	mu         sync.Mutex

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup goroutine
// when enabled.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}
	return l
}

// Allow checks whether a request from clientID to the given endpoint is
// within its tier's budget.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	tier := MatchEndpoint(path, method, l.config.Endpoints)
	if tier == nil {
		tier = &EndpointConfig{
			Path:   path,
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if tier.Limit <= 0 {
		// Unlimited tier (health check).
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + tier.Path + ":" + method
	b := l.getBucket(key, tier)

	l.mu.Lock()
	l.lastAccess[key] = time.Now()
	l.mu.Unlock()

	allowed, remaining := b.take()
	return allowed, Info{Allowed: allowed, Limit: tier.Limit, Remaining: remaining}
}

// getBucket returns the bucket for a key, creating it on first use.
func (l *Limiter) getBucket(key string, tier *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	burst := tier.Burst
	if burst <= 0 {
		burst = tier.Limit
	}
	refillRate := float64(tier.Limit) / tier.Window.Seconds()
	b := newBucket(burst, refillRate)
	l.buckets[key] = b
	return b
}

// cleanup drops buckets idle for longer than the cleanup interval.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-l.config.CleanupInterval)
			l.mu.Lock()
			for key, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, key)
					delete(l.lastAccess, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}
