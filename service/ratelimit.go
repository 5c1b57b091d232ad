package service

import (
	"sync"
	"time"
)

// RateLimiter throttles token issuance per key (typically the subject)
// using a token-bucket algorithm. It is safe for concurrent use.
type RateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	maxRate    int
	window     time.Duration
	maxBuckets int
	closed     bool
}

type bucket struct {
	tokens     int
	lastRefill int64
}

// NewRateLimiter builds a limiter allowing maxRate operations per
// window, per key. Non-positive values fall back to 100/minute.
func NewRateLimiter(maxRate int, window time.Duration) *RateLimiter {
	if maxRate <= 0 {
		maxRate = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		buckets:    make(map[string]*bucket),
		maxRate:    maxRate,
		window:     window,
		maxBuckets: 10000,
	}
}

// Allow reports whether one operation for key is permitted right now.
func (rl *RateLimiter) Allow(key string) bool {
	if key == "" {
		return false
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.closed {
		return false
	}

	nowNano := time.Now().UnixNano()
	b, exists := rl.buckets[key]
	if !exists {
		if len(rl.buckets) >= rl.maxBuckets {
			rl.evictOldestLocked()
		}
		rl.buckets[key] = &bucket{tokens: rl.maxRate - 1, lastRefill: nowNano}
		return true
	}

	elapsed := nowNano - b.lastRefill
	if elapsed >= int64(rl.window) {
		b.tokens = rl.maxRate
		b.lastRefill = nowNano
	} else if elapsed > 0 {
		added := int(float64(rl.maxRate) * float64(elapsed) / float64(rl.window))
		if added > 0 {
			b.tokens += added
			if b.tokens > rl.maxRate {
				b.tokens = rl.maxRate
			}
			b.lastRefill = nowNano
		}
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Reset clears key's bucket, e.g. after a successful auth flow.
func (rl *RateLimiter) Reset(key string) {
	if key == "" {
		return
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.buckets, key)
}

// Close disables the limiter; subsequent Allow calls return false.
func (rl *RateLimiter) Close() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.closed {
		return
	}
	rl.closed = true
	rl.buckets = nil
}

func (rl *RateLimiter) evictOldestLocked() {
	oldestKey := ""
	oldestTime := int64(1<<63 - 1)
	for key, b := range rl.buckets {
		if b.lastRefill < oldestTime {
			oldestKey = key
			oldestTime = b.lastRefill
		}
	}
	if oldestKey != "" {
		delete(rl.buckets, oldestKey)
	}
}
