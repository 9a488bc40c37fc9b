// Package ratelimit provides the in-memory rate limiter guarding endpoints
// that cause outbound traffic.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/wyc-thg/broker/internal/boundaries/out"
	"github.com/wyc-thg/broker/internal/logging"
)

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

// DefaultMaxKeys bounds the number of tracked keys before idle ones are swept.
const DefaultMaxKeys = 10000

// MemoryStore keeps one token bucket per key.
type MemoryStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	limit    rate.Limit
	burst    int
	maxKeys  int
	log      zerolog.Logger
}

// NewMemoryStore creates a store allowing rps requests per second per key
// with the given burst.
func NewMemoryStore(rps float64, burst int, log zerolog.Logger) *MemoryStore {
	if burst < 1 {
		burst = 1
	}
	return &MemoryStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		maxKeys:  DefaultMaxKeys,
		log:      logging.Adapter(log, "ratelimit"),
	}
}

// Allow reports whether one request for key may proceed now.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN reports whether n requests for key may proceed now.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	if s.limiter(key).AllowN(time.Now(), n) {
		return true
	}
	s.log.Debug().Str("key", key).Int("n", n).Msg("rate limited")
	return false
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.limiters)
}

func (s *MemoryStore) limiter(key string) *rate.Limiter {
	s.mu.RLock()
	l, ok := s.limiters[key]
	s.mu.RUnlock()
	if ok {
		return l
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok = s.limiters[key]; ok {
		return l
	}
	if len(s.limiters) >= s.maxKeys {
		s.sweepLocked(time.Now())
	}

	l = rate.NewLimiter(s.limit, s.burst)
	s.limiters[key] = l
	return l
}

// sweepLocked drops limiters whose bucket has refilled; they carry no state
// a fresh limiter would not have.
func (s *MemoryStore) sweepLocked(now time.Time) {
	before := len(s.limiters)
	for key, l := range s.limiters {
		if l.TokensAt(now) >= float64(s.burst) {
			delete(s.limiters, key)
		}
	}
	s.log.Debug().Int("before", before).Int("after", len(s.limiters)).Msg("swept idle rate limiters")
}
