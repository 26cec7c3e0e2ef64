package cattle

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-cow ingestion limiters: cow_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[uint]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[uint]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(cowID uint) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[cowID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[cowID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(cowID uint, cowRate rate.Limit, cowBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[cowID] = rate.NewLimiter(cowRate, cowBurst)
}

func (s *RateLimiterStore) Allow(cowID uint) bool {
	return s.GetLimiter(cowID).Allow()
}

// Forget drops the cow's limiter; the next call starts from the defaults.
func (s *RateLimiterStore) Forget(cowID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.limiters, cowID)
}

func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
