package cattle

import (
	"sync"
	"testing"
	"time"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter(1)
	if limiter == nil {
		t.Fatal("expected limiter, got nil")
	}
	if limiter.Limit() != 1 {
		t.Errorf("expected limit 1, got %v", limiter.Limit())
	}
}

func TestRateLimiterStore_CustomLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter(2, 5, 10)
	limiter := store.GetLimiter(2)

	if limiter.Limit() != 5 {
		t.Errorf("expected limit 5, got %v", limiter.Limit())
	}
	if limiter.Burst() != 10 {
		t.Errorf("expected burst 10, got %v", limiter.Burst())
	}
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)

	var wg sync.WaitGroup

	// Launch 100 goroutines that access GetLimiter concurrently
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter := store.GetLimiter(uint(i % 3))
			if limiter == nil {
				t.Error("expected limiter, got nil")
			}
		}()
	}

	wg.Wait()

	if store.Len() != 3 {
		t.Errorf("expected one limiter per cow, got %d", store.Len())
	}
}

func TestRateLimiter_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2) // 2 events/sec

	var cowID uint = 7

	// Consume two tokens
	firstTry := store.Allow(cowID)
	secondTry := store.Allow(cowID)
	if !firstTry || !secondTry {
		t.Fatal("expected first two calls to be allowed")
	}

	// This call should fail immediately
	if store.Allow(cowID) {
		t.Error("expected third call to be rate limited")
	}

	// Other cows have their own bucket
	if !store.Allow(cowID + 1) {
		t.Error("expected a different cow to be allowed")
	}

	// Wait for refill
	time.Sleep(600 * time.Millisecond)
	if !store.Allow(cowID) {
		t.Error("expected one token to be available after refill")
	}
}

func TestRateLimiterStore_Forget(t *testing.T) {
	store := NewRateLimiterStore(1, 1)

	store.SetLimiter(3, 100, 100)
	store.Forget(3)

	if store.GetLimiter(3).Burst() != 1 {
		t.Error("expected defaults after forget")
	}
}
