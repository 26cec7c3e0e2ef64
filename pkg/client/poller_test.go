package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[K comparable, T any] struct {
	mu      sync.Mutex
	updates []Update[K, T]
}

func (r *recorder[K, T]) add(u Update[K, T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
}

func (r *recorder[K, T]) snapshot() []Update[K, T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Update[K, T](nil), r.updates...)
}

func TestPollerRefetchesOnInterval(t *testing.T) {
	var calls atomic.Int32
	rec := &recorder[uint, int32]{}

	p := NewPoller(func(ctx context.Context, cowID uint) (int32, error) {
		return calls.Add(1), nil
	}, rec.add, WithInterval[uint, int32](10*time.Millisecond))

	gen := p.Watch(context.Background(), 1)
	assert.Equal(t, uint64(1), gen)

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 3 }, time.Second, 5*time.Millisecond)
	p.Stop()

	updates := rec.snapshot()
	for i, u := range updates {
		assert.Equal(t, uint(1), u.Key)
		assert.Equal(t, gen, u.Generation)
		assert.Equal(t, int32(i+1), u.Value)
		assert.NoError(t, u.Err)
	}

	// nothing arrives after Stop returns
	n := len(rec.snapshot())
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, rec.snapshot(), n)
}

func TestPollerDiscardsSupersededResults(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	rec := &recorder[uint, string]{}

	p := NewPoller(func(ctx context.Context, cowID uint) (string, error) {
		if cowID == 1 {
			close(started)
			// ignores cancellation on purpose, like a slow server
			<-release
			return "stale", nil
		}
		return "fresh", nil
	}, rec.add, WithInterval[uint, string](time.Hour))

	p.Watch(context.Background(), 1)
	<-started

	gen := p.Watch(context.Background(), 2)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	close(release)
	time.Sleep(20 * time.Millisecond)

	updates := rec.snapshot()
	require.Len(t, updates, 1)
	assert.Equal(t, uint(2), updates[0].Key)
	assert.Equal(t, "fresh", updates[0].Value)
	assert.Equal(t, gen, updates[0].Generation)
	assert.Equal(t, gen, p.Generation())

	p.Stop()
}

func TestPollerCancelsInFlightRequest(t *testing.T) {
	cancelled := make(chan struct{})
	started := make(chan struct{})

	p := NewPoller(func(ctx context.Context, cowID uint) (int, error) {
		if cowID == 1 {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return 0, ctx.Err()
		}
		return 0, nil
	}, nil, WithInterval[uint, int](time.Hour))

	p.Watch(context.Background(), 1)
	<-started
	p.Watch(context.Background(), 2)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("in-flight fetch was not cancelled")
	}
	p.Stop()
}

func TestPollerDeliversErrorsAndKeepsPolling(t *testing.T) {
	var calls atomic.Int32
	rec := &recorder[uint, int]{}
	boom := errors.New("boom")

	p := NewPoller(func(ctx context.Context, cowID uint) (int, error) {
		if calls.Add(1) == 1 {
			return 0, boom
		}
		return 42, nil
	}, rec.add, WithInterval[uint, int](10*time.Millisecond))

	p.Watch(context.Background(), 7)
	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 }, time.Second, 5*time.Millisecond)
	p.Stop()

	updates := rec.snapshot()
	assert.ErrorIs(t, updates[0].Err, boom)
	assert.NoError(t, updates[1].Err)
	assert.Equal(t, 42, updates[1].Value)
}

func TestPollerStopsWithParentContext(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(func(ctx context.Context, cowID uint) (int, error) {
		calls.Add(1)
		return 0, nil
	}, nil, WithInterval[uint, int](5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	p.Watch(ctx, 1)
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	n := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, calls.Load())

	p.Stop()
	assert.Equal(t, DefaultPollInterval, NewPoller[uint, int](nil, nil).interval)
}
