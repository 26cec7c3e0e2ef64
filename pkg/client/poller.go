package client

import (
	"context"
	"sync"
	"time"
)

const DefaultPollInterval = 5 * time.Second

type FetchFunc[K comparable, T any] func(ctx context.Context, key K) (T, error)

type Update[K comparable, T any] struct {
	Key        K
	Generation uint64
	Value      T
	Err        error
	At         time.Time
}

// Poller re-fetches one key at a fixed interval. Watching a new key starts a
// new generation: the previous subscription is cancelled, including any
// request in flight, and results tagged with an older generation are dropped.
//
// OnUpdate runs with the poller locked so a superseded result can never be
// delivered after Watch returns. It must not call Watch or Stop.
type Poller[K comparable, T any] struct {
	fetch    FetchFunc[K, T]
	onUpdate func(Update[K, T])
	interval time.Duration
	now      func() time.Time

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
}

type PollerOption[K comparable, T any] func(*Poller[K, T])

func WithInterval[K comparable, T any](d time.Duration) PollerOption[K, T] {
	return func(p *Poller[K, T]) {
		if d > 0 {
			p.interval = d
		}
	}
}

func NewPoller[K comparable, T any](fetch FetchFunc[K, T], onUpdate func(Update[K, T]), opts ...PollerOption[K, T]) *Poller[K, T] {
	p := &Poller[K, T]{
		fetch:    fetch,
		onUpdate: onUpdate,
		interval: DefaultPollInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Poller[K, T]) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Watch supersedes the current subscription with one for key and returns its
// generation. Polling stops when ctx is done or on the next Watch or Stop.
func (p *Poller[K, T]) Watch(ctx context.Context, key K) uint64 {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	if p.cancel != nil {
		p.cancel()
	}
	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go p.run(subCtx, gen, key, done)
	return gen
}

// Stop cancels the current subscription and waits for its goroutine to exit.
func (p *Poller[K, T]) Stop() {
	p.mu.Lock()
	p.generation++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	done := p.done
	p.done = nil
	p.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (p *Poller[K, T]) run(ctx context.Context, gen uint64, key K, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		value, err := p.fetch(ctx, key)
		if ctx.Err() != nil {
			return
		}
		if !p.deliver(Update[K, T]{Key: key, Generation: gen, Value: value, Err: err, At: p.now()}) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller[K, T]) deliver(u Update[K, T]) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u.Generation != p.generation {
		return false
	}
	if p.onUpdate != nil {
		p.onUpdate(u)
	}
	return true
}
