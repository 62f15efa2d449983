package identity

import (
	"context"
	"sync"
)

// Tracker holds the identity most recently reported by a provider.
// Reports arrive zero or more times over the tracker's lifetime; readers
// always see the latest one.
type Tracker struct {
	mu       sync.RWMutex
	current  Identity
	subs     map[int]func(Identity)
	nextSub  int
	resolved chan struct{}
	once     sync.Once
}

func NewTracker() *Tracker {
	return &Tracker{
		current:  Unresolved(),
		subs:     make(map[int]func(Identity)),
		resolved: make(chan struct{}),
	}
}

// Current returns the identity at the moment of the call.
func (t *Tracker) Current() Identity {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Publish records id as current and notifies subscribers.
func (t *Tracker) Publish(id Identity) {
	t.mu.Lock()
	t.current = id
	subs := make([]func(Identity), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	if id.IsResolved() {
		t.once.Do(func() { close(t.resolved) })
	}

	for _, fn := range subs {
		fn(id)
	}
}

// Subscribe registers fn for every later Publish. The returned func removes it.
func (t *Tracker) Subscribe(fn func(Identity)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Follow publishes every identity received on events until the channel is
// closed or ctx is done.
func (t *Tracker) Follow(ctx context.Context, events <-chan Identity) {
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-events:
			if !ok {
				return
			}
			t.Publish(id)
		}
	}
}

// WaitResolved blocks until the provider has reported at least once.
func (t *Tracker) WaitResolved(ctx context.Context) (Identity, error) {
	select {
	case <-t.resolved:
		return t.Current(), nil
	case <-ctx.Done():
		return t.Current(), ctx.Err()
	}
}
