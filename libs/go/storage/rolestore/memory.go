package rolestore

import (
	"context"
	"sync"

	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
)

var _ interfaces.RoleBackend = (*MemoryBackend)(nil)

// MemoryBackend keeps the blob in process memory. Every write is broadcast to
// all watchers, which is how tests emulate a second tab.
type MemoryBackend struct {
	mu       sync.Mutex
	data     []byte
	found    bool
	watchers map[chan struct{}]struct{}
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{watchers: make(map[chan struct{}]struct{})}
}

func (b *MemoryBackend) Read(_ context.Context) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.found {
		return nil, false, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, true, nil
}

func (b *MemoryBackend) Write(_ context.Context, data []byte) error {
	b.mu.Lock()
	b.data = append([]byte(nil), data...)
	b.found = true
	b.mu.Unlock()
	b.broadcast()
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context) error {
	b.mu.Lock()
	b.data = nil
	b.found = false
	b.mu.Unlock()
	b.broadcast()
	return nil
}

func (b *MemoryBackend) Watch(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.watchers[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.watchers, ch)
		close(ch)
		b.mu.Unlock()
	}()
	return ch, nil
}

func (b *MemoryBackend) Close() error { return nil }

func (b *MemoryBackend) broadcast() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.watchers {
		notify(ch)
	}
}

// notify does a non-blocking send; one pending signal is enough to trigger a
// refresh.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
