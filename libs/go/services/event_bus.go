package services

import (
	"sort"
	"sync"
)

// EventBus is a minimal subscribe/notify fan-out. Handlers run synchronously
// on the publishing goroutine, in subscription order.
type EventBus[T any] struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(T)
}

// NewEventBus creates an empty bus.
func NewEventBus[T any]() *EventBus[T] {
	return &EventBus[T]{subs: make(map[int]func(T))}
}

// Subscribe registers fn and returns a function that removes it. The
// returned function is safe to call more than once.
func (b *EventBus[T]) Subscribe(fn func(T)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers v to every current subscriber.
func (b *EventBus[T]) Publish(v T) {
	b.mu.RLock()
	ids := make([]int, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]func(T), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.subs[id])
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(v)
	}
}

// Len returns the number of subscribers.
func (b *EventBus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
