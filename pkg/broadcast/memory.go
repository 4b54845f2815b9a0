package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-memory Broadcaster implementation. It uses a
// read-write mutex to keep broadcasts cheap relative to the less frequent
// subscribe/unsubscribe operations.
type MemoryBroadcaster[T any] struct {
	mu         sync.RWMutex
	subs       map[*memorySubscriber[T]]struct{}
	bufferSize int
	closed     bool
}

// NewMemoryBroadcaster creates an in-memory broadcaster. Each subscriber gets
// its own buffered channel of the given size; a non-positive size falls back
// to a buffer of one so signal-style broadcasts are never dropped outright.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &MemoryBroadcaster[T]{
		subs:       make(map[*memorySubscriber[T]]struct{}),
		bufferSize: bufferSize,
	}
}

// Broadcast delivers msg to every active subscriber without blocking.
// Subscribers whose buffers are full miss the message.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBroadcasterClosed
	}

	for sub := range b.subs {
		select {
		case sub.ch <- msg:
		default:
		}
	}
	return nil
}

// Subscribe registers a subscriber that is removed automatically when ctx is
// cancelled.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := &memorySubscriber[T]{
		ch:     make(chan Message[T], b.bufferSize),
		parent: b,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		sub.closed = true
		return sub
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()

	return sub
}

// Close shuts down the broadcaster and closes all subscriber channels.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for sub := range b.subs {
		sub.markClosed()
		delete(b.subs, sub)
	}
	return nil
}

func (b *MemoryBroadcaster[T]) remove(sub *memorySubscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		sub.markClosed()
	}
}

type memorySubscriber[T any] struct {
	ch     chan Message[T]
	parent *MemoryBroadcaster[T]

	mu     sync.Mutex
	closed bool
}

// Receive returns the subscriber's delivery channel.
func (s *memorySubscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

// Close unsubscribes from the parent broadcaster. Calling it again after the
// subscriber is closed returns ErrSubscriberClosed.
func (s *memorySubscriber[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSubscriberClosed
	}
	s.mu.Unlock()

	s.parent.remove(s)
	return nil
}

func (s *memorySubscriber[T]) markClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}
