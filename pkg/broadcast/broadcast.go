package broadcast

import "context"

// Message wraps broadcast payloads so signal-only broadcasts can use a zero
// value without resorting to interface{}.
type Message[T any] struct {
	Data T
}

// Broadcaster delivers messages to all active subscribers.
type Broadcaster[T any] interface {
	// Broadcast sends the message to every active subscriber. Subscribers
	// with full buffers are skipped rather than blocked on.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Subscribe registers a new subscriber whose lifetime is bound to ctx.
	Subscribe(ctx context.Context) Subscriber[T]

	// Close shuts down the broadcaster and all subscriptions.
	Close() error
}

// Subscriber receives broadcast messages.
type Subscriber[T any] interface {
	// Receive returns the channel messages are delivered on. The channel is
	// closed when the subscriber or broadcaster closes, or ctx is cancelled.
	Receive(ctx context.Context) <-chan Message[T]

	// Close unsubscribes and releases the subscriber's resources.
	// Returns ErrSubscriberClosed when the subscriber is already closed.
	Close() error
}
