// Package broadcast provides a small generic pub/sub primitive for
// process-wide signals.
//
// A Broadcaster fans messages out to every active Subscriber. Delivery is
// non-blocking: when a subscriber's buffer is full the message is dropped for
// that subscriber instead of stalling the publisher, so a slow consumer never
// affects the rest of the process. Subscriptions are bound to a context and
// clean themselves up when it is cancelled.
//
// The in-memory implementation is intended for single-process signaling, such
// as the forced-logout notification the session transport emits when a silent
// token refresh fails:
//
//	broadcaster := broadcast.NewMemoryBroadcaster[LogoutEvent](16)
//	defer broadcaster.Close()
//
//	sub := broadcaster.Subscribe(ctx)
//	go func() {
//		for range sub.Receive(ctx) {
//			// clear identity, redirect to sign-in
//		}
//	}()
//
//	broadcaster.Broadcast(ctx, broadcast.Message[LogoutEvent]{})
//
// All types are safe for concurrent use.
package broadcast
