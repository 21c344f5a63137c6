// Package reactive provides Cell, a single-slot publish/subscribe container.
//
// A Cell holds the latest value of one piece of state and synchronously notifies its
// subscribers whenever the value is set. Delivery is single-threaded: Set returns only after
// every handler has run, and a Set issued from inside a handler is queued and delivered after
// the current round, so handlers observe values in call order and the last write wins.
//
// Subscriptions can be tied to a context.Context. Once the context is done, the subscription
// is dropped before the next delivery, so canceling one context ends every subscription of
// the UI region that owns it.
//
// Cells are not safe for concurrent use.
package reactive
