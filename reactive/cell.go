package reactive

import (
	"context"
	"sync"
	"sync/atomic"
)

// Handler receives the value of a Cell.
type Handler[T any] func(value T)

// Unsubscribe removes a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

// Readable is the read side of a Cell, for collaborators that must not set values.
type Readable[T any] interface {
	Get() T
	Subscribe(handler Handler[T], opts ...SubscribeOption) Unsubscribe
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	immediately bool
	ctx         context.Context
}

// Immediately invokes the handler once with the current value before Subscribe returns.
func Immediately() SubscribeOption {
	return func(c *subscribeConfig) {
		c.immediately = true
	}
}

// WithContext ties the subscription to ctx. Once ctx is done, the handler is never invoked again
// and the subscription is removed from the cell without waiting for the next emit.
func WithContext(ctx context.Context) SubscribeOption {
	return func(c *subscribeConfig) {
		c.ctx = ctx
	}
}

type subscription[T any] struct {
	handler Handler[T]
	ctx     context.Context
	active  atomic.Bool
}

func (s *subscription[T]) isActive() bool {
	if !s.active.Load() {
		return false
	}

	if s.ctx != nil && s.ctx.Err() != nil {
		s.active.Store(false)
	}

	return s.active.Load()
}

// Cell holds exactly one current value and notifies subscribers on every Set and Reemit.
//
// Set, Reemit and Subscribe must be called from one goroutine. Only the removal of context scoped
// subscriptions happens on the goroutine that observes the context being done.
type Cell[T any] struct {
	value    T
	pending  []T
	emitting bool

	mu            sync.Mutex
	subscriptions []*subscription[T]
}

// NewCell creates a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value without notifying anyone.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the value and notifies every active subscriber in subscription order.
//
// When called from within a handler, the value is stored at once and delivered after the current round.
func (c *Cell[T]) Set(value T) {
	c.value = value
	c.emit(value)
}

// Reemit notifies every active subscriber with the current, unchanged value.
func (c *Cell[T]) Reemit() {
	c.emit(c.value)
}

// Subscribe registers a handler and returns the capability to remove it.
func (c *Cell[T]) Subscribe(handler Handler[T], opts ...SubscribeOption) Unsubscribe {
	config := subscribeConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	sub := &subscription[T]{handler: handler, ctx: config.ctx}
	sub.active.Store(true)
	if !sub.isActive() {
		return func() {}
	}

	c.mu.Lock()
	c.subscriptions = append(c.subscriptions, sub)
	c.mu.Unlock()

	release := func() {
		sub.active.Store(false)
		c.prune()
	}

	stop := func() bool { return false }
	if config.ctx != nil {
		stop = context.AfterFunc(config.ctx, release)
	}

	if config.immediately {
		handler(c.value)
	}

	return func() {
		stop()
		release()
	}
}

// SubscriberCount returns the number of subscriptions currently registered with the cell.
func (c *Cell[T]) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.subscriptions)
}

func (c *Cell[T]) emit(value T) {
	c.pending = append(c.pending, value)
	if c.emitting {
		return
	}

	c.emitting = true
	defer func() {
		c.emitting = false
		c.pending = nil
	}()

	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]

		// A handler may subscribe or unsubscribe; this round goes to the subscribers registered when it started.
		c.mu.Lock()
		round := append([]*subscription[T](nil), c.subscriptions...)
		c.mu.Unlock()

		for _, sub := range round {
			if sub.isActive() {
				sub.handler(next)
			}
		}

		c.prune()
	}
}

func (c *Cell[T]) prune() {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.subscriptions[:0]
	for _, sub := range c.subscriptions {
		if sub.isActive() {
			kept = append(kept, sub)
		}
	}

	clear(c.subscriptions[len(kept):])
	c.subscriptions = kept
}
