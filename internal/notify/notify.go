// Package notify fans values out to context-bound subscribers.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Options configures a Notifier.
type Options struct {
	// BufferSize is the channel buffer per subscriber. Default is 16.
	BufferSize int
	// Logger receives subscription lifecycle messages at debug level. Default is slog.Default().
	Logger *slog.Logger
}

// DefaultBufferSize is used when Options.BufferSize is zero.
const DefaultBufferSize = 16

// Notifier delivers published values to all current subscribers.
//
// Publishing never blocks. A subscriber whose buffer is full loses its oldest pending value, so
// slow readers always end up with the latest one.
type Notifier[T any] struct {
	mu          sync.RWMutex
	subscribers map[<-chan T]chan T
	bufferSize  int
	logger      *slog.Logger
	closed      bool
}

// New creates a notifier.
func New[T any](opts Options) *Notifier[T] {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Notifier[T]{
		subscribers: make(map[<-chan T]chan T),
		bufferSize:  opts.BufferSize,
		logger:      opts.Logger,
	}
}

// Subscribe returns a channel receiving published values until ctx is done or the notifier is
// closed. The channel is closed afterwards.
func (n *Notifier[T]) Subscribe(ctx context.Context) <-chan T {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		ch := make(chan T)
		close(ch)
		return ch
	}
	ch := make(chan T, n.bufferSize)
	n.subscribers[ch] = ch
	count := len(n.subscribers)
	n.mu.Unlock()

	n.logger.Debug("Subscribed", slog.Int("subscribers", count))

	go func() {
		<-ctx.Done()
		n.Unsubscribe(ch)
	}()

	return ch
}

// Unsubscribe removes a subscription and closes its channel. Unknown channels are ignored.
func (n *Notifier[T]) Unsubscribe(ch <-chan T) {
	n.mu.Lock()
	realCh, exists := n.subscribers[ch]
	if exists {
		delete(n.subscribers, ch)
		close(realCh)
	}
	count := len(n.subscribers)
	n.mu.Unlock()

	if exists {
		n.logger.Debug("Unsubscribed", slog.Int("subscribers", count))
	}
}

// Publish delivers v to every subscriber.
func (n *Notifier[T]) Publish(v T) {
	// Sends happen under the read lock so Unsubscribe cannot close a channel mid-send.
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		return
	}
	for _, ch := range n.subscribers {
		for {
			select {
			case ch <- v:
			default:
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (n *Notifier[T]) Subscribers() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subscribers)
}

// Close closes all subscriber channels. Later subscriptions receive a closed channel.
func (n *Notifier[T]) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for key, ch := range n.subscribers {
		close(ch)
		delete(n.subscribers, key)
	}
}
