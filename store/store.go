// Package store is a small reducer-based state container.
//
// State changes only through Dispatch. Every dispatched action is kept in a bounded history and
// every new state is published to subscribers.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/networkteam/uikit/internal/notify"
	"github.com/networkteam/uikit/internal/ringbuffer"
)

// ErrClosed is returned when dispatching to a closed store.
var ErrClosed = errors.New("store closed")

// Action describes a state change.
type Action struct {
	Type    string
	Payload any
}

// Reducer computes the next state. It must not mutate prev.
type Reducer[S any] func(prev S, action Action) S

// Record is a dispatched action with the time it was applied.
type Record struct {
	Action     Action
	Dispatched time.Time
}

// Options configures a Store.
type Options struct {
	// HistorySize is the number of retained actions. Default is 100.
	HistorySize int
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

const DefaultHistorySize = 100

// Store holds state of type S.
type Store[S any] struct {
	mu       sync.RWMutex
	state    S
	reducer  Reducer[S]
	closed   bool
	history  *ringbuffer.Buffer[Record]
	notifier *notify.Notifier[S]
	logger   *slog.Logger
}

// New creates a store with an initial state.
func New[S any](initial S, reducer Reducer[S], opts Options) *Store[S] {
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "store")

	return &Store[S]{
		state:    initial,
		reducer:  reducer,
		history:  ringbuffer.New[Record](opts.HistorySize),
		notifier: notify.New[S](notify.Options{Logger: logger}),
		logger:   logger,
	}
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action and returns the resulting state.
func (s *Store[S]) Dispatch(action Action) (S, error) {
	s.mu.Lock()
	if s.closed {
		state := s.state
		s.mu.Unlock()
		return state, ErrClosed
	}
	s.state = s.reducer(s.state, action)
	state := s.state
	s.history.Push(Record{Action: action, Dispatched: time.Now()})
	// Publishing under the lock keeps subscribers seeing states in dispatch order.
	s.notifier.Publish(state)
	s.mu.Unlock()

	s.logger.Debug("Dispatched action", slog.String("type", action.Type))

	return state, nil
}

// Subscribe streams every new state until ctx is done or the store is closed.
func (s *Store[S]) Subscribe(ctx context.Context) <-chan S {
	return s.notifier.Subscribe(ctx)
}

// History returns up to n of the most recent actions, oldest first. n <= 0 returns all retained.
func (s *Store[S]) History(n int) []Record {
	return s.history.Last(n)
}

// Close stops the store and ends all subscriptions.
func (s *Store[S]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.notifier.Close()
}
