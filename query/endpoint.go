package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/networkteam/uikit/internal/notify"
)

// Status is the lifecycle state of an endpoint's cached result.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusPending       Status = "pending"
	StatusFulfilled     Status = "fulfilled"
	StatusRejected      Status = "rejected"
)

// DefaultKeepUnusedDataFor is how long a fulfilled result is served without refetching.
const DefaultKeepUnusedDataFor = 60 * time.Second

// Result is a snapshot of an endpoint. Data and Raw keep the last successful response while a
// refetch is pending or after it was rejected.
type Result[T any] struct {
	Status    Status
	Data      T
	Raw       []byte
	Err       error
	FetchedAt time.Time
}

// HasData reports whether a response was ever decoded.
func (r Result[T]) HasData() bool {
	return !r.FetchedAt.IsZero()
}

// EndpointOptions configures an Endpoint.
type EndpointOptions struct {
	// KeepUnusedDataFor defaults to DefaultKeepUnusedDataFor.
	KeepUnusedDataFor time.Duration
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Endpoint caches the decoded JSON response of one path.
type Endpoint[T any] struct {
	client            *Client
	path              string
	keepUnusedDataFor time.Duration
	logger            *slog.Logger
	now               func() time.Time

	mu       sync.RWMutex
	result   Result[T]
	group    singleflight.Group
	notifier *notify.Notifier[Result[T]]
}

// NewEndpoint creates an endpoint for path on client.
func NewEndpoint[T any](client *Client, path string, opts EndpointOptions) *Endpoint[T] {
	if opts.KeepUnusedDataFor <= 0 {
		opts.KeepUnusedDataFor = DefaultKeepUnusedDataFor
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "query", "path", path)

	return &Endpoint[T]{
		client:            client,
		path:              path,
		keepUnusedDataFor: opts.KeepUnusedDataFor,
		logger:            logger,
		now:               time.Now,
		result:            Result[T]{Status: StatusUninitialized},
		notifier:          notify.New[Result[T]](notify.Options{Logger: logger}),
	}
}

// Path returns the endpoint path.
func (e *Endpoint[T]) Path() string {
	return e.path
}

// Result returns the current snapshot without fetching.
func (e *Endpoint[T]) Result() Result[T] {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.result
}

// Get returns the cached result if it is fulfilled and fresh, otherwise it fetches.
func (e *Endpoint[T]) Get(ctx context.Context) (Result[T], error) {
	if r, ok := e.cached(); ok {
		return r, nil
	}
	return e.do(ctx, true)
}

// Refetch fetches regardless of the cached result. Concurrent calls share one request.
func (e *Endpoint[T]) Refetch(ctx context.Context) (Result[T], error) {
	return e.do(ctx, false)
}

// do runs a fetch shared by all concurrent callers.
//
// The request is not bound to ctx cancellation since other callers may wait on it; ctx only
// bounds how long this caller waits.
func (e *Endpoint[T]) do(ctx context.Context, reuseFresh bool) (Result[T], error) {
	ch := e.group.DoChan(e.path, func() (any, error) {
		// A fetch may have completed since the caller looked at the cache.
		if r, ok := e.cached(); ok && reuseFresh {
			return r, nil
		}
		return e.fetch(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Val.(Result[T]), res.Err
	case <-ctx.Done():
		return e.Result(), ctx.Err()
	}
}

// Prefetch starts a fetch in the background unless a fresh result is cached.
// The result is pending when Prefetch returns, so a snapshot taken right after shows the fetch.
func (e *Endpoint[T]) Prefetch() {
	e.mu.Lock()
	if e.isFresh(e.result) {
		e.mu.Unlock()
		return
	}
	e.markPending()
	e.mu.Unlock()

	go func() {
		_, _ = e.do(context.Background(), true)
	}()
}

// RefetchAsync starts a refetch in the background. The result is pending when it returns.
func (e *Endpoint[T]) RefetchAsync() {
	e.mu.Lock()
	e.markPending()
	e.mu.Unlock()

	go func() {
		_, _ = e.do(context.Background(), false)
	}()
}

// Subscribe streams every status change until ctx is done.
func (e *Endpoint[T]) Subscribe(ctx context.Context) <-chan Result[T] {
	return e.notifier.Subscribe(ctx)
}

// Close ends all subscriptions.
func (e *Endpoint[T]) Close() {
	e.notifier.Close()
}

func (e *Endpoint[T]) cached() (Result[T], bool) {
	r := e.Result()
	return r, e.isFresh(r)
}

func (e *Endpoint[T]) isFresh(r Result[T]) bool {
	return r.Status == StatusFulfilled && e.now().Sub(r.FetchedAt) < e.keepUnusedDataFor
}

// markPending sets and publishes the pending status unless already pending. e.mu must be held.
func (e *Endpoint[T]) markPending() {
	if e.result.Status == StatusPending {
		return
	}
	e.result.Status = StatusPending
	e.notifier.Publish(e.result)
}

func (e *Endpoint[T]) fetch(ctx context.Context) (Result[T], error) {
	e.mu.Lock()
	e.markPending()
	e.mu.Unlock()

	raw, err := e.client.Get(ctx, e.path)
	if err == nil {
		var data T
		if decodeErr := json.Unmarshal(raw, &data); decodeErr != nil {
			err = fmt.Errorf("decoding %s: %w", e.path, decodeErr)
		} else {
			return e.update(func(r *Result[T]) {
				r.Status = StatusFulfilled
				r.Data = data
				r.Raw = raw
				r.Err = nil
				r.FetchedAt = e.now()
			}), nil
		}
	}

	e.logger.Warn("Query rejected", slog.Any("error", err))
	return e.update(func(r *Result[T]) {
		r.Status = StatusRejected
		r.Err = err
	}), err
}

func (e *Endpoint[T]) update(fn func(r *Result[T])) Result[T] {
	e.mu.Lock()
	fn(&e.result)
	r := e.result
	e.notifier.Publish(r)
	e.mu.Unlock()
	return r
}
