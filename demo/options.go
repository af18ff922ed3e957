package demo

import (
	"log/slog"
	"time"

	"github.com/networkteam/uikit/query"
	"github.com/networkteam/uikit/theme"
)

const (
	// DefaultSessionIdleTimeout is how long a session without requests or event streams is kept.
	DefaultSessionIdleTimeout = 30 * time.Minute
	// DefaultHistorySize is the number of actions kept per session.
	DefaultHistorySize = 50
	// DefaultFetchLogLimit is the number of fetches shown on the page.
	DefaultFetchLogLimit = 10
)

// handlerOptions holds configuration for a demo Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/demo").
	PathPrefix string
	// Theme defaults to theme.Default().
	Theme *theme.Theme
	// QueryClient fetches the product list. A client for query.DefaultBaseURL is created if nil.
	QueryClient *query.Client
	// KeepUnusedDataFor is how long the product list is cached.
	KeepUnusedDataFor time.Duration
	// SessionIdleTimeout is how long to wait after the last activity before a session is removed.
	SessionIdleTimeout time.Duration
	// MaxSessions is the maximum number of concurrent sessions (0 = unlimited).
	MaxSessions int
	// HistorySize is the number of actions kept per session.
	HistorySize int
	// FetchLogLimit is the number of recent fetches shown on the page.
	FetchLogLimit int
	Logger        *slog.Logger
}

// HandlerOption configures a demo Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// It is used for generating URLs in the page; stripping the prefix is up to the caller.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithTheme sets the theme used to render buttons and the stylesheet.
func WithTheme(t *theme.Theme) HandlerOption {
	return func(o *handlerOptions) {
		o.Theme = t
	}
}

// WithQueryClient sets the client used to fetch the product list.
func WithQueryClient(c *query.Client) HandlerOption {
	return func(o *handlerOptions) {
		o.QueryClient = c
	}
}

// WithKeepUnusedDataFor sets how long a fetched product list is served before refetching.
// Default is query.DefaultKeepUnusedDataFor.
func WithKeepUnusedDataFor(d time.Duration) HandlerOption {
	return func(o *handlerOptions) {
		o.KeepUnusedDataFor = d
	}
}

// WithSessionIdleTimeout sets how long to wait after the last activity before cleanup.
// Default is 30 minutes if not specified.
func WithSessionIdleTimeout(timeout time.Duration) HandlerOption {
	return func(o *handlerOptions) {
		o.SessionIdleTimeout = timeout
	}
}

// WithMaxSessions sets the maximum number of concurrent sessions.
// Default is 0 (unlimited).
func WithMaxSessions(limit int) HandlerOption {
	return func(o *handlerOptions) {
		o.MaxSessions = limit
	}
}

// WithHistorySize sets the number of actions kept per session.
func WithHistorySize(size int) HandlerOption {
	return func(o *handlerOptions) {
		o.HistorySize = size
	}
}

// WithFetchLogLimit sets the number of recent fetches shown on the page.
func WithFetchLogLimit(limit int) HandlerOption {
	return func(o *handlerOptions) {
		o.FetchLogLimit = limit
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.Logger = logger
	}
}
