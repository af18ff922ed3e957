// Package query fetches remote JSON resources and caches them per endpoint.
package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"github.com/networkteam/uikit/internal/ringbuffer"
)

// DefaultBaseURL is the base URL of the public product API.
const DefaultBaseURL = "https://dummyjson.com"

const (
	DefaultFetchLogSize = 50
	DefaultTimeout      = 10 * time.Second
	// maxBodySize caps response bodies read by the client.
	maxBodySize = 4 << 20
)

var (
	// ErrUnexpectedStatus is wrapped by StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrResponseTooLarge is returned for bodies larger than 4 MiB.
	ErrResponseTooLarge = errors.New("response too large")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %v %d", e.Method, e.URL, ErrUnexpectedStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Transport defaults to http.DefaultTransport.
	Transport http.RoundTripper
	// Timeout per request. Default is DefaultTimeout.
	Timeout time.Duration
	// FetchLogSize is the number of requests kept in the fetch log. Default is DefaultFetchLogSize.
	FetchLogSize int
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Fetch is a recorded request.
type Fetch struct {
	ID         uuid.UUID
	Method     string
	URL        string
	StatusCode int
	Started    time.Time
	Duration   time.Duration
	Err        error
}

// Failed reports whether the request errored or returned a non-2xx status.
func (f Fetch) Failed() bool {
	return f.Err != nil || f.StatusCode < 200 || f.StatusCode > 299
}

// Client performs requests relative to a base URL and records each of them.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	fetches    *ringbuffer.Buffer[Fetch]
	logger     *slog.Logger
}

// NewClient creates a client.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	baseURL, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.FetchLogSize <= 0 {
		opts.FetchLogSize = DefaultFetchLogSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Client{
		baseURL: baseURL,
		fetches: ringbuffer.New[Fetch](opts.FetchLogSize),
		logger:  opts.Logger.With("component", "query"),
	}
	c.httpClient = &http.Client{
		Timeout:   opts.Timeout,
		Transport: &recordingTransport{next: opts.Transport, client: c},
	}
	return c, nil
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Fetches returns up to n of the most recent requests, oldest first. n <= 0 returns all retained.
func (c *Client) Fetches(n int) []Fetch {
	return c.fetches.Last(n)
}

// Get requests path relative to the base URL and returns the response body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	target := c.resolve(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &StatusError{Method: req.Method, URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response of %s: %w", target, err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("response of %s: %w", target, ErrResponseTooLarge)
	}
	return body, nil
}

func (c *Client) resolve(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	return u.String()
}

// recordingTransport adds every round trip to the client's fetch log.
type recordingTransport struct {
	next   http.RoundTripper
	client *Client
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	fetch := Fetch{
		ID:      uuid.Must(uuid.NewV7()),
		Method:  req.Method,
		URL:     req.URL.String(),
		Started: time.Now(),
	}

	resp, err := t.next.RoundTrip(req)

	fetch.Duration = time.Since(fetch.Started)
	fetch.Err = err
	if resp != nil {
		fetch.StatusCode = resp.StatusCode
	}
	t.client.fetches.Push(fetch)

	if fetch.Failed() {
		t.client.logger.Warn("Fetch failed",
			slog.String("method", fetch.Method),
			slog.String("url", fetch.URL),
			slog.Int("status", fetch.StatusCode),
			slog.Any("error", err),
		)
	} else {
		t.client.logger.Debug("Fetched",
			slog.String("method", fetch.Method),
			slog.String("url", fetch.URL),
			slog.Int("status", fetch.StatusCode),
			slog.Duration("duration", fetch.Duration),
		)
	}

	return resp, err
}
