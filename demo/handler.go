// Package demo serves a page demonstrating the button component with a counter and a remote
// product list.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gofrs/uuid"

	"github.com/networkteam/uikit/button"
	"github.com/networkteam/uikit/demo/views"
	"github.com/networkteam/uikit/query"
	"github.com/networkteam/uikit/theme"
)

// SessionCookieName is the cookie holding the visitor's session id.
const SessionCookieName = "uikit_session"

// keepaliveInterval is the interval of comment lines on idle event streams.
const keepaliveInterval = 25 * time.Second

type Handler struct {
	options  handlerOptions
	theme    *theme.Theme
	client   *query.Client
	products *query.Endpoint[query.Products]
	sessions *SessionManager
	logger   *slog.Logger

	mux http.Handler
}

// NewHandler creates the demo handler. Call Close to stop its background work.
func NewHandler(opts ...HandlerOption) (*Handler, error) {
	options := handlerOptions{
		SessionIdleTimeout: DefaultSessionIdleTimeout,
		HistorySize:        DefaultHistorySize,
		FetchLogLimit:      DefaultFetchLogLimit,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Theme == nil {
		options.Theme = theme.Default()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	logger := options.Logger.With("component", "demo")

	client := options.QueryClient
	if client == nil {
		var err error
		client, err = query.NewClient(query.ClientOptions{Logger: options.Logger})
		if err != nil {
			return nil, fmt.Errorf("creating query client: %w", err)
		}
	}

	mux := http.NewServeMux()
	h := &Handler{
		options: options,
		theme:   options.Theme,
		client:  client,
		products: query.NewProducts(client, query.EndpointOptions{
			KeepUnusedDataFor: options.KeepUnusedDataFor,
			Logger:            options.Logger,
		}),
		sessions: NewSessionManager(SessionManagerOptions{
			IdleTimeout: options.SessionIdleTimeout,
			MaxSessions: options.MaxSessions,
			HistorySize: options.HistorySize,
			Logger:      logger,
		}),
		logger: logger,
		mux:    mux,
	}

	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("POST /actions/{name}", h.postAction)
	mux.HandleFunc("GET /events", h.getEventsSSE)
	mux.HandleFunc("GET /static/uikit.css", h.getStylesheet)

	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Close removes all sessions and ends open event streams.
func (h *Handler) Close() {
	h.sessions.Close()
	h.products.Close()
}

// Sessions returns the session manager.
func (h *Handler) Sessions() *SessionManager {
	return h.sessions
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	h.products.Prefetch()

	ctx := h.renderContext(r)
	templ.Handler(views.Page(views.PageProps{
		PathPrefix: h.options.PathPrefix,
		DarkMode:   isDarkMode(r),
		Actions:    controlNames,
		Counter:    h.counterProps(sess),
		Products:   h.productsProps(sess),
	})).ServeHTTP(w, r.WithContext(ctx))
}

// postAction activates the named control as it renders for the current state.
func (h *Handler) postAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	name := r.PathValue("name")
	props, exists := h.controls(sess, h.products.Result())[name]
	if !exists {
		http.Error(w, "Unknown action", http.StatusNotFound)
		return
	}

	v := button.Render(props, button.EnvFromContext(h.renderContext(r)))
	if err := v.Activate(r.Context()); err != nil {
		if errors.Is(err, button.ErrDisabled) {
			http.Error(w, "Control is disabled", http.StatusConflict)
			return
		}
		h.logger.Error("Action failed", slog.String("action", name), slog.Any("error", err))
		http.Error(w, "Action failed", http.StatusInternalServerError)
		return
	}

	if r.Header.Get("X-Requested-With") == "fetch" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	redirect := h.options.PathPrefix + "/"
	if isDarkMode(r) {
		redirect += "?dark=1"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// getEventsSSE streams counter and product fragments of the session.
func (h *Handler) getEventsSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	release := h.sessions.Connect(sess.ID)
	defer release()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // For NGINX proxy

	ctx, cancel := context.WithCancel(h.renderContext(r))
	defer cancel()

	counterCh := sess.Counter.Subscribe(ctx)
	productsCh := h.products.Subscribe(ctx)

	fmt.Fprintf(w, "event: keepalive\ndata: connected\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	send := func(name string, c templ.Component) bool {
		if err := writeEvent(ctx, w, name, c); err != nil {
			h.logger.Debug("Writing event failed", slog.String("event", name), slog.Any("error", err))
			return false
		}
		flusher.Flush()
		return true
	}

	// Fragments may have changed between rendering the page and connecting.
	if !send(views.CounterID, views.Counter(h.counterProps(sess))) ||
		!send(views.ProductsID, views.Products(h.productsProps(sess))) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepalive.C:
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case _, ok := <-counterCh:
			if !ok {
				return
			}
			// The product list shows as many items as the count.
			if !send(views.CounterID, views.Counter(h.counterProps(sess))) ||
				!send(views.ProductsID, views.Products(h.productsProps(sess))) {
				return
			}
		case _, ok := <-productsCh:
			if !ok {
				return
			}
			if !send(views.ProductsID, views.Products(h.productsProps(sess))) {
				return
			}
		}
	}
}

func (h *Handler) getStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, button.CSS(h.theme))
}

func (h *Handler) counterProps(sess *Session) views.CounterProps {
	controls := h.controls(sess, h.products.Result())
	return views.CounterProps{
		Count:     sess.Counter.State().Value,
		Increment: controls[ControlIncrement],
		Decrement: controls[ControlDecrement],
	}
}

func (h *Handler) productsProps(sess *Session) views.ProductsProps {
	result := h.products.Result()
	return views.ProductsProps{
		Count:   sess.Counter.State().Value,
		Result:  result,
		Refresh: h.controls(sess, result)[ControlRefresh],
		Fetches: h.client.Fetches(h.options.FetchLogLimit),
	}
}

// session returns the visitor's session, creating it and setting the cookie if needed.
// It answers the request itself and returns false if no session is available.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	var id uuid.UUID
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		id, _ = uuid.FromString(cookie.Value)
	}
	fresh := id == uuid.Nil
	if fresh {
		id = uuid.Must(uuid.NewV7())
	}

	sess, _, err := h.sessions.GetOrCreate(id)
	if err != nil {
		h.logger.Warn("Rejecting session", slog.Any("error", err))
		http.Error(w, "Too many sessions", http.StatusServiceUnavailable)
		return nil, false
	}

	if fresh {
		path := h.options.PathPrefix
		if path == "" {
			path = "/"
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    id.String(),
			Path:     path,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return sess, true
}

// renderContext carries the theme, button environment and dark mode of the request.
func (h *Handler) renderContext(r *http.Request) context.Context {
	ctx := r.Context()
	dark := isDarkMode(r)
	ctx = theme.WithTheme(ctx, h.theme)
	ctx = theme.WithDarkMode(ctx, dark)
	return button.WithEnv(ctx, button.Env{Theme: h.theme, DarkMode: dark})
}

func isDarkMode(r *http.Request) bool {
	switch r.URL.Query().Get("dark") {
	case "1", "true", "on":
		return true
	default:
		return false
	}
}
