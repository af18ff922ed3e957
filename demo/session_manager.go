package demo

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid"

	"github.com/networkteam/uikit/store"
)

// ErrTooManySessions is returned when MaxSessions is reached.
var ErrTooManySessions = errors.New("too many sessions")

// Session is the state of a single visitor.
type Session struct {
	ID      uuid.UUID
	Counter *store.Store[store.CounterState]

	lastActive  time.Time
	connections int
}

// SessionManager manages visitor sessions and their stores.
// Sessions without requests and without open event streams are removed after the idle timeout.
type SessionManager struct {
	sessions   map[uuid.UUID]*Session
	sessionsMu sync.Mutex

	idleTimeout time.Duration
	maxSessions int
	historySize int
	logger      *slog.Logger

	cleanupCtx       context.Context
	cleanupCtxCancel context.CancelFunc
}

// SessionManagerOptions configures a SessionManager.
type SessionManagerOptions struct {
	IdleTimeout time.Duration
	MaxSessions int
	HistorySize int
	Logger      *slog.Logger
}

// NewSessionManager creates a new SessionManager and starts the cleanup goroutine.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultSessionIdleTimeout
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	cleanupCtx, cleanupCtxCancel := context.WithCancel(context.Background())

	sm := &SessionManager{
		sessions:         make(map[uuid.UUID]*Session),
		idleTimeout:      opts.IdleTimeout,
		maxSessions:      opts.MaxSessions,
		historySize:      opts.HistorySize,
		logger:           opts.Logger,
		cleanupCtx:       cleanupCtx,
		cleanupCtxCancel: cleanupCtxCancel,
	}

	go sm.cleanupLoop()

	return sm
}

// Get returns a session, or nil if not found.
func (sm *SessionManager) Get(id uuid.UUID) *Session {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()
	return sm.sessions[id]
}

// GetOrCreate returns the session for id, creating it if it doesn't exist.
// Every call counts as activity. Returns the session and whether it was newly created.
func (sm *SessionManager) GetOrCreate(id uuid.UUID) (*Session, bool, error) {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	if sess, exists := sm.sessions[id]; exists {
		sess.lastActive = time.Now()
		return sess, false, nil
	}

	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		return nil, false, ErrTooManySessions
	}

	sess := &Session{
		ID: id,
		Counter: store.NewCounter(store.Options{
			HistorySize: sm.historySize,
			Logger:      sm.logger.With("session", id.String()),
		}),
		lastActive: time.Now(),
	}
	sm.sessions[id] = sess

	sm.logger.Debug("Created session", slog.String("session", id.String()))

	return sess, true, nil
}

// Connect marks an open event stream for the session. The returned function ends it.
// A session with open streams is never removed as idle.
func (sm *SessionManager) Connect(id uuid.UUID) (release func()) {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	sess, exists := sm.sessions[id]
	if !exists {
		return func() {}
	}
	sess.connections++

	var once sync.Once
	return func() {
		once.Do(func() {
			sm.sessionsMu.Lock()
			defer sm.sessionsMu.Unlock()
			sess.connections--
			sess.lastActive = time.Now()
		})
	}
}

// Delete removes a session and closes its store.
func (sm *SessionManager) Delete(id uuid.UUID) {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	if sess, exists := sm.sessions[id]; exists {
		sess.Counter.Close()
		delete(sm.sessions, id)
	}
}

// Len returns the number of sessions.
func (sm *SessionManager) Len() int {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()
	return len(sm.sessions)
}

// IdleTimeout returns the configured idle timeout duration.
func (sm *SessionManager) IdleTimeout() time.Duration {
	return sm.idleTimeout
}

// Close shuts down the session manager and closes all sessions.
func (sm *SessionManager) Close() {
	sm.cleanupCtxCancel()

	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	for id, sess := range sm.sessions {
		sess.Counter.Close()
		delete(sm.sessions, id)
	}
}

// cleanupLoop periodically checks for idle sessions and cleans them up.
func (sm *SessionManager) cleanupLoop() {
	ticker := time.NewTicker(sm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-sm.cleanupCtx.Done():
			return
		case <-ticker.C:
			sm.cleanupIdleSessions(time.Now())
		}
	}
}

func (sm *SessionManager) cleanupIdleSessions(now time.Time) {
	sm.sessionsMu.Lock()
	defer sm.sessionsMu.Unlock()

	for id, sess := range sm.sessions {
		if sess.connections > 0 {
			continue
		}
		if idle := now.Sub(sess.lastActive); idle > sm.idleTimeout {
			sm.logger.Debug("Cleaning up idle session", slog.String("session", id.String()), slog.Duration("idle", idle))
			sess.Counter.Close()
			delete(sm.sessions, id)
		}
	}
}
