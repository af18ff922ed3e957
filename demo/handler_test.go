package demo_test

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/demo"
	"github.com/networkteam/uikit/query"
)

const productsJSON = `{"products":[
	{"id":1,"title":"Essence Mascara Lash Princess","price":9.99},
	{"id":2,"title":"Eyeshadow Palette with Mirror","price":19.99},
	{"id":3,"title":"Powder Canister","price":14.99}
],"total":3,"skip":0,"limit":30}`

type testEnv struct {
	server  *httptest.Server
	client  *http.Client
	handler *demo.Handler
	release chan struct{}
	hits    *atomic.Int32
}

// newTestEnv starts the demo against a fake product API. If blockProducts is set, product
// responses wait until env.release is closed.
func newTestEnv(t *testing.T, blockProducts bool, opts ...demo.HandlerOption) *testEnv {
	t.Helper()

	env := &testEnv{hits: &atomic.Int32{}}
	if blockProducts {
		env.release = make(chan struct{})
	}

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.hits.Add(1)
		if env.release != nil {
			<-env.release
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsJSON))
	}))
	t.Cleanup(api.Close)
	t.Cleanup(func() {
		if env.release != nil {
			select {
			case <-env.release:
			default:
				close(env.release)
			}
		}
	})

	qc, err := query.NewClient(query.ClientOptions{BaseURL: api.URL})
	require.NoError(t, err)

	handler, err := demo.NewHandler(append([]demo.HandlerOption{demo.WithQueryClient(qc)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(handler.Close)
	env.handler = handler

	env.server = httptest.NewServer(handler)
	t.Cleanup(env.server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	env.client = &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return env
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := e.client.Get(e.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *testEnv) post(t *testing.T, path string, fetch bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, e.server.URL+path, nil)
	require.NoError(t, err)
	if fetch {
		req.Header.Set("X-Requested-With", "fetch")
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestHandler_PageRendersControls(t *testing.T) {
	env := newTestEnv(t, false)

	resp, body := env.get(t, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, `id="button-increment"`)
	assert.Contains(t, body, `id="button-decrement"`)
	assert.Contains(t, body, `form="action-increment"`)
	assert.Contains(t, body, `<form id="action-increment" method="post" action="/actions/increment"`)
	assert.Contains(t, body, `<h2 class="demo-count" data-testid="count">0</h2>`)
	assert.Contains(t, body, `href="/static/uikit.css"`)
	assert.NotContains(t, body, `data-testid="product-list"`)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == demo.SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, 1, env.handler.Sessions().Len())
}

func TestHandler_IncrementShowsProducts(t *testing.T) {
	env := newTestEnv(t, false)
	env.get(t, "/")

	resp := env.post(t, "/actions/increment", false)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	assert.Equal(t, http.StatusNoContent, env.post(t, "/actions/increment", true).StatusCode)

	require.Eventually(t, func() bool {
		_, body := env.get(t, "/")
		return strings.Contains(body, `data-status="fulfilled"`)
	}, 2*time.Second, 10*time.Millisecond)

	_, body := env.get(t, "/")
	assert.Contains(t, body, `data-testid="count">2</h2>`)
	assert.Contains(t, body, "Essence Mascara Lash Princess - 9.99 $")
	assert.Contains(t, body, "Eyeshadow Palette with Mirror - 19.99 $")
	assert.NotContains(t, body, "Powder Canister - 14.99 $")
	assert.Contains(t, body, `data-testid="raw-response"`)
	assert.Contains(t, body, `data-testid="fetch-log"`)
	assert.Equal(t, int32(1), env.hits.Load())
}

func TestHandler_DecrementBelowZeroHidesList(t *testing.T) {
	env := newTestEnv(t, false)
	env.get(t, "/")

	env.post(t, "/actions/decrement", true)

	_, body := env.get(t, "/")
	assert.Contains(t, body, `data-testid="count">-1</h2>`)
	assert.NotContains(t, body, `data-testid="product-list"`)
}

func TestHandler_SessionsAreSeparate(t *testing.T) {
	env := newTestEnv(t, false)
	env.get(t, "/")
	env.post(t, "/actions/increment", true)

	other := &http.Client{}
	resp, err := other.Get(env.server.URL + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Contains(t, string(body), `data-testid="count">0</h2>`)
	assert.Equal(t, 2, env.handler.Sessions().Len())
}

func TestHandler_LoadingControlRejectsActivation(t *testing.T) {
	env := newTestEnv(t, true)

	env.get(t, "/")

	var body string
	require.Eventually(t, func() bool {
		_, body = env.get(t, "/")
		return strings.Contains(body, `data-status="pending"`)
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, body, `aria-busy="true"`)

	resp := env.post(t, "/actions/refresh", true)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	close(env.release)
	require.Eventually(t, func() bool {
		_, body := env.get(t, "/")
		return strings.Contains(body, `data-status="fulfilled"`)
	}, 2*time.Second, 10*time.Millisecond)

	resp = env.post(t, "/actions/refresh", true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Eventually(t, func() bool { return env.hits.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_UnknownAction(t *testing.T) {
	env := newTestEnv(t, false)

	resp := env.post(t, "/actions/explode", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_DarkMode(t *testing.T) {
	env := newTestEnv(t, false, demo.WithPathPrefix("/demo"))

	_, body := env.get(t, "/?dark=1")
	assert.Contains(t, body, "uikit-button--dark")
	assert.Contains(t, body, `class="demo--dark"`)
	assert.Contains(t, body, `action="/demo/actions/increment?dark=1"`)
	assert.Contains(t, body, `data-events-url="/demo/events?dark=1"`)

	resp := env.post(t, "/actions/increment?dark=1", false)
	assert.Equal(t, "/demo/?dark=1", resp.Header.Get("Location"))
}

func TestHandler_Stylesheet(t *testing.T) {
	env := newTestEnv(t, false)

	resp, body := env.get(t, "/static/uikit.css")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Contains(t, body, ".uikit-button")
}

func TestHandler_MaxSessions(t *testing.T) {
	env := newTestEnv(t, false, demo.WithMaxSessions(1))
	env.get(t, "/")

	resp, err := (&http.Client{}).Get(env.server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandler_EventsStreamCounterUpdates(t *testing.T) {
	env := newTestEnv(t, false)
	env.get(t, "/")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, env.server.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := env.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan string, 10)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		var current strings.Builder
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				events <- current.String()
				current.Reset()
				continue
			}
			current.WriteString(line)
			current.WriteString("\n")
		}
	}()

	waitFor := func(prefix, contains string) string {
		t.Helper()
		timeout := time.After(2 * time.Second)
		for {
			select {
			case ev := <-events:
				if strings.HasPrefix(ev, prefix) && strings.Contains(ev, contains) {
					return ev
				}
			case <-timeout:
				t.Fatalf("timed out waiting for %q containing %q", prefix, contains)
				return ""
			}
		}
	}

	waitFor("event: keepalive", "")
	initial := waitFor("event: counter", "")
	assert.Contains(t, initial, `data-testid="count">0</h2>`)

	env.post(t, "/actions/increment", true)

	ev := waitFor("event: counter", `data-testid="count">1</h2>`)
	assert.Contains(t, ev, `data: <section class="demo-counter" id="counter">`)
	waitFor("event: products", "")
}
