//go:build acceptance
// +build acceptance

package acceptance

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/demo"
	"github.com/networkteam/uikit/query"
)

// ProductsJSON is served by the fake product API.
const ProductsJSON = `{"products":[
	{"id":1,"title":"Essence Mascara Lash Princess","price":9.99},
	{"id":2,"title":"Eyeshadow Palette with Mirror","price":19.99},
	{"id":3,"title":"Powder Canister","price":14.99},
	{"id":4,"title":"Red Lipstick","price":12.99}
],"total":4,"skip":0,"limit":30}`

// TestApp runs the demo handler against a fake product API.
type TestApp struct {
	Server  *httptest.Server
	API     *httptest.Server
	Handler *demo.Handler
	AppURL  string

	mu   sync.Mutex
	gate chan struct{}
}

// NewTestApp starts the demo mounted at /demo.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	app := &TestApp{}

	app.API = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		gate := app.gate
		app.mu.Unlock()
		if gate != nil {
			<-gate
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(ProductsJSON))
	}))

	client, err := query.NewClient(query.ClientOptions{BaseURL: app.API.URL})
	require.NoError(t, err)

	handler, err := demo.NewHandler(
		demo.WithPathPrefix("/demo"),
		demo.WithQueryClient(client),
	)
	require.NoError(t, err)
	app.Handler = handler

	mux := http.NewServeMux()
	mux.Handle("/demo/", http.StripPrefix("/demo", handler))
	app.Server = httptest.NewServer(mux)
	app.AppURL = app.Server.URL + "/demo/"

	return app
}

// HoldProducts makes product responses wait until the returned function is called.
func (ta *TestApp) HoldProducts() (release func()) {
	gate := make(chan struct{})
	ta.mu.Lock()
	ta.gate = gate
	ta.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			ta.mu.Lock()
			ta.gate = nil
			ta.mu.Unlock()
			close(gate)
		})
	}
}

// Close shuts down the test application and releases resources.
func (ta *TestApp) Close() {
	ta.Handler.Close()
	ta.Server.Close()
	ta.API.Close()
}
