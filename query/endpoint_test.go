package query

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `{"products":[
	{"id":1,"title":"Essence Mascara","price":9.99,"images":["a.png"]},
	{"id":2,"title":"Eyeshadow Palette","price":19.99},
	{"id":3,"title":"Powder Canister","price":14.99}
],"total":3,"skip":0,"limit":30}`

func newProductServer(t *testing.T, hits *atomic.Int32, release <-chan struct{}) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if release != nil {
			<-release
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)
	return c
}

func TestEndpoint_GetCachesFreshResult(t *testing.T) {
	var hits atomic.Int32
	e := NewProducts(newProductServer(t, &hits, nil), EndpointOptions{})
	defer e.Close()

	assert.Equal(t, StatusUninitialized, e.Result().Status)
	assert.False(t, e.Result().HasData())

	r, err := e.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusFulfilled, r.Status)
	require.Len(t, r.Data.Products, 3)
	assert.Equal(t, "Essence Mascara", r.Data.Products[0].Title)
	assert.Equal(t, []string{"a.png"}, r.Data.Products[0].Images)
	assert.Equal(t, 3, r.Data.Total)
	assert.JSONEq(t, productsJSON, string(r.Raw))

	_, err = e.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestEndpoint_RefetchesStaleResult(t *testing.T) {
	var hits atomic.Int32
	e := NewProducts(newProductServer(t, &hits, nil), EndpointOptions{KeepUnusedDataFor: time.Minute})
	defer e.Close()

	now := time.Now()
	e.now = func() time.Time { return now }

	_, err := e.Get(context.Background())
	require.NoError(t, err)

	now = now.Add(59 * time.Second)
	_, err = e.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	now = now.Add(2 * time.Second)
	_, err = e.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestEndpoint_ConcurrentGetsShareOneRequest(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	e := NewProducts(newProductServer(t, &hits, release), EndpointOptions{})
	defer e.Close()

	var wg sync.WaitGroup
	results := make([]Result[Products], 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = e.Get(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return e.Result().Status == StatusPending }, time.Second, time.Millisecond)
	// let the remaining callers join the in-flight request
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for _, r := range results {
		assert.Equal(t, StatusFulfilled, r.Status)
	}
}

func TestEndpoint_RejectedKeepsPreviousData(t *testing.T) {
	fail := atomic.Bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(productsJSON))
	}))
	defer server.Close()

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)
	e := NewProducts(c, EndpointOptions{})
	defer e.Close()

	_, err = e.Refetch(context.Background())
	require.NoError(t, err)

	fail.Store(true)
	r, err := e.Refetch(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, StatusRejected, r.Status)
	assert.ErrorIs(t, r.Err, ErrUnexpectedStatus)
	assert.True(t, r.HasData())
	assert.Len(t, r.Data.Products, 3)
}

func TestEndpoint_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)
	e := NewProducts(c, EndpointOptions{})
	defer e.Close()

	r, err := e.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusRejected, r.Status)
	assert.False(t, r.HasData())
}

func TestEndpoint_SubscribeSeesStatusChanges(t *testing.T) {
	var hits atomic.Int32
	e := NewProducts(newProductServer(t, &hits, nil), EndpointOptions{})
	defer e.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := e.Subscribe(ctx)

	e.Prefetch()

	var statuses []Status
	for len(statuses) < 2 {
		select {
		case r := <-ch:
			statuses = append(statuses, r.Status)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for result")
		}
	}
	assert.Equal(t, []Status{StatusPending, StatusFulfilled}, statuses)
}

func TestEndpoint_CallerCancelDoesNotAbortSharedFetch(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	e := NewProducts(newProductServer(t, &hits, release), EndpointOptions{})
	defer e.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := e.Get(ctx)
		done <- err
	}()

	require.Eventually(t, func() bool { return e.Result().Status == StatusPending }, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(release)
	assert.Eventually(t, func() bool { return e.Result().Status == StatusFulfilled }, time.Second, 5*time.Millisecond)
}

func TestEndpoint_RefetchAsyncIsPendingImmediately(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) > 1 {
			<-release
		}
		w.Write([]byte(productsJSON))
	}))
	defer server.Close()
	defer close(release)

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)
	e := NewProducts(c, EndpointOptions{})
	defer e.Close()

	_, err = e.Get(context.Background())
	require.NoError(t, err)

	e.RefetchAsync()

	r := e.Result()
	assert.Equal(t, StatusPending, r.Status)
	assert.True(t, r.HasData())
	assert.Eventually(t, func() bool { return hits.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestEndpoint_PrefetchSkipsFreshResult(t *testing.T) {
	var hits atomic.Int32
	e := NewProducts(newProductServer(t, &hits, nil), EndpointOptions{})
	defer e.Close()

	_, err := e.Get(context.Background())
	require.NoError(t, err)

	e.Prefetch()
	assert.Equal(t, StatusFulfilled, e.Result().Status)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), hits.Load())
}

func TestProducts_First(t *testing.T) {
	p := Products{Products: []Product{{ID: 1}, {ID: 2}, {ID: 3}}}

	assert.Len(t, p.First(2), 2)
	assert.Len(t, p.First(10), 3)
	assert.Empty(t, p.First(0))
	assert.Empty(t, p.First(-4))
	assert.Empty(t, Products{}.First(3))
}
