package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/internal/notify"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestNotifier_Publish(t *testing.T) {
	t.Parallel()

	n := notify.New[string](notify.Options{})
	defer n.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subs := []<-chan string{n.Subscribe(ctx), n.Subscribe(ctx), n.Subscribe(ctx)}
	assert.Equal(t, 3, n.Subscribers())

	n.Publish("hello")

	for _, ch := range subs {
		assert.Equal(t, "hello", receive(t, ch))
	}
}

func TestNotifier_SlowSubscriberKeepsLatest(t *testing.T) {
	t.Parallel()

	n := notify.New[int](notify.Options{BufferSize: 2})
	defer n.Close()

	ch := n.Subscribe(context.Background())
	for i := 1; i <= 5; i++ {
		n.Publish(i)
	}

	assert.Equal(t, 4, receive(t, ch))
	assert.Equal(t, 5, receive(t, ch))
}

func TestNotifier_ContextCancelUnsubscribes(t *testing.T) {
	t.Parallel()

	n := notify.New[int](notify.Options{})
	defer n.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := n.Subscribe(ctx)
	cancel()

	assert.Eventually(t, func() bool { return n.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-ch
	assert.False(t, ok)

	// no panic on publish after unsubscribe
	n.Publish(1)
}

func TestNotifier_Close(t *testing.T) {
	t.Parallel()

	n := notify.New[int](notify.Options{})
	ch := n.Subscribe(context.Background())

	n.Close()
	n.Close()

	_, ok := <-ch
	assert.False(t, ok)

	late := n.Subscribe(context.Background())
	_, ok = <-late
	assert.False(t, ok)

	n.Publish(1)
}

func TestNotifier_ConcurrentPublishAndCancel(t *testing.T) {
	t.Parallel()

	n := notify.New[int](notify.Options{BufferSize: 1})
	defer n.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithCancel(context.Background())
			ch := n.Subscribe(ctx)
			n.Publish(1)
			cancel()
			for range ch {
			}
		}()
	}
	for i := range 100 {
		n.Publish(i)
	}
	wg.Wait()
}
