package webqq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	c.mu.Unlock()
	return ctx.Err()
}

// retrySleeps returns the recorded sleeps of the given length.
func (c *fakeClock) retrySleeps(d time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, slept := range c.sleeps {
		if slept == d {
			count++
		}
	}
	return count
}

func endpointsAt(baseURL string) Endpoints {
	return Endpoints{
		UILogin:  baseURL,
		SSLLogin: baseURL,
		S:        baseURL,
		D1:       baseURL,
		PingHot:  baseURL,
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *fakeClock, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clock := newFakeClock()
	client, err := NewClient(Options{
		Endpoints:  endpointsAt(server.URL),
		HTTPClient: server.Client(),
		Clock:      clock,
	})
	require.NoError(t, err)

	return client, clock, server
}
