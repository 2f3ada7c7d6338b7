package application

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)}
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

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

type recordingMetrics struct {
	mu       sync.Mutex
	states   []string
	polls    []string
	commands map[string][]bool
	contacts map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{commands: map[string][]bool{}, contacts: map[string]int{}}
}

func (m *recordingMetrics) ObserveAuthState(state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states = append(m.states, state)
}

func (m *recordingMetrics) ObservePoll(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls = append(m.polls, category)
}

func (m *recordingMetrics) ObserveCommand(kind string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[kind] = append(m.commands[kind], success)
}

func (m *recordingMetrics) SetContacts(category string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts[category] = count
}

func (m *recordingMetrics) Commands(kind string) []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.commands[kind]...)
}
