package ports

// Metrics receives the application's counters. Implementations must accept
// calls from the poller and dispatcher goroutines concurrently.
type Metrics interface {
	ObserveAuthState(state string)
	ObservePoll(category string)
	ObserveCommand(kind string, success bool)
	SetContacts(category string, count int)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ObserveAuthState(string)     {}
func (NopMetrics) ObservePoll(string)          {}
func (NopMetrics) ObserveCommand(string, bool) {}
func (NopMetrics) SetContacts(string, int)     {}
