package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "qqbot"

// Request outcomes recorded per smart request attempt.
const (
	OutcomeSuccess = "success"
	OutcomeNetwork = "network_error"
	OutcomeDenied  = "denied"
	OutcomeGaveUp  = "gave_up"
)

// Recorder owns the bot's collectors. A nil *Recorder records nothing, so
// components can take one unconditionally.
type Recorder struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authStates      *prometheus.CounterVec
	polls           *prometheus.CounterVec
	sent            *prometheus.CounterVec
	commands        *prometheus.CounterVec
	contacts        *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webqq",
			Name:      "request_attempts_total",
			Help:      "Remote request attempts, labeled by endpoint path and outcome",
		}, []string{"endpoint", "outcome"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "webqq",
			Name:      "request_duration_seconds",
			Help:      "Duration of single remote request attempts",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		authStates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "login",
			Name:      "auth_states_total",
			Help:      "QR login state transitions observed",
		}, []string{"state"}),
		polls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "poll_events_total",
			Help:      "Long-poll results, labeled by category (none for empty polls)",
		}, []string{"category"}),
		sent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "message_fragments_sent_total",
			Help:      "Message fragments sent, labeled by category",
		}, []string{"category"}),
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "commands_total",
			Help:      "Controller commands handled, labeled by kind and result",
		}, []string{"kind", "result"}),
		contacts: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "contacts",
			Help:      "Contacts in the current directory snapshot",
		}, []string{"category"}),
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveRequest(endpoint string, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(endpoint, outcome).Inc()
	if outcome != OutcomeGaveUp {
		r.requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	}
}

func (r *Recorder) ObserveAuthState(state string) {
	if r == nil {
		return
	}
	r.authStates.WithLabelValues(state).Inc()
}

func (r *Recorder) ObservePoll(category string) {
	if r == nil {
		return
	}
	if category == "" {
		category = "none"
	}
	r.polls.WithLabelValues(category).Inc()
}

func (r *Recorder) ObserveSent(category string) {
	if r == nil {
		return
	}
	r.sent.WithLabelValues(category).Inc()
}

func (r *Recorder) ObserveCommand(kind string, success bool) {
	if r == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	r.commands.WithLabelValues(kind, result).Inc()
}

func (r *Recorder) SetContacts(category string, count int) {
	if r == nil {
		return
	}
	r.contacts.WithLabelValues(category).Set(float64(count))
}
