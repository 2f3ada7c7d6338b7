package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilRecorderIsNoop(t *testing.T) {
	t.Parallel()

	var recorder *Recorder
	assert.NotPanics(t, func() {
		recorder.ObserveRequest("/channel/poll2", OutcomeSuccess, time.Second)
		recorder.ObserveAuthState("pending_scan")
		recorder.ObservePoll("")
		recorder.ObserveSent("buddy")
		recorder.ObserveCommand("help", true)
		recorder.SetContacts("group", 3)
	})
	assert.Nil(t, recorder.Registry())
}

func TestRecorderCountsByLabel(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.ObserveRequest("/channel/poll2", OutcomeNetwork, time.Millisecond)
	recorder.ObserveRequest("/channel/poll2", OutcomeNetwork, time.Millisecond)
	recorder.ObserveRequest("/channel/poll2", OutcomeSuccess, time.Millisecond)
	recorder.ObservePoll("")
	recorder.ObserveCommand("send", false)
	recorder.SetContacts("buddy", 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.requests.WithLabelValues("/channel/poll2", OutcomeNetwork)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.requests.WithLabelValues("/channel/poll2", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.polls.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.commands.WithLabelValues("send", "failure")))
	assert.Equal(t, 7.0, testutil.ToFloat64(recorder.contacts.WithLabelValues("buddy")))
}

func TestRouterServesMetrics(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.ObserveSent("group")

	rec := httptest.NewRecorder()
	newRouter(recorder).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `qqbot_bot_message_fragments_sent_total{category="group"} 1`)
}
