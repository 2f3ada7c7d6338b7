package webqq

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/qqbot-cli/internal/domain"
)

type handshakeServer struct {
	mu           sync.Mutex
	statusProbes []bool
	login2Form   string
}

func (s *handshakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/cgi-bin/login":
		_, _ = w.Write([]byte("<html>login</html>"))
	case "/ptqrlogin":
		_, err := r.Cookie("qrsig")
		s.mu.Lock()
		s.statusProbes = append(s.statusProbes, err == nil)
		s.mu.Unlock()
		_, _ = w.Write([]byte("ptuiCB('66','0','','0','二维码未失效。(3203571101)', '');"))
	case "/ptqrshow":
		_, _ = w.Write([]byte("\x89PNG-bytes"))
	case "/check_sig":
		http.SetCookie(w, &http.Cookie{Name: "ptwebqq", Value: "ptwebqq-token", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "superuin", Value: "o0123456789", Path: "/"})
		_, _ = w.Write([]byte("ok"))
	case "/api/getvfwebqq":
		_, _ = w.Write([]byte(`{"retcode":0,"result":{"vfwebqq":"vf-token"}}`))
	case "/channel/login2":
		_ = r.ParseForm()
		s.mu.Lock()
		s.login2Form = r.PostForm.Get("r")
		s.mu.Unlock()
		_, _ = w.Write([]byte(`{"retcode":0,"result":{"uin":2847312001,"psessionid":"psession-1"}}`))
	case "/channel/get_online_buddies2":
		if r.URL.Query().Get("psessionid") != "psession-1" {
			_, _ = w.Write([]byte(`{"retcode":103}`))
			return
		}
		_, _ = w.Write([]byte(`{"retcode":0,"result":[]}`))
	default:
		http.NotFound(w, r)
	}
}

func TestLoginHandshakeAgainstFakeServer(t *testing.T) {
	t.Parallel()

	fake := &handshakeServer{}
	client, _, server := newTestClient(t, fake)
	ctx := context.Background()

	require.NoError(t, client.PrepareLogin(ctx))

	png, err := client.FetchQRCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG-bytes"), png)

	status, err := client.FetchAuthStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AuthStatePendingScan, domain.ClassifyAuthStatus(status))

	fake.mu.Lock()
	assert.Equal(t, []bool{true, false}, fake.statusProbes, "qrsig is sent on the first probe only")
	fake.mu.Unlock()

	ptwebqq, qq, err := client.FetchPtwebqq(ctx, server.URL+"/check_sig?uin=1&service=ptqrlogin")
	require.NoError(t, err)
	assert.Equal(t, "ptwebqq-token", ptwebqq)
	assert.Equal(t, int64(123456789), qq)

	vfwebqq, err := client.FetchVFWebQQ(ctx, ptwebqq)
	require.NoError(t, err)
	assert.Equal(t, "vf-token", vfwebqq)

	uin, psessionid, err := client.FetchUinAndPsessionid(ctx, ptwebqq)
	require.NoError(t, err)
	assert.Equal(t, int64(2847312001), uin)
	assert.Equal(t, "psession-1", psessionid)

	fake.mu.Lock()
	var login2 map[string]any
	require.NoError(t, json.Unmarshal([]byte(fake.login2Form), &login2))
	fake.mu.Unlock()
	assert.Equal(t, "ptwebqq-token", login2["ptwebqq"])
	assert.Equal(t, "online", login2["status"])
	assert.Equal(t, float64(domain.ClientID), login2["clientid"])

	session := domain.NewSession()
	session.VFWebQQ = vfwebqq
	session.PSessionID = psessionid
	require.NoError(t, client.TestLogin(ctx, session))

	session.PSessionID = "stale"
	err = client.TestLogin(ctx, session)
	require.Error(t, err)
	assert.True(t, domain.IsFatal(err))
}

func TestFetchPtwebqqFailsWithoutCookie(t *testing.T) {
	t.Parallel()

	client, _, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	_, _, err := client.FetchPtwebqq(context.Background(), server.URL+"/check_sig")
	assert.ErrorIs(t, err, domain.ErrMissingCookie)
}

func TestFetchPtwebqqFallsBackToRedirectUIN(t *testing.T) {
	t.Parallel()

	client, _, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "ptwebqq", Value: "p", Path: "/"})
		_, _ = w.Write([]byte("ok"))
	}))

	_, qq, err := client.FetchPtwebqq(context.Background(), server.URL+"/check_sig?uin=10001")
	require.NoError(t, err)
	assert.Equal(t, int64(10001), qq)
}

func TestCookiesSurviveExportAndImport(t *testing.T) {
	t.Parallel()

	source, _, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "ptwebqq", Value: "p", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "skey", Value: "@abc", Path: "/"})
		_, _ = w.Write([]byte("ok"))
	}))
	_, err := source.Get(context.Background(), server.URL+"/check_sig", "")
	require.NoError(t, err)

	exported := source.ExportCookies()
	assert.ElementsMatch(t, []domain.Cookie{
		{URL: server.URL + "/", Name: "ptwebqq", Value: "p"},
		{URL: server.URL + "/", Name: "skey", Value: "@abc"},
	}, exported)

	restored, err := NewClient(Options{Endpoints: endpointsAt(server.URL), HTTPClient: server.Client(), Clock: newFakeClock()})
	require.NoError(t, err)
	require.NoError(t, restored.ImportCookies(exported))

	value, ok := restored.cookieValue("skey", server.URL+"/")
	require.True(t, ok)
	assert.Equal(t, "@abc", value)
}

func TestResetCookiesDropsImportedSession(t *testing.T) {
	t.Parallel()

	var sent []string
	client, _, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, cookie := range r.Cookies() {
			sent = append(sent, cookie.Name)
		}
		_, _ = w.Write([]byte("ok"))
	}))
	require.NoError(t, client.ImportCookies([]domain.Cookie{
		{URL: server.URL + "/", Name: "skey", Value: "@stale"},
		{URL: server.URL + "/", Name: "ptwebqq", Value: "stale"},
	}))

	require.NoError(t, client.ResetCookies())

	assert.Empty(t, client.ExportCookies())
	_, ok := client.cookieValue("skey", server.URL+"/")
	assert.False(t, ok)

	_, err := client.Get(context.Background(), server.URL+"/check_sig", "")
	require.NoError(t, err)
	assert.Empty(t, sent)
}
