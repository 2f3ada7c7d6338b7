package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	pendingStatus    = "ptuiCB('66','0','','0','二维码未失效。(3203424615)', '');"
	scannedStatus    = "ptuiCB('67','0','','0','二维码认证中。(1006641921)', '');"
	expiredStatus    = "ptuiCB('65','0','','0','二维码已失效。(4171256442)', '');"
	authorizedStatus = "ptuiCB('0','0','http://ptlogin4.web2.qq.com/check_sig?pttype=1&uin=12345&service=ptqrlogin','0','登录成功！', 'Robot');"
	redirectURL      = "http://ptlogin4.web2.qq.com/check_sig?pttype=1&uin=12345&service=ptqrlogin"
)

type loginFixture struct {
	api       *mocks.MockLoginAPI
	presenter *mocks.MockQRPresenter
	sessions  *mocks.MockSessionRepository
	clock     *fakeClock
	metrics   *recordingMetrics
	states    []domain.AuthState
	service   *LoginService
}

func newLoginFixture(t *testing.T) *loginFixture {
	t.Helper()

	f := &loginFixture{
		api:       mocks.NewMockLoginAPI(t),
		presenter: mocks.NewMockQRPresenter(t),
		sessions:  mocks.NewMockSessionRepository(t),
		clock:     newFakeClock(),
		metrics:   newRecordingMetrics(),
	}
	f.service = NewLoginService(f.api, f.presenter, f.sessions, LoginOptions{
		RunID:   "run1",
		Clock:   f.clock,
		Logger:  discardLogger(),
		Metrics: f.metrics,
		Observer: func(state domain.AuthState) {
			f.states = append(f.states, state)
		},
	})

	return f
}

func (f *loginFixture) expectHandshakeAfterAuthorization(cookies []domain.Cookie) {
	f.api.EXPECT().FetchPtwebqq(mockAnyContext(), redirectURL).Return("pt-token", int64(12345), nil).Once()
	f.api.EXPECT().FetchVFWebQQ(mockAnyContext(), "pt-token").Return("vf-token", nil).Once()
	f.api.EXPECT().FetchUinAndPsessionid(mockAnyContext(), "pt-token").Return(int64(2_847_312_001), "psid", nil).Once()
	f.api.EXPECT().TestLogin(mockAnyContext(), mock.MatchedBy(func(session domain.Session) bool {
		return session.Hash == domain.ComputeHash(2_847_312_001, "pt-token") && session.PSessionID == "psid"
	})).Return(nil).Once()
	f.api.EXPECT().ExportCookies().Return(cookies).Once()
}

func TestInteractiveLoginReissuesExpiredQRCode(t *testing.T) {
	f := newLoginFixture(t)
	cookies := []domain.Cookie{{URL: "http://qq.com", Name: "ptwebqq", Value: "pt-token"}}

	f.api.EXPECT().ResetCookies().Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(nil).Once()
	f.api.EXPECT().FetchQRCode(mockAnyContext()).Return([]byte("png-1"), nil).Once()
	f.api.EXPECT().FetchQRCode(mockAnyContext()).Return([]byte("png-2"), nil).Once()
	f.presenter.EXPECT().Present(mockAnyContext(), domain.QRCode{Seq: 1, Name: "qrcode-run1-1.png", PNG: []byte("png-1")}).Return(nil).Once()
	f.presenter.EXPECT().Present(mockAnyContext(), domain.QRCode{Seq: 2, Name: "qrcode-run1-1.png", PNG: []byte("png-2")}).Return(nil).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(pendingStatus, nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(expiredStatus, nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(scannedStatus, nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(authorizedStatus, nil).Once()
	f.expectHandshakeAfterAuthorization(cookies)
	f.sessions.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(session domain.Session) bool {
		return session.QQ == 12345 && len(session.Cookies) == 1
	})).Return(nil).Once()

	session, err := f.service.InteractiveLogin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12345), session.QQ)
	assert.Equal(t, "Robot", session.Nick)
	assert.Equal(t, "pt-token", session.PTWebQQ)
	assert.Equal(t, "vf-token", session.VFWebQQ)
	assert.Equal(t, int64(2_847_312_001), session.UIN)
	assert.Equal(t, "psid", session.PSessionID)
	assert.Equal(t, domain.ClientID, session.ClientID)
	assert.Equal(t, domain.InitialMsgID, session.MsgID)
	assert.Equal(t, cookies, session.Cookies)
	assert.Equal(t, f.clock.Now(), session.CreatedAt)

	assert.Equal(t, []domain.AuthState{
		domain.AuthStatePendingScan,
		domain.AuthStateExpired,
		domain.AuthStatePendingScan,
		domain.AuthStateScanned,
		domain.AuthStateAuthorized,
	}, f.states)
	assert.Equal(t, domain.AuthStateAuthorized, f.service.State())
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second, 3 * time.Second, 3 * time.Second}, f.clock.Sleeps())
}

func TestInteractiveLoginFailsOnUnknownStatus(t *testing.T) {
	f := newLoginFixture(t)

	f.api.EXPECT().ResetCookies().Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(nil).Once()
	f.api.EXPECT().FetchQRCode(mockAnyContext()).Return([]byte("png"), nil).Once()
	f.presenter.EXPECT().Present(mockAnyContext(), mock.Anything).Return(nil).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(scannedStatus, nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return("ptuiCB('10005','0','','0','系统繁忙', '');", nil).Once()

	_, err := f.service.InteractiveLogin(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProtocol)
	assert.True(t, domain.IsFatal(err))
	assert.Equal(t, domain.AuthStateFailed, f.service.State())
	assert.Equal(t, domain.AuthStateFailed, f.states[len(f.states)-1])
}

func TestInteractiveLoginVerificationDenialFails(t *testing.T) {
	f := newLoginFixture(t)
	denied := &domain.RequestError{URL: "http://d1.web2.qq.com/channel/get_online_buddies2", DeniedErrors: 1, Err: domain.ErrDenied}

	f.api.EXPECT().ResetCookies().Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(nil).Once()
	f.api.EXPECT().FetchQRCode(mockAnyContext()).Return([]byte("png"), nil).Once()
	f.presenter.EXPECT().Present(mockAnyContext(), mock.Anything).Return(nil).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(authorizedStatus, nil).Once()
	f.api.EXPECT().FetchPtwebqq(mockAnyContext(), redirectURL).Return("pt-token", int64(12345), nil).Once()
	f.api.EXPECT().FetchVFWebQQ(mockAnyContext(), "pt-token").Return("vf-token", nil).Once()
	f.api.EXPECT().FetchUinAndPsessionid(mockAnyContext(), "pt-token").Return(int64(12345), "psid", nil).Once()
	f.api.EXPECT().TestLogin(mockAnyContext(), mock.Anything).Return(denied).Once()

	_, err := f.service.InteractiveLogin(context.Background())
	require.Error(t, err)

	var requestErr *domain.RequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, 1, requestErr.DeniedErrors)
	assert.Equal(t, domain.AuthStateFailed, f.service.State())
}

func TestInteractiveLoginPresenterErrorAbortsAndCloses(t *testing.T) {
	f := newLoginFixture(t)
	presentErr := errors.New("smtp unavailable")

	f.api.EXPECT().ResetCookies().Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(nil).Once()
	f.api.EXPECT().FetchQRCode(mockAnyContext()).Return([]byte("png"), nil).Once()
	f.presenter.EXPECT().Present(mockAnyContext(), mock.Anything).Return(presentErr).Once()
	f.presenter.EXPECT().Close().Return(errors.New("already closed")).Once()

	_, err := f.service.InteractiveLogin(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, presentErr)
	assert.Empty(t, f.clock.Sleeps())
}

func TestInteractiveLoginSaveFailureOnlyWarns(t *testing.T) {
	f := newLoginFixture(t)

	f.api.EXPECT().ResetCookies().Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(nil).Once()
	f.api.EXPECT().FetchQRCode(mockAnyContext()).Return([]byte("png"), nil).Once()
	f.presenter.EXPECT().Present(mockAnyContext(), mock.Anything).Return(nil).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(authorizedStatus, nil).Once()
	f.expectHandshakeAfterAuthorization(nil)
	f.sessions.EXPECT().Save(mockAnyContext(), mock.Anything).Return(errors.New("disk full")).Once()

	session, err := f.service.InteractiveLogin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12345), session.QQ)
}

func TestLoginUsesStoredSession(t *testing.T) {
	f := newLoginFixture(t)
	stored := domain.NewSession()
	stored.QQ = 12345
	stored.PSessionID = "stored-psid"
	stored.Cookies = []domain.Cookie{{URL: "http://qq.com", Name: "ptwebqq", Value: "pt"}}

	f.sessions.EXPECT().GetByAccount(mockAnyContext(), int64(12345)).Return(stored, nil).Once()
	f.api.EXPECT().ImportCookies(stored.Cookies).Return(nil).Once()
	f.api.EXPECT().TestLogin(mockAnyContext(), stored).Return(nil).Once()

	session, err := f.service.Login(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, stored, session)
	assert.Equal(t, []domain.AuthState{domain.AuthStateAuthorized}, f.states)
}

func TestLoginFallsBackToQRCodeOnce(t *testing.T) {
	f := newLoginFixture(t)
	stored := domain.NewSession()
	stored.QQ = 12345
	prepareErr := &domain.RequestError{URL: "https://ui.ptlogin2.qq.com/cgi-bin/login", NetworkErrors: 7, Err: domain.ErrNetwork}

	var calls []string
	record := func(name string) func() { return func() { calls = append(calls, name) } }

	f.sessions.EXPECT().GetByAccount(mockAnyContext(), int64(12345)).Return(stored, nil).Once()
	f.api.EXPECT().ImportCookies(mock.Anything).Run(func([]domain.Cookie) { record("import")() }).Return(nil).Once()
	f.api.EXPECT().TestLogin(mockAnyContext(), stored).Return(&domain.RequestError{Err: domain.ErrDenied}).Once()
	f.api.EXPECT().ResetCookies().Run(record("reset")).Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Run(func(context.Context) { record("prepare")() }).Return(prepareErr).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()

	_, err := f.service.Login(context.Background(), 12345)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, domain.AuthStateFailed, f.service.State())
	assert.Equal(t, []string{"import", "reset", "prepare"}, calls)
}

func TestInteractiveLoginResetFailureAborts(t *testing.T) {
	f := newLoginFixture(t)

	f.api.EXPECT().ResetCookies().Return(errors.New("jar")).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()

	_, err := f.service.InteractiveLogin(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset cookies")
	f.api.AssertNotCalled(t, "PrepareLogin", mock.Anything)
}

func TestInteractiveLoginNamesQRCodePerHandshake(t *testing.T) {
	f := newLoginFixture(t)
	var names []string

	f.api.EXPECT().ResetCookies().Return(nil).Twice()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(nil).Twice()
	f.api.EXPECT().FetchQRCode(mockAnyContext()).Return([]byte("png"), nil).Times(3)
	f.presenter.EXPECT().Present(mockAnyContext(), mock.Anything).Run(func(_ context.Context, code domain.QRCode) {
		names = append(names, code.Name)
	}).Return(nil).Times(3)
	f.presenter.EXPECT().Close().Return(nil).Twice()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return(expiredStatus, nil).Once()
	f.api.EXPECT().FetchAuthStatus(mockAnyContext()).Return("ptuiCB('10005','0','','0','unknown', '');", nil).Twice()

	_, err := f.service.InteractiveLogin(context.Background())
	require.Error(t, err)
	_, err = f.service.InteractiveLogin(context.Background())
	require.Error(t, err)

	assert.Equal(t, []string{"qrcode-run1-1.png", "qrcode-run1-1.png", "qrcode-run1-2.png"}, names)
}

func TestLoginWithoutAccountSkipsStoredSession(t *testing.T) {
	f := newLoginFixture(t)

	f.api.EXPECT().ResetCookies().Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(errors.New("boom")).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()

	_, err := f.service.Login(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare login")
}

func TestLoginMissingStoredSessionFallsBack(t *testing.T) {
	f := newLoginFixture(t)

	f.sessions.EXPECT().GetByAccount(mockAnyContext(), int64(777)).Return(domain.Session{}, domain.ErrSessionNotFound).Once()
	f.api.EXPECT().ResetCookies().Return(nil).Once()
	f.api.EXPECT().PrepareLogin(mockAnyContext()).Return(errors.New("offline")).Once()
	f.presenter.EXPECT().Close().Return(nil).Once()

	_, err := f.service.Login(context.Background(), 777)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
}
