package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

const defaultAuthPollInterval = 3 * time.Second

// AuthObserver receives every login state change.
type AuthObserver func(state domain.AuthState)

type LoginOptions struct {
	// RunID disambiguates QR image names between processes.
	RunID        string
	PollInterval time.Duration
	Observer     AuthObserver
	Clock        ports.Clock
	Logger       *slog.Logger
	Metrics      ports.Metrics
}

// LoginService drives the QR code handshake and the stored session shortcut.
// It is not safe for concurrent use.
type LoginService struct {
	api       ports.LoginAPI
	presenter ports.QRPresenter
	sessions  ports.SessionRepository

	runID        string
	pollInterval time.Duration
	observer     AuthObserver
	clock        ports.Clock
	logger       *slog.Logger
	metrics      ports.Metrics

	state      domain.AuthState
	seq        int
	handshakes int
	qrName     string
}

func NewLoginService(api ports.LoginAPI, presenter ports.QRPresenter, sessions ports.SessionRepository, opts LoginOptions) *LoginService {
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultAuthPollInterval
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = ports.NopMetrics{}
	}
	if opts.RunID == "" {
		opts.RunID = "run"
	}

	return &LoginService{
		api:          api,
		presenter:    presenter,
		sessions:     sessions,
		runID:        opts.RunID,
		pollInterval: opts.PollInterval,
		observer:     opts.Observer,
		clock:        opts.Clock,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		state:        domain.AuthStateNotStarted,
	}
}

func (s *LoginService) State() domain.AuthState {
	return s.state
}

// Login restores the stored session of qq when qq is positive and falls back
// to the QR code handshake once if that session is missing or rejected.
func (s *LoginService) Login(ctx context.Context, qq int64) (domain.Session, error) {
	if qq > 0 {
		session, err := s.AutoLogin(ctx, qq)
		if err == nil {
			return session, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Session{}, ctxErr
		}
		s.logger.Warn("stored session login failed, falling back to QR code login", "qq", qq, "error", err)
	}

	return s.InteractiveLogin(ctx)
}

// AutoLogin reuses a stored session and only runs the verification request.
func (s *LoginService) AutoLogin(ctx context.Context, qq int64) (domain.Session, error) {
	if s.sessions == nil {
		return domain.Session{}, fmt.Errorf("load session: %w", domain.ErrSessionNotFound)
	}

	session, err := s.sessions.GetByAccount(ctx, qq)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if err := s.api.ImportCookies(session.Cookies); err != nil {
		return domain.Session{}, fmt.Errorf("restore cookies: %w", err)
	}
	if err := s.api.TestLogin(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("verify stored session: %w", err)
	}

	s.logger.Info("logged in with stored session", "qq", session.QQ, "nick", session.Nick)
	s.notify(domain.AuthStateAuthorized)

	return session, nil
}

// InteractiveLogin runs the full handshake: QR code issuance and polling,
// token exchange and a verification request that is not retried on denial.
func (s *LoginService) InteractiveLogin(ctx context.Context) (session domain.Session, err error) {
	defer func() {
		if closeErr := s.presenter.Close(); closeErr != nil {
			s.logger.Warn("close QR code presenter", "error", closeErr)
		}
		if err != nil {
			s.notify(domain.AuthStateFailed)
		}
	}()

	s.notify(domain.AuthStateNotStarted)

	// A failed stored session leaves its cookies in the jar.
	if err := s.api.ResetCookies(); err != nil {
		return domain.Session{}, fmt.Errorf("reset cookies: %w", err)
	}

	s.handshakes++
	s.qrName = fmt.Sprintf("qrcode-%s-%d.png", s.runID, s.handshakes)

	if err := s.api.PrepareLogin(ctx); err != nil {
		return domain.Session{}, fmt.Errorf("prepare login: %w", err)
	}

	auth, err := s.waitForAuthorization(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	ptwebqq, qq, err := s.api.FetchPtwebqq(ctx, auth.RedirectURL)
	if err != nil {
		return domain.Session{}, fmt.Errorf("fetch ptwebqq: %w", err)
	}
	vfwebqq, err := s.api.FetchVFWebQQ(ctx, ptwebqq)
	if err != nil {
		return domain.Session{}, fmt.Errorf("fetch vfwebqq: %w", err)
	}
	uin, psessionid, err := s.api.FetchUinAndPsessionid(ctx, ptwebqq)
	if err != nil {
		return domain.Session{}, fmt.Errorf("fetch uin and psessionid: %w", err)
	}

	session = domain.NewSession()
	session.QQ = qq
	session.Nick = auth.Nick
	session.PTWebQQ = ptwebqq
	session.VFWebQQ = vfwebqq
	session.UIN = uin
	session.PSessionID = psessionid
	session.Hash = domain.ComputeHash(uint32(uin), ptwebqq)

	if err := s.api.TestLogin(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("verify login: %w", err)
	}

	session.Cookies = s.api.ExportCookies()
	session.CreatedAt = s.clock.Now().UTC()

	if s.sessions != nil {
		if err := s.sessions.Save(ctx, session); err != nil {
			s.logger.Warn("save session", "qq", session.QQ, "error", err)
		}
	}

	s.logger.Info("logged in", "qq", session.QQ, "nick", session.Nick)
	s.notify(domain.AuthStateAuthorized)

	return session, nil
}

func (s *LoginService) waitForAuthorization(ctx context.Context) (domain.Authorization, error) {
	if err := s.issueQRCode(ctx); err != nil {
		return domain.Authorization{}, err
	}

	for {
		if err := s.clock.Sleep(ctx, s.pollInterval); err != nil {
			return domain.Authorization{}, err
		}

		text, err := s.api.FetchAuthStatus(ctx)
		if err != nil {
			return domain.Authorization{}, fmt.Errorf("fetch QR code status: %w", err)
		}

		switch state := domain.ClassifyAuthStatus(text); state {
		case domain.AuthStateAuthorized:
			auth, err := domain.ParseAuthorization(text)
			if err != nil {
				return domain.Authorization{}, fmt.Errorf("parse authorization: %w", err)
			}
			return auth, nil
		case domain.AuthStateExpired:
			s.notify(domain.AuthStateExpired)
			if err := s.issueQRCode(ctx); err != nil {
				return domain.Authorization{}, err
			}
		case domain.AuthStatePendingScan, domain.AuthStateScanned:
			s.notify(state)
		default:
			return domain.Authorization{}, fmt.Errorf("%w: QR code status %q", domain.ErrProtocol, text)
		}
	}
}

func (s *LoginService) issueQRCode(ctx context.Context) error {
	png, err := s.api.FetchQRCode(ctx)
	if err != nil {
		return fmt.Errorf("fetch QR code: %w", err)
	}

	s.seq++
	code := domain.QRCode{
		Seq:  s.seq,
		Name: s.qrName,
		PNG:  png,
	}
	if err := s.presenter.Present(ctx, code); err != nil {
		return fmt.Errorf("present QR code: %w", err)
	}

	s.logger.Debug("QR code issued", "name", code.Name, "bytes", len(png))
	s.notify(domain.AuthStatePendingScan)

	return nil
}

func (s *LoginService) notify(state domain.AuthState) {
	if state == s.state {
		return
	}
	s.state = state

	s.metrics.ObserveAuthState(string(state))
	s.logger.Info(state.Label(), "state", string(state))
	if s.observer != nil {
		s.observer(state)
	}
}
