package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/bnema/qqbot-cli/internal/adapters/metrics"
	"github.com/bnema/qqbot-cli/internal/adapters/qr"
	contactsrender "github.com/bnema/qqbot-cli/internal/adapters/render/contacts"
	tomlrepo "github.com/bnema/qqbot-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/qqbot-cli/internal/adapters/store/chain"
	filestore "github.com/bnema/qqbot-cli/internal/adapters/store/file"
	"github.com/bnema/qqbot-cli/internal/adapters/webqq"
	"github.com/bnema/qqbot-cli/internal/application"
	"github.com/bnema/qqbot-cli/internal/config"
	"github.com/bnema/qqbot-cli/internal/ports"
)

type app struct {
	cfg            config.Config
	service        *application.Service
	sessions       ports.SessionRepository
	sessionStore   *filestore.Store
	metrics        *metrics.Recorder
	logger         *slog.Logger
	logLevel       *slog.LevelVar
	renderContacts func(application.DirectorySummary, contactsrender.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	sessionStore := filestore.NewStore(cfg.SessionsPath)
	repo, err := tomlrepo.NewRepository(sessionStore)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:            cfg,
		service:        application.NewService(repo, secretStore),
		sessions:       repo,
		sessionStore:   sessionStore,
		metrics:        metrics.NewRecorder(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		logLevel:       new(slog.LevelVar),
		renderContacts: contactsrender.Render,
	}, nil
}

func (a *app) configureLogger(w io.Writer, debug bool) {
	level := a.cfg.LogLevel
	if debug {
		level = slog.LevelDebug
	}
	a.logLevel.Set(level)
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: a.logLevel}))
}

// withQuietLogs runs fn with only warnings and errors logged, for when fn
// redraws the terminal that the logger writes to.
func (a *app) withQuietLogs(fn func() error) error {
	previous := a.logLevel.Level()
	if previous < slog.LevelWarn {
		a.logLevel.Set(slog.LevelWarn)
		defer a.logLevel.Set(previous)
	}
	return fn()
}

// botRuntime is everything one login attempt and the bot that follows it
// share. Every runtime gets a fresh cookie jar.
type botRuntime struct {
	client      *webqq.Client
	login       *application.LoginService
	directories *application.DirectoryService
	logger      *slog.Logger
}

func (a *app) newRuntime(ctx context.Context, observer application.AuthObserver) (*botRuntime, error) {
	runID := uuid.NewString()
	logger := a.logger.With("run", runID)

	client, err := webqq.NewClient(webqq.Options{Logger: logger, Metrics: a.metrics})
	if err != nil {
		return nil, fmt.Errorf("wire webqq client: %w", err)
	}

	presenter, err := a.newPresenter(ctx, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("runtime wired", "sessions", a.sessionStore.Root(), "data_dir", a.cfg.DataDir)

	return &botRuntime{
		client: client,
		login: application.NewLoginService(client, presenter, a.sessions, application.LoginOptions{
			RunID:    runID,
			Observer: observer,
			Logger:   logger,
			Metrics:  a.metrics,
		}),
		directories: application.NewDirectoryService(client, logger, a.metrics),
		logger:      logger,
	}, nil
}

// newPresenter always writes the QR image under the data directory. It opens
// the image locally only when no web server is configured to serve it.
func (a *app) newPresenter(ctx context.Context, logger *slog.Logger) (ports.QRPresenter, error) {
	presenters := qr.Multi{qr.NewFilePresenter(a.cfg.DataDir, !a.cfg.HTTPServer.Enabled(), logger)}

	if a.cfg.HTTPServer.Enabled() {
		presenters = append(presenters, qr.NewWebPresenter(a.cfg.HTTPServer.Addr(), a.cfg.HTTPServer.CName, logger))
	}

	if a.cfg.Email.Enabled() {
		password, err := a.service.ResolvePassword(ctx, a.cfg.Email.Password, a.cfg.Email.PasswordRef)
		if err != nil {
			return nil, fmt.Errorf("resolve mail password: %w", err)
		}
		presenters = append(presenters, qr.NewMailPresenter(qr.MailConfig{
			Account:  a.cfg.Email.Account,
			Name:     a.cfg.Email.Name,
			SMTPAddr: a.cfg.Email.SMTPAddr,
			IMAPAddr: a.cfg.Email.IMAPAddr,
			Password: password,
		}, logger))
	}

	return presenters, nil
}

// serveMetrics runs the metrics endpoint until ctx is done when one is
// configured.
func (a *app) serveMetrics(ctx context.Context) {
	if a.cfg.MetricsListen == "" {
		return
	}

	go func() {
		if err := metrics.Serve(ctx, a.cfg.MetricsListen, a.metrics, a.logger); err != nil {
			a.logger.Warn("metrics endpoint stopped", "error", err)
		}
	}()
}
