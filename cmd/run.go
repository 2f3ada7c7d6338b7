package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/qqbot-cli/internal/application"
	"github.com/bnema/qqbot-cli/internal/domain"
)

func newRunCmd(app *app) *cobra.Command {
	var qq int64
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Log in and answer commands until told to stop",
		Long:  "Log in, load the contact directory and answer -help, -list, -send, -refetch and -stop sent to the bot account from another one.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := notifyContext(cmd.Context())
			defer stop()

			app.serveMetrics(ctx)

			rt, session, err := app.login(ctx, cmd.ErrOrStderr(), qq, !noSpinner)
			if err != nil {
				return err
			}

			session, directory, err := loadDirectory(ctx, rt, session)
			if err != nil {
				return err
			}

			bot := application.NewBot(session, directory, rt.client, rt.directories,
				application.NewSender(rt.client, nil),
				application.BotOptions{
					QueueSize: app.cfg.QueueSize,
					Logger:    rt.logger,
					Metrics:   app.metrics,
				})

			return bot.Run(ctx)
		},
	}

	addLoginFlags(cmd, &qq, &noSpinner)
	return cmd
}

func loadDirectory(ctx context.Context, rt *botRuntime, session domain.Session) (domain.Session, *domain.Directory, error) {
	directory, err := rt.directories.Fetch(ctx, session)
	if err != nil {
		return session, nil, fmt.Errorf("fetch contacts: %w", err)
	}

	nick, err := rt.directories.FetchNick(ctx, session)
	if err != nil {
		return session, nil, fmt.Errorf("fetch nick: %w", err)
	}
	session.Nick = nick

	return session, directory, nil
}

func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
