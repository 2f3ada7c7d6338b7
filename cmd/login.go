package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/qqbot-cli/internal/application"
	"github.com/bnema/qqbot-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var qq int64
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session for later runs",
		Long:  "Log in with the stored session of --qq when there is one, otherwise by QR code, and store the resulting session.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := notifyContext(cmd.Context())
			defer stop()

			_, session, err := app.login(ctx, cmd.ErrOrStderr(), qq, !noSpinner)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %d\n", session.QQ)
			return err
		},
	}

	addLoginFlags(cmd, &qq, &noSpinner)
	return cmd
}

func addLoginFlags(cmd *cobra.Command, qq *int64, noSpinner *bool) {
	cmd.Flags().Int64Var(qq, "qq", 0, "QQ number whose stored session should be reused")
	cmd.Flags().BoolVar(noSpinner, "no-spinner", false, "Do not show the login progress spinner")
}

// login builds a runtime and logs it in. The runtime is nil when wiring
// failed.
func (a *app) login(ctx context.Context, output io.Writer, qq int64, withSpinner bool) (*botRuntime, domain.Session, error) {
	var (
		rt      *botRuntime
		session domain.Session
	)

	login := func(ctx context.Context, observe application.AuthObserver) error {
		var err error
		rt, err = a.newRuntime(ctx, observe)
		if err != nil {
			return err
		}
		session, err = rt.login.Login(ctx, qq)
		return err
	}

	var err error
	if withSpinner {
		err = a.withQuietLogs(func() error {
			return runLoginSpinner(ctx, output, login)
		})
	} else {
		err = login(ctx, nil)
	}
	if err != nil {
		return nil, domain.Session{}, fmt.Errorf("login: %w", err)
	}

	return rt, session, nil
}
