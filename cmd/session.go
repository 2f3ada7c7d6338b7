package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage stored login sessions",
	}

	sessionCmd.AddCommand(newSessionShowCmd(app), newSessionRemoveCmd(app))
	return sessionCmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	var qq int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored session of an account without its credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.service.GetSession(cmd.Context(), qq)
			if err != nil {
				return err
			}

			created := "unknown"
			if !session.CreatedAt.IsZero() {
				created = session.CreatedAt.UTC().Format(time.RFC3339)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "qq: %d\nnick: %s\nuin: %d\ncookies: %d\ncreated: %s\n",
				session.QQ, session.Nick, session.UIN, len(session.Cookies), created)
			return err
		},
	}

	cmd.Flags().Int64Var(&qq, "qq", 0, "QQ number of the stored session")
	_ = cmd.MarkFlagRequired("qq")

	return cmd
}

func newSessionRemoveCmd(app *app) *cobra.Command {
	var qq int64

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored session of an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.RemoveSession(cmd.Context(), qq); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "session %d removed\n", qq)
			return err
		},
	}

	cmd.Flags().Int64Var(&qq, "qq", 0, "QQ number of the stored session")
	_ = cmd.MarkFlagRequired("qq")

	return cmd
}
