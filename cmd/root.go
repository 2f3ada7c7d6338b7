package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "qqbot",
		Short:         "QQBot: a WebQQ relay bot operated from another QQ account",
		Long:          "qqbot logs in to SmartQQ by QR code, keeps the session between runs and relays messages on behalf of whoever sends it commands such as -help, -list and -send.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level regardless of the configured log_level")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.configureLogger(cmd.ErrOrStderr(), debug)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRunCmd(app),
		newContactsCmd(app),
		newSessionCmd(app),
		newSecretCmd(app),
	)

	return rootCmd
}
