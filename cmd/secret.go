package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	secretCmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage secrets referenced from the configuration, such as email.password_ref",
	}

	secretCmd.AddCommand(newSecretSetCmd(app), newSecretRemoveCmd(app))
	return secretCmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var key string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a secret in pass, or in the secrets directory when pass is unavailable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.SetSecret(cmd.Context(), key, value); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "secret %s stored\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Secret key")
	cmd.Flags().StringVar(&value, "value", "", "Secret value")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a stored secret",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.RemoveSecret(cmd.Context(), key); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "secret %s removed\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Secret key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
