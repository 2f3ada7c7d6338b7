package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	contactsrender "github.com/bnema/qqbot-cli/internal/adapters/render/contacts"
	"github.com/bnema/qqbot-cli/internal/application"
	"github.com/bnema/qqbot-cli/internal/domain"
)

func newContactsCmd(app *app) *cobra.Command {
	var qq int64
	var noSpinner bool
	var categories []string

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Log in and print the contact directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := contactsRenderOptions(categories)
			if err != nil {
				return err
			}

			ctx, stop := notifyContext(cmd.Context())
			defer stop()

			rt, session, err := app.login(ctx, cmd.ErrOrStderr(), qq, !noSpinner)
			if err != nil {
				return err
			}

			session, directory, err := loadDirectory(ctx, rt, session)
			if err != nil {
				return err
			}

			rendered, err := app.renderContacts(application.DirectorySummary{
				Nick:      session.Nick,
				QQ:        session.QQ,
				Directory: directory,
			}, opts)
			if err != nil {
				return fmt.Errorf("render contacts: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addLoginFlags(cmd, &qq, &noSpinner)
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Only print these categories: buddy, group, discuss")
	return cmd
}

func contactsRenderOptions(raw []string) (contactsrender.RenderOptions, error) {
	var opts contactsrender.RenderOptions
	for _, value := range raw {
		category, err := domain.ParseCategory(value)
		if err != nil {
			return contactsrender.RenderOptions{}, err
		}
		opts.Categories = append(opts.Categories, category)
	}
	return opts, nil
}
