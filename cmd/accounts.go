package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Inspect configured accounts",
	}

	cmd.AddCommand(
		newAccountsListCmd(app),
	)

	return cmd
}

func newAccountsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List loaded credentials with their values masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := app.credentials.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load credentials: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "accounts: %d\n", len(credentials))
			for _, credential := range credentials {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", credential.ID, credential.Kind, credential.Source, credential.Masked())
			}

			return nil
		},
	}
}
