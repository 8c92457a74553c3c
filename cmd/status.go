package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/owdragon-cli/internal/adapters/render/status"
	"github.com/bnema/owdragon-cli/internal/application"
	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/spf13/cobra"
)

type statusJSON struct {
	ID      domain.AccountID      `json:"id"`
	Kind    domain.CredentialKind `json:"kind"`
	Source  string                `json:"source,omitempty"`
	Address string                `json:"address,omitempty"`
	Power   domain.Amount         `json:"power,omitempty"`
	Balance domain.Amount         `json:"balance,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Authenticate every account once and show its address, power and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := app.credentials.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load credentials: %w", err)
			}

			svc := application.NewStatusService(app.client, app.logger)
			var statuses []application.AccountStatus
			check := func(ctx context.Context, progress application.StatusProgress) error {
				var err error
				statuses, err = svc.CheckWithProgress(ctx, credentials, progress)
				return err
			}

			if asJSON {
				err = check(cmd.Context(), nil)
			} else {
				err = runStatusSpinner(cmd.Context(), app.stderr, len(credentials), check)
			}
			if err != nil {
				return err
			}

			return writeStatusesOutput(cmd, app, statuses, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeStatusesOutput(cmd *cobra.Command, app *app, statuses []application.AccountStatus, asJSON bool) error {
	if asJSON {
		out := make([]statusJSON, 0, len(statuses))
		for _, status := range statuses {
			entry := statusJSON{
				ID:      status.ID,
				Kind:    status.Kind,
				Source:  status.Source,
				Address: status.Address,
				Power:   status.Power,
				Balance: status.Balance,
			}
			if status.Err != nil {
				entry.Error = status.Err.Error()
			}
			out = append(out, entry)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.statusRenderer(statuses, statusadapter.RenderOptions{
		Now:          app.now(),
		FeedInterval: app.cfg.Schedule.FeedInterval,
	})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
