package cmd

import (
	"errors"
	"fmt"

	statusadapter "github.com/bnema/owdragon-cli/internal/adapters/render/status"
	"github.com/bnema/owdragon-cli/internal/application"
	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

var errAllAccountsFailed = errors.New("every account failed")

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Feed and clear missions for every account until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := app.credentials.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load credentials: %w", err)
			}

			opts := app.schedulerOptions()
			factory := func(credential domain.Credential, logger *log.Logger) *application.Scheduler {
				return application.NewScheduler(credential, app.client, app.clock, logger, opts)
			}

			result := application.NewFleet(credentials, factory, app.logger).Run(cmd.Context())

			rendered, err := app.reportRenderer(result, statusadapter.RenderOptions{
				Now:          app.now(),
				FeedInterval: opts.FeedInterval,
			})
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			if failed := result.Failed(); failed > 0 && failed == len(result.Reports) {
				return fmt.Errorf("%w: %d of %d", errAllAccountsFailed, failed, len(result.Reports))
			}
			return nil
		},
	}
}
