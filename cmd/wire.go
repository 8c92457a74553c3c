package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bnema/owdragon-cli/internal/adapters/credentials/chain"
	"github.com/bnema/owdragon-cli/internal/adapters/credentials/linefile"
	tomlsource "github.com/bnema/owdragon-cli/internal/adapters/credentials/toml"
	"github.com/bnema/owdragon-cli/internal/adapters/game"
	statusadapter "github.com/bnema/owdragon-cli/internal/adapters/render/status"
	secretchain "github.com/bnema/owdragon-cli/internal/adapters/secrets/chain"
	"github.com/bnema/owdragon-cli/internal/application"
	"github.com/bnema/owdragon-cli/internal/config"
	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/logging"
	"github.com/bnema/owdragon-cli/internal/ports"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v              *viper.Viper
	cfg            config.Config
	stderr         io.Writer
	logger         *log.Logger
	client         ports.GameClient
	credentials    ports.CredentialSource
	statusRenderer func([]application.AccountStatus, statusadapter.RenderOptions) (string, error)
	reportRenderer func(application.FleetResult, statusadapter.RenderOptions) (string, error)
	clock          ports.Clock
	now            func() time.Time
}

func newApp(v *viper.Viper) *app {
	return &app{
		v:              v,
		statusRenderer: statusadapter.Render,
		reportRenderer: statusadapter.RenderReports,
		clock:          ports.SystemClock{},
		now:            time.Now,
	}
}

// wire loads configuration once flags are parsed and builds the adapters.
func (a *app) wire(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	a.stderr = &syncWriter{w: cmd.ErrOrStderr()}
	a.logger = logging.New(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if cfg.File != "" {
		a.logger.Debug().Str("file", cfg.File).Msg("config loaded")
	}

	client, err := game.NewClient(game.Options{
		API: game.API{
			BaseURL:        cfg.API.BaseURL,
			Origin:         cfg.API.Origin,
			Referer:        cfg.API.Referer,
			MissionReferer: cfg.API.MissionReferer,
			UserAgent:      cfg.API.UserAgent,
		},
		RequestTimeout: cfg.API.RequestTimeout,
		AuthTimeout:    cfg.API.AuthTimeout,
		Logger:         a.logger,
	})
	if err != nil {
		return fmt.Errorf("wire game client: %w", err)
	}
	a.client = client

	sources := []ports.CredentialSource{
		linefile.NewSource(cfg.Accounts.InitDataFile, domain.CredentialInitData, a.logger),
		linefile.NewSource(cfg.Accounts.TokenFile, domain.CredentialToken, a.logger),
	}
	if cfg.Accounts.File != "" {
		secrets, err := secretchain.NewPassFirstWithFileFallback(cfg.Accounts.SecretsDir)
		if err != nil {
			return fmt.Errorf("wire secret store chain: %w", err)
		}
		sources = append(sources, tomlsource.NewSource(cfg.Accounts.File, secrets))
	}
	credentials, err := chain.NewSource(sources...)
	if err != nil {
		return fmt.Errorf("wire credential sources: %w", err)
	}
	a.credentials = credentials

	return nil
}

func (a *app) schedulerOptions() application.SchedulerOptions {
	return application.SchedulerOptions{
		FeedInterval: a.cfg.Schedule.FeedInterval,
		PollInterval: a.cfg.Schedule.PollInterval,
		Missions: application.MissionOptions{
			StepDelay:   a.cfg.Missions.StepDelay,
			Placeholder: a.cfg.Missions.Placeholder,
			LoginTitle:  a.cfg.Missions.LoginTitle,
		},
	}
}

// syncWriter serializes writes from account goroutines, the logger and the
// spinner sharing one stderr.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
