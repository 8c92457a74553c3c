package application

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/logging"
	"github.com/google/uuid"
	"github.com/phuslu/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// SchedulerFactory builds the scheduler for one credential. logger already
// carries the run and account fields.
type SchedulerFactory func(credential domain.Credential, logger *log.Logger) *Scheduler

type FleetResult struct {
	RunID   string
	Reports []Report
}

// Failed counts accounts that stopped with an error.
func (r FleetResult) Failed() int {
	failed := 0
	for _, report := range r.Reports {
		if report.Err != nil {
			failed++
		}
	}
	return failed
}

type Fleet struct {
	credentials []domain.Credential
	factory     SchedulerFactory
	logger      *log.Logger
}

func NewFleet(credentials []domain.Credential, factory SchedulerFactory, logger *log.Logger) *Fleet {
	if logger == nil {
		logger = &log.DefaultLogger
	}

	return &Fleet{
		credentials: slices.Clone(credentials),
		factory:     factory,
		logger:      logger,
	}
}

// Run starts one scheduler per credential and blocks until every one of them
// has stopped. Canceling ctx stops them all.
func (f *Fleet) Run(ctx context.Context) FleetResult {
	result := FleetResult{RunID: uuid.NewString()}
	runLogger := logging.With(f.logger, "run", result.RunID)

	if len(f.credentials) == 0 {
		runLogger.Warn().Msg("no accounts loaded")
		result.Reports = []Report{}
		return result
	}

	runLogger.Info().Int("accounts", len(f.credentials)).Msg("starting fleet")

	reports := make([]Report, len(f.credentials))
	var wg conc.WaitGroup
	for i, credential := range f.credentials {
		wg.Go(func() {
			reports[i] = f.runOne(ctx, credential, logging.With(runLogger, "account", string(credential.ID)))
		})
	}
	wg.Wait()

	slices.SortStableFunc(reports, func(a, b Report) int {
		return cmp.Compare(a.AccountID, b.AccountID)
	})
	result.Reports = reports

	runLogger.Info().Int("accounts", len(reports)).Int("failed", result.Failed()).Msg("fleet stopped")
	return result
}

func (f *Fleet) runOne(ctx context.Context, credential domain.Credential, logger *log.Logger) Report {
	report := Report{AccountID: credential.ID, State: domain.StateStopped}

	var catcher panics.Catcher
	catcher.Try(func() {
		scheduler := f.factory(credential, logger)
		if scheduler == nil {
			report.Err = errors.New("no scheduler for account")
			return
		}
		report, _ = scheduler.Run(ctx)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		logger.Error().Str("panic", fmt.Sprint(recovered.Value)).Msg("scheduler panicked")
		report = Report{AccountID: credential.ID, State: domain.StateStopped, Err: recovered.AsError()}
	}

	return report
}
