package application

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/ports"
	"github.com/phuslu/log"
)

var ErrSchedulerStarted = errors.New("scheduler already started")

const (
	DefaultFeedInterval = 12 * time.Hour
	DefaultPollInterval = time.Minute
)

type SchedulerOptions struct {
	// FeedInterval is the minimum time between two successful feeds.
	FeedInterval time.Duration
	// PollInterval is the cadence of the loop that checks whether a feed is due.
	PollInterval time.Duration
	Missions     MissionOptions
}

func (o SchedulerOptions) withDefaults() SchedulerOptions {
	if o.FeedInterval <= 0 {
		o.FeedInterval = DefaultFeedInterval
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	o.Missions = o.Missions.withDefaults()
	return o
}

// Report summarizes one account after its scheduler stopped.
type Report struct {
	AccountID       domain.AccountID
	State           domain.SchedulerState
	Address         string
	Power           domain.Amount
	Balance         domain.Amount
	Feeds           int
	LastFeedAt      time.Time
	LastReward      domain.Amount
	MissionsCleared int
	Err             error
}

// Scheduler drives a single account from authentication to stop. It owns
// the account's session; nothing else reads or writes it while Run is active.
type Scheduler struct {
	credential domain.Credential
	client     ports.GameClient
	clock      ports.Clock
	logger     *log.Logger
	opts       SchedulerOptions
	missions   *MissionClearer

	started  atomic.Bool
	finished atomic.Bool
	state    atomic.Int32

	session domain.Session
	feeds   int
	err     error
}

func NewScheduler(credential domain.Credential, client ports.GameClient, clock ports.Clock, logger *log.Logger, opts SchedulerOptions) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = &log.DefaultLogger
	}
	opts = opts.withDefaults()

	return &Scheduler{
		credential: credential,
		client:     client,
		clock:      clock,
		logger:     logger,
		opts:       opts,
		missions:   NewMissionClearer(client, clock, logger, opts.Missions),
	}
}

func (s *Scheduler) State() domain.SchedulerState {
	return domain.SchedulerState(s.state.Load())
}

// Session returns a copy of the account's session once Run has returned.
// While Run is active it reports false.
func (s *Scheduler) Session() (domain.Session, bool) {
	if !s.finished.Load() {
		return domain.Session{}, false
	}
	return s.session.Clone(), true
}

// Run authenticates once, performs the initial pass and then polls until ctx
// is canceled. Calls already sent to the server are not interrupted by
// cancellation; they end on their own timeout. The only error returned is an
// authentication failure.
func (s *Scheduler) Run(ctx context.Context) (Report, error) {
	if !s.started.CompareAndSwap(false, true) {
		return Report{}, ErrSchedulerStarted
	}
	defer s.finished.Store(true)
	defer s.setState(domain.StateStopped)

	if ctx.Err() != nil {
		return s.stop(), nil
	}

	session, err := s.client.Authenticate(context.WithoutCancel(ctx), s.credential)
	if err != nil {
		if !errors.Is(err, domain.ErrAuthFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
		}
		s.err = err
		s.logger.Error().Err(err).Str("source", s.credential.Source).Msg("authentication failed, account stopped")
		return s.stop(), fmt.Errorf("account %s: %w", s.credential.ID, err)
	}
	if session.Processed == nil {
		session.Processed = domain.ProcessedMissions{}
	}
	session.AccountID = s.credential.ID
	s.session = session
	s.setState(domain.StateAuthenticated)

	s.setState(domain.StateRunning)
	s.initialPass(ctx)
	s.loop(ctx)

	return s.stop(), nil
}

func (s *Scheduler) initialPass(ctx context.Context) {
	steps := []func(context.Context){
		s.refreshAddress,
		s.refreshPower,
		s.refreshBalance,
		s.feed,
		s.clearMissions,
	}
	for _, step := range steps {
		if ctx.Err() != nil {
			return
		}
		step(ctx)
	}
}

func (s *Scheduler) loop(ctx context.Context) {
	for {
		if !sleep(ctx, s.clock, s.opts.PollInterval) {
			return
		}
		if !s.session.FeedDue(s.clock.Now(), s.opts.FeedInterval) {
			continue
		}

		for _, step := range []func(context.Context){s.feed, s.clearMissions, s.refreshPower, s.refreshBalance} {
			if ctx.Err() != nil {
				return
			}
			step(ctx)
		}
	}
}

func (s *Scheduler) refreshAddress(ctx context.Context) {
	address, err := s.client.FetchAddress(context.WithoutCancel(ctx), s.session.Token)
	if err != nil {
		s.callFailed("fetch address", err)
		return
	}
	s.session.Address = address
	s.logger.Info().Str("address", address).Msg("address")
}

func (s *Scheduler) refreshPower(ctx context.Context) {
	power, err := s.client.FetchPower(context.WithoutCancel(ctx), s.session.Token)
	if err != nil {
		s.callFailed("fetch power", err)
		return
	}
	s.session.Power = power
	s.logger.Info().Str("power", power.String()).Msg("power")
}

func (s *Scheduler) refreshBalance(ctx context.Context) {
	balance, err := s.client.FetchBalance(context.WithoutCancel(ctx), s.session.Token)
	if err != nil {
		s.callFailed("fetch balance", err)
		return
	}
	s.session.Balance = balance
	s.logger.Info().Str("balance", balance.String()).Msg("balance")
}

func (s *Scheduler) feed(ctx context.Context) {
	reward, err := s.client.Feed(context.WithoutCancel(ctx), s.session.Token)
	if err != nil {
		s.callFailed("feed", err)
		return
	}

	s.session.LastFeedAt = s.clock.Now()
	s.session.LastReward = reward
	s.feeds++
	s.logger.Info().
		Str("reward", reward.String()).
		Time("next_feed_at", s.session.NextFeedAt(s.opts.FeedInterval)).
		Msg("fed")
}

func (s *Scheduler) clearMissions(ctx context.Context) {
	s.missions.Clear(ctx, &s.session)
}

func (s *Scheduler) callFailed(op string, err error) {
	if domain.IsTokenRejected(err) {
		s.logger.Warn().Err(err).Str("op", op).Msg("token rejected; restart to re-authenticate")
		return
	}
	s.logger.Error().Err(err).Str("op", op).Msg("call failed")
}

func (s *Scheduler) setState(state domain.SchedulerState) {
	if domain.SchedulerState(s.state.Swap(int32(state))) == state {
		return
	}
	s.logger.Debug().Str("state", state.String()).Msg("state changed")
}

func (s *Scheduler) stop() Report {
	s.setState(domain.StateStopped)
	if s.session.AccountID != "" {
		s.logger.Info().Int("feeds", s.feeds).Int("missions", len(s.session.Processed)).Msg("stopped")
	}

	return Report{
		AccountID:       s.credential.ID,
		State:           domain.StateStopped,
		Address:         s.session.Address,
		Power:           s.session.Power,
		Balance:         s.session.Balance,
		Feeds:           s.feeds,
		LastFeedAt:      s.session.LastFeedAt,
		LastReward:      s.session.LastReward,
		MissionsCleared: len(s.session.Processed),
		Err:             s.err,
	}
}

// sleep waits d on clock and reports whether ctx is still live afterwards.
func sleep(ctx context.Context, clock ports.Clock, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	select {
	case <-ctx.Done():
		return false
	case <-clock.After(d):
		return ctx.Err() == nil
	}
}
