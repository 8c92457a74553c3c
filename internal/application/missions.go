package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/ports"
	"github.com/phuslu/log"
)

const (
	DefaultStepDelay   = time.Second
	DefaultPlaceholder = "bb123456"
	DefaultLoginTitle  = "Login and play the game"
)

type MissionOptions struct {
	// StepDelay separates a submit from the finish of the same mission.
	StepDelay time.Duration
	// Placeholder is the answer submitted for social missions.
	Placeholder string
	// LoginTitle marks the daily mission that needs a submitted value.
	LoginTitle string
}

func (o MissionOptions) withDefaults() MissionOptions {
	if o.StepDelay < 0 {
		o.StepDelay = 0
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.LoginTitle == "" {
		o.LoginTitle = DefaultLoginTitle
	}
	return o
}

// MissionClearer completes pending social and daily missions, skipping any
// mission already finished during this run.
type MissionClearer struct {
	client ports.GameClient
	clock  ports.Clock
	logger *log.Logger
	opts   MissionOptions
}

func NewMissionClearer(client ports.GameClient, clock ports.Clock, logger *log.Logger, opts MissionOptions) *MissionClearer {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = &log.DefaultLogger
	}

	return &MissionClearer{client: client, clock: clock, logger: logger, opts: opts.withDefaults()}
}

// Clear runs one pass over both categories and returns how many missions it
// finished. Missions that fail stay out of the session's processed set so the
// next pass retries them.
func (c *MissionClearer) Clear(ctx context.Context, session *domain.Session) int {
	if session.Processed == nil {
		session.Processed = domain.ProcessedMissions{}
	}

	cleared := 0
	for _, category := range []domain.MissionCategory{domain.MissionCategorySocial, domain.MissionCategoryDaily} {
		if ctx.Err() != nil {
			break
		}
		cleared += c.clearCategory(ctx, session, category)
	}

	if cleared > 0 {
		c.logger.Info().Int("cleared", cleared).Int("total", len(session.Processed)).Msg("missions cleared")
	}
	return cleared
}

func (c *MissionClearer) clearCategory(ctx context.Context, session *domain.Session, category domain.MissionCategory) int {
	missions, err := c.client.ListMissions(context.WithoutCancel(ctx), session.Token, category)
	if err != nil {
		c.logger.Error().Err(err).Str("category", string(category)).Msg("list missions failed")
		return 0
	}

	cleared := 0
	for _, mission := range missions {
		if !mission.Pending() || session.Processed.Has(mission.ID) {
			continue
		}

		var done bool
		switch category {
		case domain.MissionCategoryDaily:
			done = c.clearDaily(ctx, session.Token, mission)
		default:
			done = c.clearSocial(ctx, session.Token, mission)
		}
		if done {
			session.Processed.Add(mission.ID)
			cleared++
		}
		if ctx.Err() != nil {
			break
		}
	}

	return cleared
}

func (c *MissionClearer) clearSocial(ctx context.Context, token string, mission domain.Mission) bool {
	if ctx.Err() != nil {
		return false
	}
	if err := c.client.SubmitMission(context.WithoutCancel(ctx), token, mission.ID, domain.MissionCategorySocial, c.opts.Placeholder); err != nil {
		c.missionFailed("submit", mission, err)
		return false
	}

	return c.finish(ctx, token, mission, domain.MissionCategorySocial)
}

func (c *MissionClearer) clearDaily(ctx context.Context, token string, mission domain.Mission) bool {
	if strings.Contains(mission.Title, c.opts.LoginTitle) {
		if ctx.Err() != nil {
			return false
		}
		value := fmt.Sprintf("auto_%d", c.clock.Now().Unix())
		if err := c.client.SubmitMission(context.WithoutCancel(ctx), token, mission.ID, domain.MissionCategoryDaily, value); err != nil {
			c.missionFailed("submit", mission, err)
		}
	}

	return c.finish(ctx, token, mission, domain.MissionCategoryDaily)
}

func (c *MissionClearer) finish(ctx context.Context, token string, mission domain.Mission, category domain.MissionCategory) bool {
	if !sleep(ctx, c.clock, c.opts.StepDelay) {
		return false
	}
	if err := c.client.FinishMission(context.WithoutCancel(ctx), token, mission.ID, category); err != nil {
		c.missionFailed("finish", mission, err)
		return false
	}

	c.logger.Info().Str("mission", mission.ID.String()).Str("title", mission.Title).Str("category", string(category)).Msg("mission finished")
	return true
}

func (c *MissionClearer) missionFailed(op string, mission domain.Mission, err error) {
	event := c.logger.Error()
	if domain.IsTokenRejected(err) {
		event = c.logger.Warn()
	}
	event.Err(err).Str("op", op).Str("mission", mission.ID.String()).Str("title", mission.Title).Msg("mission step failed")
}
