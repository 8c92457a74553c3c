package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/bnema/owdragon-cli/internal/logging"
	"github.com/bnema/owdragon-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMissionOptions() MissionOptions {
	return MissionOptions{StepDelay: time.Second}
}

func TestMissionClearerSkipsProcessedMissions(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := mocks.NewMockGameClient(t)
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategorySocial).Return([]domain.Mission{
		{ID: "1", Title: "Follow on X", Status: domain.MissionStatusPending},
		{ID: "2", Title: "Join channel", Status: domain.MissionStatusPending},
		{ID: "3", Title: "Retweet", Status: 1},
	}, nil).Once()
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategoryDaily).Return(nil, nil).Once()
	client.EXPECT().SubmitMission(mockAnyContext(), "jwt", domain.MissionID("2"), domain.MissionCategorySocial, DefaultPlaceholder).Return(nil).Once()
	client.EXPECT().FinishMission(mockAnyContext(), "jwt", domain.MissionID("2"), domain.MissionCategorySocial).Return(nil).Once()

	session := domain.NewSession("init-1", "jwt")
	session.Processed.Add("1")

	clearer := NewMissionClearer(client, newFakeClock(schedulerStart, time.Hour, cancel), logging.Discard(), testMissionOptions())
	cleared := clearer.Clear(ctx, &session)

	assert.Equal(t, 1, cleared)
	assert.True(t, session.Processed.Has("1"))
	assert.True(t, session.Processed.Has("2"))
	assert.False(t, session.Processed.Has("3"))
}

func TestMissionClearerNeverRepeatsFinishedMission(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := newFakeClock(schedulerStart, time.Hour, cancel)
	client := &fakeGameClient{missions: map[domain.MissionCategory][]domain.Mission{
		domain.MissionCategorySocial: {{ID: "5", Title: "Follow", Status: domain.MissionStatusPending}},
	}}

	session := domain.NewSession("init-1", "jwt")
	clearer := NewMissionClearer(client, clock, logging.Discard(), testMissionOptions())

	assert.Equal(t, 1, clearer.Clear(ctx, &session))
	// The server keeps reporting it as pending.
	assert.Equal(t, 0, clearer.Clear(ctx, &session))

	assert.Len(t, client.callsOf("submit"), 1)
	assert.Len(t, client.callsOf("finish"), 1)
}

func TestMissionClearerRetriesFailedFinish(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := &fakeGameClient{
		missions: map[domain.MissionCategory][]domain.Mission{
			domain.MissionCategorySocial: {{ID: "7", Title: "Follow", Status: domain.MissionStatusPending}},
		},
		finishErr: map[domain.MissionID]error{"7": &domain.EnvelopeError{Endpoint: "/finish-mission", Code: 500}},
	}

	session := domain.NewSession("init-1", "jwt")
	clearer := NewMissionClearer(client, newFakeClock(schedulerStart, time.Hour, cancel), logging.Discard(), testMissionOptions())

	assert.Equal(t, 0, clearer.Clear(ctx, &session))
	assert.False(t, session.Processed.Has("7"))

	client.mu.Lock()
	client.finishErr = nil
	client.mu.Unlock()

	assert.Equal(t, 1, clearer.Clear(ctx, &session))
	assert.True(t, session.Processed.Has("7"))
	assert.Len(t, client.callsOf("submit"), 2)
	assert.Len(t, client.callsOf("finish"), 2)
}

func TestMissionClearerDailyLoginSubmitsTimestamp(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := newFakeClock(schedulerStart, time.Hour, cancel)
	client := &fakeGameClient{clock: clock, missions: map[domain.MissionCategory][]domain.Mission{
		domain.MissionCategoryDaily: {
			{ID: "10", Title: "Login and play the game", Status: domain.MissionStatusPending},
			{ID: "11", Title: "Feed your dragon", Status: domain.MissionStatusPending},
		},
	}}

	session := domain.NewSession("init-1", "jwt")
	cleared := NewMissionClearer(client, clock, logging.Discard(), testMissionOptions()).Clear(ctx, &session)
	require.Equal(t, 2, cleared)

	submits := client.callsOf("submit")
	require.Len(t, submits, 1)
	assert.Equal(t, domain.MissionID("10"), submits[0].id)
	assert.Equal(t, domain.MissionCategoryDaily, submits[0].tab)
	assert.Equal(t, fmt.Sprintf("auto_%d", schedulerStart.Unix()), submits[0].body)

	finishes := client.callsOf("finish")
	require.Len(t, finishes, 2)
	assert.Equal(t, schedulerStart.Add(time.Second), finishes[0].at)
	assert.Equal(t, schedulerStart.Add(2*time.Second), finishes[1].at)
}

func TestMissionClearerDailyFinishesAfterFailedSubmit(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := mocks.NewMockGameClient(t)
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategorySocial).Return(nil, nil)
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategoryDaily).Return([]domain.Mission{
		{ID: "10", Title: "Login and play the game", Status: domain.MissionStatusPending},
	}, nil)
	client.EXPECT().SubmitMission(mockAnyContext(), "jwt", domain.MissionID("10"), domain.MissionCategoryDaily, fmt.Sprintf("auto_%d", schedulerStart.Unix())).
		Return(&domain.EnvelopeError{Endpoint: "/submit-mission", Code: 400, Message: "already submitted"})
	client.EXPECT().FinishMission(mockAnyContext(), "jwt", domain.MissionID("10"), domain.MissionCategoryDaily).Return(nil)

	session := domain.NewSession("init-1", "jwt")
	cleared := NewMissionClearer(client, newFakeClock(schedulerStart, time.Hour, cancel), logging.Discard(), testMissionOptions()).Clear(ctx, &session)

	assert.Equal(t, 1, cleared)
	assert.True(t, session.Processed.Has("10"))
}

func TestMissionClearerSocialSubmitFailureSkipsFinish(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := mocks.NewMockGameClient(t)
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategorySocial).Return([]domain.Mission{
		{ID: "4", Title: "Follow", Status: domain.MissionStatusPending},
	}, nil)
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategoryDaily).Return(nil, nil)
	client.EXPECT().SubmitMission(mockAnyContext(), "jwt", domain.MissionID("4"), domain.MissionCategorySocial, "custom").
		Return(fmt.Errorf("%w: connection reset", domain.ErrTransport))

	session := domain.NewSession("init-1", "jwt")
	opts := testMissionOptions()
	opts.Placeholder = "custom"
	cleared := NewMissionClearer(client, newFakeClock(schedulerStart, time.Hour, cancel), logging.Discard(), opts).Clear(ctx, &session)

	assert.Zero(t, cleared)
	assert.False(t, session.Processed.Has("4"))
}

func TestMissionClearerListFailureIsEmpty(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := mocks.NewMockGameClient(t)
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategorySocial).Return(nil, errors.New("boom"))
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategoryDaily).Return(nil, &domain.HTTPStatusError{Endpoint: "/query-mission", StatusCode: 401})

	session := domain.NewSession("init-1", "jwt")
	cleared := NewMissionClearer(client, newFakeClock(schedulerStart, time.Hour, cancel), logging.Discard(), testMissionOptions()).Clear(ctx, &session)
	assert.Zero(t, cleared)
}

func TestMissionClearerStopSkipsFinish(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := mocks.NewMockGameClient(t)
	client.EXPECT().ListMissions(mockAnyContext(), "jwt", domain.MissionCategorySocial).Return([]domain.Mission{
		{ID: "1", Title: "Follow", Status: domain.MissionStatusPending},
		{ID: "2", Title: "Join", Status: domain.MissionStatusPending},
	}, nil)
	client.EXPECT().SubmitMission(mockAnyContext(), "jwt", domain.MissionID("1"), domain.MissionCategorySocial, DefaultPlaceholder).Return(nil)

	// The clock stops the run during the first step delay.
	session := domain.NewSession("init-1", "jwt")
	cleared := NewMissionClearer(client, newFakeClock(schedulerStart, 0, cancel), logging.Discard(), testMissionOptions()).Clear(ctx, &session)

	assert.Zero(t, cleared)
	assert.Empty(t, session.Processed)
}

func TestMissionClearerCanceledMakesNoCalls(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := mocks.NewMockGameClient(t)

	session := domain.NewSession("init-1", "jwt")
	assert.Zero(t, NewMissionClearer(client, parkingClock{}, logging.Discard(), testMissionOptions()).Clear(ctx, &session))
}
