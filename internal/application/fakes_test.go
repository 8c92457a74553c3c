package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

// fakeClock advances virtual time on every After call. Once the elapsed time
// would pass limit it cancels the run and never fires again.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	end    time.Time
	cancel context.CancelFunc
}

func newFakeClock(start time.Time, limit time.Duration, cancel context.CancelFunc) *fakeClock {
	return &fakeClock{now: start, end: start.Add(limit), cancel: cancel}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.now.Add(d).After(c.end) {
		c.cancel()
		return nil
	}
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

// parkingClock never fires. Each After call is reported on parked.
type parkingClock struct {
	now    time.Time
	parked chan<- struct{}
}

func (c parkingClock) Now() time.Time {
	return c.now
}

func (c parkingClock) After(time.Duration) <-chan time.Time {
	if c.parked != nil {
		c.parked <- struct{}{}
	}
	return nil
}

type call struct {
	op   string
	at   time.Time
	id   domain.MissionID
	tab  domain.MissionCategory
	body string
}

// fakeGameClient records every call in order. Hooks default to success.
type fakeGameClient struct {
	mu    sync.Mutex
	clock interface{ Now() time.Time }
	calls []call

	authErr   error
	feedFn    func(n int) (domain.Amount, error)
	missions  map[domain.MissionCategory][]domain.Mission
	finishErr map[domain.MissionID]error
	onCall    func(op string)
}

func (f *fakeGameClient) record(c call) {
	f.mu.Lock()
	if f.clock != nil {
		c.at = f.clock.Now()
	}
	f.calls = append(f.calls, c)
	hook := f.onCall
	f.mu.Unlock()

	if hook != nil {
		hook(c.op)
	}
}

func (f *fakeGameClient) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	ops := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		ops = append(ops, c.op)
	}
	return ops
}

func (f *fakeGameClient) callsOf(op string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []call
	for _, c := range f.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeGameClient) Authenticate(_ context.Context, credential domain.Credential) (domain.Session, error) {
	f.record(call{op: "authenticate"})
	if f.authErr != nil {
		return domain.Session{}, f.authErr
	}
	return domain.NewSession(credential.ID, "jwt-"+credential.Value), nil
}

func (f *fakeGameClient) FetchAddress(context.Context, string) (string, error) {
	f.record(call{op: "address"})
	return "0xabc", nil
}

func (f *fakeGameClient) FetchPower(context.Context, string) (domain.Amount, error) {
	f.record(call{op: "power"})
	return "42", nil
}

func (f *fakeGameClient) FetchBalance(context.Context, string) (domain.Amount, error) {
	f.record(call{op: "balance"})
	return "7.5", nil
}

func (f *fakeGameClient) Feed(context.Context, string) (domain.Amount, error) {
	n := len(f.callsOf("feed"))
	f.record(call{op: "feed"})
	if f.feedFn != nil {
		return f.feedFn(n)
	}
	return "10", nil
}

func (f *fakeGameClient) ListMissions(_ context.Context, _ string, category domain.MissionCategory) ([]domain.Mission, error) {
	f.record(call{op: "list", tab: category})
	return f.missions[category], nil
}

func (f *fakeGameClient) SubmitMission(_ context.Context, _ string, id domain.MissionID, category domain.MissionCategory, value string) error {
	f.record(call{op: "submit", id: id, tab: category, body: value})
	return nil
}

func (f *fakeGameClient) FinishMission(_ context.Context, _ string, id domain.MissionID, category domain.MissionCategory) error {
	f.record(call{op: "finish", id: id, tab: category})
	return f.finishErr[id]
}

func mockAnyContext() interface{} {
	return mock.Anything
}
