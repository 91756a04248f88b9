package companion

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentRecorder struct {
	mu    sync.Mutex
	sends []string
}

func (r *sentRecorder) send(channelID, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sends = append(r.sends, channelID)
	return nil
}

func (r *sentRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sends)
}

func newTestScheduler(p *fakeProvider, rec *sentRecorder) (*Scheduler, *Store) {
	store := NewStore(nil)
	cfg := DefaultEngineConfig()
	cfg.Cooldown = 0
	engine := NewEngine(store, p, cfg)
	sched := NewScheduler(store, engine, nil, SchedulerConfig{
		SweepInterval: time.Second,
		IdleThreshold: 10 * time.Minute,
	}, rec.send)
	return sched, store
}

func idleUser(store *Store, id string, now time.Time) *UserState {
	u := store.User(id, "")
	u.SetTalkback(true)
	u.AddChatChannel("c1")
	u.TouchSeen(now.Add(-time.Hour))
	return u
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSweep_TriggersIdleUser(t *testing.T) {
	p := &fakeProvider{}
	rec := &sentRecorder{}
	sched, store := newTestScheduler(p, rec)
	now := time.Now()
	u := idleUser(store, "u1", now)

	sched.sweep(now)

	waitFor(t, func() bool { return rec.count() == 1 })
	assert.False(t, u.LastSeen().Before(now), "lastSeen advances at trigger time")

	history := u.Snapshot().History
	require.Len(t, history, 2)
	assert.True(t, strings.HasPrefix(history[0].Content, "("), "synthetic prompt recorded as the input turn")
}

func TestSweep_OneTriggerPerIdleWindow(t *testing.T) {
	p := &fakeProvider{delay: 100 * time.Millisecond}
	rec := &sentRecorder{}
	sched, store := newTestScheduler(p, rec)
	now := time.Now()
	idleUser(store, "u1", now)

	// Two consecutive ticks while the first provider call is still in flight.
	sched.sweep(now)
	sched.sweep(now.Add(time.Second))

	waitFor(t, func() bool { return rec.count() >= 1 })
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, p.callCount(), "a slow provider call must not double-trigger")
	assert.Equal(t, 1, rec.count())
}

func TestSweep_SkipsOptedOutAndActiveUsers(t *testing.T) {
	p := &fakeProvider{}
	rec := &sentRecorder{}
	sched, store := newTestScheduler(p, rec)
	now := time.Now()

	// Opted out entirely.
	optedOut := store.User("u1", "")
	optedOut.AddChatChannel("c1")
	optedOut.TouchSeen(now.Add(-time.Hour))

	// Opted in but no channel scope.
	noScope := store.User("u2", "")
	noScope.SetAutochat(true)
	noScope.TouchSeen(now.Add(-time.Hour))

	// Opted in, scoped, but recently active.
	active := store.User("u3", "")
	active.SetTalkback(true)
	active.AddChatChannel("c1")
	active.TouchSeen(now.Add(-time.Minute))

	sched.sweep(now)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, p.callCount())
	assert.Zero(t, rec.count())
}

func TestSweep_FailedTriggerStaysSilent(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	rec := &sentRecorder{}
	sched, store := newTestScheduler(p, rec)
	now := time.Now()
	u := idleUser(store, "u1", now)

	sched.sweep(now)

	waitFor(t, func() bool { return p.callCount() == 1 })
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, rec.count(), "nothing is delivered when generation fails")
	assert.False(t, u.LastSeen().Before(now), "the failed attempt still consumes the idle window")
}

func TestSweep_GlobalLimiter(t *testing.T) {
	p := &fakeProvider{}
	rec := &sentRecorder{}
	store := NewStore(nil)
	cfg := DefaultEngineConfig()
	cfg.Cooldown = 0
	engine := NewEngine(store, p, cfg)
	// Burst of one, negligible refill within the test window.
	sched := NewScheduler(store, engine, NewCallLimiter(1), SchedulerConfig{
		SweepInterval: time.Second,
		IdleThreshold: 10 * time.Minute,
	}, rec.send)

	now := time.Now()
	idleUser(store, "u1", now)
	idleUser(store, "u2", now)

	sched.sweep(now)

	waitFor(t, func() bool { return rec.count() >= 1 })
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, p.callCount(), "one trigger per sweep under a burst-1 limiter")
}
