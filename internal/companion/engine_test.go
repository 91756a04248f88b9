package companion

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azuma9598/discord-bot/internal/ai"
)

// fakeProvider echoes the last user message, optionally slow or failing.
type fakeProvider struct {
	mu    sync.Mutex
	calls int
	delay time.Duration
	err   error
}

func (f *fakeProvider) Generate(messages []ai.Message) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return "", f.err
	}
	last := messages[len(messages)-1]
	return "re: " + last.Content, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestEngine(p *fakeProvider, cooldown time.Duration) *Engine {
	cfg := DefaultEngineConfig()
	cfg.Cooldown = cooldown
	cfg.HistoryLimit = 6
	return NewEngine(NewStore(nil), p, cfg)
}

func TestHandleTurn_Success(t *testing.T) {
	p := &fakeProvider{}
	e := newTestEngine(p, 0)

	reply, err := e.HandleTurn(TurnRequest{UserID: "u1", DisplayName: "somchai", Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "re: hello", reply)

	u, ok := e.Store().Lookup("u1")
	require.True(t, ok)
	mem := u.Snapshot()
	require.Len(t, mem.History, 2)
	assert.Equal(t, RoleUser, mem.History[0].Role)
	assert.Equal(t, "hello", mem.History[0].Content)
	assert.Equal(t, RoleAssistant, mem.History[1].Role)
	assert.False(t, mem.LastSeen.IsZero())
}

func TestHandleTurn_PacingDenied(t *testing.T) {
	p := &fakeProvider{}
	e := newTestEngine(p, 5*time.Second)

	_, err := e.HandleTurn(TurnRequest{UserID: "u1", Text: "first"})
	require.NoError(t, err)

	reply, err := e.HandleTurn(TurnRequest{UserID: "u1", Text: "second"})
	require.NoError(t, err)
	assert.Equal(t, e.cfg.WaitReply, reply)
	assert.Equal(t, 1, p.callCount(), "denied turn must not reach the provider")

	u, _ := e.Store().Lookup("u1")
	assert.Len(t, u.Snapshot().History, 2, "denied turn leaves the window untouched")
}

func TestHandleTurn_ProviderFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	e := newTestEngine(p, 5*time.Second)

	reply, err := e.HandleTurn(TurnRequest{UserID: "u1", Text: "hello"})
	require.Error(t, err)
	assert.Contains(t, e.cfg.Fallbacks, reply)

	u, _ := e.Store().Lookup("u1")
	mem := u.Snapshot()
	require.Len(t, mem.History, 1, "input turn stays, no assistant turn")
	assert.Equal(t, RoleUser, mem.History[0].Role)

	// The failed call released the cooldown, so a retry goes straight through.
	p.mu.Lock()
	p.err = nil
	p.mu.Unlock()
	reply, err = e.HandleTurn(TurnRequest{UserID: "u1", Text: "retry"})
	require.NoError(t, err)
	assert.Equal(t, "re: retry", reply)
	assert.Equal(t, 2, p.callCount())
}

func TestHandleTurn_ProactiveFailureStaysSilent(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	e := newTestEngine(p, 0)

	reply, err := e.HandleTurn(TurnRequest{UserID: "u1", Text: "(check in)", Proactive: true})
	require.Error(t, err)
	assert.Empty(t, reply, "proactive failures must not surface a fallback")
}

func TestHandleTurn_ConcurrentSameUserDoesNotInterleave(t *testing.T) {
	p := &fakeProvider{delay: 30 * time.Millisecond}
	e := newTestEngine(p, 0)

	var wg sync.WaitGroup
	for _, text := range []string{"first", "second"} {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			_, err := e.HandleTurn(TurnRequest{UserID: "u1", Text: text})
			assert.NoError(t, err)
		}(text)
	}
	wg.Wait()

	u, _ := e.Store().Lookup("u1")
	history := u.Snapshot().History
	require.Len(t, history, 4)
	for i := 0; i < 4; i += 2 {
		require.Equal(t, RoleUser, history[i].Role)
		require.Equal(t, RoleAssistant, history[i+1].Role)
		assert.Equal(t, "re: "+history[i].Content, history[i+1].Content,
			"each reply must answer the turn directly before it")
	}
}

func TestHandleTurn_HistoryBounded(t *testing.T) {
	p := &fakeProvider{}
	e := newTestEngine(p, 0)

	for _, text := range []string{"a", "b", "c", "d"} {
		_, err := e.HandleTurn(TurnRequest{UserID: "u1", Text: text})
		require.NoError(t, err)
	}

	u, _ := e.Store().Lookup("u1")
	history := u.Snapshot().History
	require.Len(t, history, 6)
	assert.Equal(t, "b", history[0].Content, "oldest exchange evicted first")
	assert.Equal(t, "re: d", history[5].Content)
}
