package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azuma9598/discord-bot/internal/companion"
)

// openStorage opens a store over path; the returned shutdown cancels the
// datastore context before closing, which triggers the final flush.
func openStorage(t *testing.T, path string) (*Storage, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	st, err := New(ctx, path, time.Minute)
	require.NoError(t, err)
	return st, func() {
		cancel()
		require.NoError(t, st.Close())
	}
}

func TestSaveUser_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	st, shutdown := openStorage(t, path)

	seen := time.Now().UTC().Truncate(time.Second)
	mem := companion.UserMemory{
		DisplayName:  "somchai",
		Affinity:     42,
		Trust:        3,
		Sulk:         1,
		Mood:         companion.MoodAffection,
		LastSeen:     seen,
		Talkback:     true,
		ChatChannels: []string{"c1", "c2"},
		History: []companion.Turn{
			{Role: companion.RoleUser, Content: "สวัสดี"},
			{Role: companion.RoleAssistant, Content: "หวัดดี 🖤"},
		},
	}
	require.NoError(t, st.SaveUser("u1", mem))
	shutdown()

	// Fresh handle over the same file, as after a restart.
	st2, shutdown2 := openStorage(t, path)
	defer shutdown2()

	users, err := st2.LoadUsers()
	require.NoError(t, err)
	require.Contains(t, users, "u1")

	got := users["u1"]
	assert.Equal(t, "somchai", got.DisplayName)
	assert.Equal(t, 42, got.Affinity)
	assert.Equal(t, 3, got.Trust)
	assert.Equal(t, companion.MoodAffection, got.Mood)
	assert.True(t, got.LastSeen.Equal(seen))
	assert.True(t, got.Talkback)
	assert.Equal(t, []string{"c1", "c2"}, got.ChatChannels)
	require.Len(t, got.History, 2)
	assert.Equal(t, "หวัดดี 🖤", got.History[1].Content)
}

func TestSaveUser_OverwriteIsIdempotent(t *testing.T) {
	st, shutdown := openStorage(t, filepath.Join(t.TempDir(), "memory.json"))
	defer shutdown()

	require.NoError(t, st.SaveUser("u1", companion.UserMemory{Affinity: 1}))
	require.NoError(t, st.SaveUser("u1", companion.UserMemory{Affinity: 7}))
	require.NoError(t, st.SaveUser("u2", companion.UserMemory{Affinity: 2}))

	users, err := st.LoadUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 7, users["u1"].Affinity)
	assert.Equal(t, 2, users["u2"].Affinity)
}

func TestSaveUser_ConcurrentSavesKeepEveryUser(t *testing.T) {
	st, shutdown := openStorage(t, filepath.Join(t.TempDir(), "memory.json"))
	defer shutdown()

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("u%d", i)
			assert.NoError(t, st.SaveUser(id, companion.UserMemory{DisplayName: id, Affinity: i}))
		}(i)
	}
	wg.Wait()

	users, err := st.LoadUsers()
	require.NoError(t, err)
	require.Len(t, users, n, "a concurrent save must never drop another user's snapshot")
	for i := 0; i < n; i++ {
		assert.Equal(t, i, users[fmt.Sprintf("u%d", i)].Affinity)
	}
}

func TestLoadUsers_EmptyStore(t *testing.T) {
	st, shutdown := openStorage(t, filepath.Join(t.TempDir(), "memory.json"))
	defer shutdown()

	users, err := st.LoadUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadUsers_IgnoresForeignKeys(t *testing.T) {
	st, shutdown := openStorage(t, filepath.Join(t.TempDir(), "memory.json"))
	defer shutdown()

	require.NoError(t, st.SaveUser("u1", companion.UserMemory{Affinity: 1}))
	require.NoError(t, st.AppendCommandToHistory(CommandHistoryRecord{Command: "ping"}))

	users, err := st.LoadUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Contains(t, users, "u1")
}

func TestCommandHistory_Bounded(t *testing.T) {
	st, shutdown := openStorage(t, filepath.Join(t.TempDir(), "memory.json"))
	defer shutdown()

	for i := 0; i < commandHistoryLimit+5; i++ {
		require.NoError(t, st.AppendCommandToHistory(CommandHistoryRecord{
			UserID:   "u1",
			Command:  fmt.Sprintf("cmd-%d", i),
			Datetime: time.Now(),
		}))
	}

	history, err := st.FetchCommandHistory()
	require.NoError(t, err)
	require.Len(t, history, commandHistoryLimit)
	assert.Equal(t, "cmd-5", history[0].Command, "oldest entries are dropped")
	assert.Equal(t, fmt.Sprintf("cmd-%d", commandHistoryLimit+4), history[len(history)-1].Command)
}

func TestCommandHistory_ConcurrentAppends(t *testing.T) {
	st, shutdown := openStorage(t, filepath.Join(t.TempDir(), "memory.json"))
	defer shutdown()

	const n = commandHistoryLimit + 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, st.AppendCommandToHistory(CommandHistoryRecord{
				UserID:   "u1",
				Command:  fmt.Sprintf("cmd-%d", i),
				Datetime: time.Now(),
			}))
		}(i)
	}
	wg.Wait()

	history, err := st.FetchCommandHistory()
	require.NoError(t, err)
	assert.Len(t, history, commandHistoryLimit, "every append lands, trimmed to the limit")
}
