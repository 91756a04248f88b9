// /internal/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/keshon/datastore"

	"github.com/Azuma9598/discord-bot/internal/companion"
)

const (
	userKeyPrefix       = "user:"
	commandHistoryKey   = "cmd_history"
	commandHistoryLimit = 20
)

// Storage persists companion state in a JSON-backed datastore file. Each user
// snapshot lives under its own key, so concurrent saves for different users
// never clobber each other. The datastore flushes periodically and on Close;
// ctx must be cancelled before Close or the final save blocks forever.
type Storage struct {
	ds     *datastore.DataStore
	histMu sync.Mutex
}

func New(ctx context.Context, filePath string, saveInterval time.Duration) (*Storage, error) {
	ds, err := datastore.New(ctx, filePath, datastore.WithSaveInterval(saveInterval))
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// SaveUser overwrites the stored snapshot for userID. Idempotent; safe for
// concurrent use across users (one key per user, no read-modify-write).
func (s *Storage) SaveUser(userID string, mem companion.UserMemory) error {
	return s.ds.Set(userKeyPrefix+userID, mem)
}

// LoadUsers reads every persisted snapshot. Called once at startup.
func (s *Storage) LoadUsers() (map[string]companion.UserMemory, error) {
	users := map[string]companion.UserMemory{}
	for _, key := range s.ds.Keys() {
		if !strings.HasPrefix(key, userKeyPrefix) {
			continue
		}
		var mem companion.UserMemory
		if _, err := s.ds.Get(key, &mem); err != nil {
			return nil, fmt.Errorf("load %s: %w", key, err)
		}
		users[strings.TrimPrefix(key, userKeyPrefix)] = mem
	}
	return users, nil
}

// CommandHistoryRecord is one logged command invocation.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Datetime  time.Time `json:"datetime"`
}

// AppendCommandToHistory logs a command invocation, keeping the last
// commandHistoryLimit entries. The history lives under a single key, so the
// load-append-store sequence holds histMu to stay safe across handler
// goroutines.
func (s *Storage) AppendCommandToHistory(rec CommandHistoryRecord) error {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	var history []CommandHistoryRecord
	if _, err := s.ds.Get(commandHistoryKey, &history); err != nil {
		return fmt.Errorf("load command history: %w", err)
	}

	history = append(history, rec)
	if len(history) > commandHistoryLimit {
		history = history[len(history)-commandHistoryLimit:]
	}
	return s.ds.Set(commandHistoryKey, history)
}

// FetchCommandHistory returns the logged command invocations, oldest first.
func (s *Storage) FetchCommandHistory() ([]CommandHistoryRecord, error) {
	var history []CommandHistoryRecord
	if _, err := s.ds.Get(commandHistoryKey, &history); err != nil {
		return nil, fmt.Errorf("load command history: %w", err)
	}
	return history, nil
}
