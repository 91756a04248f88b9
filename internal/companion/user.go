package companion

import (
	"sync"
	"time"

	"github.com/Azuma9598/discord-bot/internal/ai"
)

// UserState wraps one user's memory with its locks. Field access goes through
// mu; turnMu serializes whole conversation turns so two handlers never
// interleave around the provider call.
type UserState struct {
	ID     string
	mu     sync.RWMutex
	turnMu sync.Mutex
	mem    UserMemory
}

func newUserState(id string, mem UserMemory) *UserState {
	if mem.Mood == "" {
		mem.Mood = MoodNeutral
	}
	return &UserState{ID: id, mem: mem}
}

// BeginTurn takes exclusive ownership of this user's record for one full turn,
// provider call included. EndTurn releases it.
func (u *UserState) BeginTurn() { u.turnMu.Lock() }
func (u *UserState) EndTurn()   { u.turnMu.Unlock() }

// Snapshot returns a deep copy safe to persist or render.
func (u *UserState) Snapshot() UserMemory {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := u.mem
	out.ChatChannels = append([]string(nil), u.mem.ChatChannels...)
	out.History = append([]Turn(nil), u.mem.History...)
	return out
}

// ApplySentiment sets the mood from the classifier result and applies the
// score delta. Every bounded field is clamped before returning.
func (u *UserState) ApplySentiment(s Sentiment, b Bounds) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.Mood = s.Mood
	u.applyDeltaLocked(s.Delta, b)
}

func (u *UserState) applyDeltaLocked(d ScoreDelta, b Bounds) {
	u.mem.Affinity = clampInt(u.mem.Affinity+d.Affinity, b.AffinityMin, b.AffinityMax)
	u.mem.Trust = clampInt(u.mem.Trust+d.Trust, 0, b.ScoreMax)
	u.mem.Sulk = clampInt(u.mem.Sulk+d.Sulk, 0, b.ScoreMax)
	u.mem.Tension = clampInt(u.mem.Tension+d.Tension, 0, b.ScoreMax)
}

// TouchSeen advances lastSeen. It never moves backwards.
func (u *UserState) TouchSeen(now time.Time) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if now.After(u.mem.LastSeen) {
		u.mem.LastSeen = now
	}
}

func (u *UserState) LastSeen() time.Time {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.mem.LastSeen
}

// AcquireCooldown reports whether a turn may proceed at now. On success the
// cooldown is advanced to now+d before any external call is issued, so a slow
// provider response cannot be exploited to bypass pacing.
func (u *UserState) AcquireCooldown(now time.Time, d time.Duration) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if now.Before(u.mem.CooldownUntil) {
		return false
	}
	u.mem.CooldownUntil = now.Add(d)
	return true
}

// ReleaseCooldown clears the pacing cooldown. Called when the provider call
// fails so a failed turn does not count against pacing.
func (u *UserState) ReleaseCooldown() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.CooldownUntil = time.Time{}
}

func (u *UserState) AppendTurn(t Turn, max int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.History = AppendTurn(u.mem.History, t, max)
}

// PromptMessages returns the window as provider messages, oldest first.
func (u *UserState) PromptMessages() []ai.Message {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return PromptMessages(u.mem.History)
}

func (u *UserState) Mood() Mood {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.mem.Mood
}

// SetMood is the operator override path (e.g. /ghoul-mode). The next classified
// message re-evaluates the mood as usual.
func (u *UserState) SetMood(m Mood) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.Mood = m
}

func (u *UserState) DisplayName() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.mem.DisplayName
}

func (u *UserState) Talkback() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.mem.Talkback
}

func (u *UserState) SetTalkback(on bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.Talkback = on
}

func (u *UserState) Autochat() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.mem.Autochat
}

func (u *UserState) SetAutochat(on bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.Autochat = on
}

func (u *UserState) ChatChannels() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]string(nil), u.mem.ChatChannels...)
}

// AddChatChannel scopes the conversation to channelID. Returns false if it was
// already present.
func (u *UserState) AddChatChannel(channelID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, id := range u.mem.ChatChannels {
		if id == channelID {
			return false
		}
	}
	u.mem.ChatChannels = append(u.mem.ChatChannels, channelID)
	return true
}

// StopChat clears the channel scope and both scheduler opt-ins, matching the
// original stopchat command.
func (u *UserState) StopChat() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.ChatChannels = nil
	u.mem.Autochat = false
	u.mem.Talkback = false
}

// AdjustAffinity shifts affinity by delta, clamped, and returns the new value.
func (u *UserState) AdjustAffinity(delta int, b Bounds) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.Affinity = clampInt(u.mem.Affinity+delta, b.AffinityMin, b.AffinityMax)
	return u.mem.Affinity
}

// Reset clears the history and zeroes all scores. The record itself survives.
func (u *UserState) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mem.History = nil
	u.mem.Affinity = 0
	u.mem.Trust = 0
	u.mem.Sulk = 0
	u.mem.Tension = 0
	u.mem.Mood = MoodNeutral
	u.mem.CooldownUntil = time.Time{}
}
