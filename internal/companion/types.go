package companion

import "time"

// Mood is the discrete emotional label driving persona construction.
// It is re-evaluated from every user message; operator commands may override it.
type Mood string

const (
	MoodNeutral    Mood = "neutral"
	MoodAffection  Mood = "affection"
	MoodSad        Mood = "sad"
	MoodAngry      Mood = "angry"
	MoodJealous    Mood = "jealous"
	MoodAggressive Mood = "aggressive"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one exchange unit in the conversation window.
type Turn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// UserMemory is the persisted snapshot of one user's relationship state.
// JSON keys kept readable so the datastore file stays hand-inspectable.
type UserMemory struct {
	DisplayName   string    `json:"display_name"`
	Affinity      int       `json:"affinity"`
	Trust         int       `json:"trust"`
	Sulk          int       `json:"sulk"`
	Tension       int       `json:"tension"`
	Mood          Mood      `json:"mood"`
	LastSeen      time.Time `json:"last_seen"`
	Talkback      bool      `json:"talkback"`
	Autochat      bool      `json:"autochat"`
	ChatChannels  []string  `json:"chat_channels"`
	History       []Turn    `json:"history"`
	CooldownUntil time.Time `json:"cooldown_until"`
}

// Bounds clamps every scored field after each mutation. Trust, sulk and
// tension live in [0, ScoreMax].
type Bounds struct {
	AffinityMin int
	AffinityMax int
	ScoreMax    int
}

func DefaultBounds() Bounds {
	return Bounds{AffinityMin: -100, AffinityMax: 100, ScoreMax: 5}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
