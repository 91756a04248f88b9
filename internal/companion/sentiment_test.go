package companion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{"รักนะ", "ขอโทษนะ", "hello world", "เกลียดแก โง่"}
	for _, in := range inputs {
		first := Classify(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify(in), "input %q must classify identically every time", in)
		}
	}
}

func TestClassify_NoMatchIsNeutral(t *testing.T) {
	s := Classify("hello world")
	assert.Equal(t, MoodNeutral, s.Mood)
	assert.Equal(t, ScoreDelta{}, s.Delta)
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Matches both the angry rule and the affection rule; the angry rule is
	// earlier in the table so it must win.
	s := Classify("รักนะ แต่แกโง่จริง")
	assert.Equal(t, MoodAngry, s.Mood)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	s := Classify("LOVE YOU")
	assert.Equal(t, MoodAffection, s.Mood)
}

func TestClassify_ApologyModifier(t *testing.T) {
	s := Classify("ขอโทษนะ")
	assert.Equal(t, MoodNeutral, s.Mood)
	assert.Equal(t, -2, s.Delta.Sulk)
	assert.Equal(t, 1, s.Delta.Trust)
}

func TestApplySentiment_ApologyScenario(t *testing.T) {
	b := DefaultBounds()
	u := newUserState("u1", UserMemory{Sulk: 4, Trust: 2})

	u.ApplySentiment(Classify("ขอโทษนะ"), b)

	mem := u.Snapshot()
	assert.Equal(t, 2, mem.Sulk)
	assert.Equal(t, 3, mem.Trust)
}

func TestApplySentiment_TrustClampedAtMax(t *testing.T) {
	b := DefaultBounds()
	u := newUserState("u1", UserMemory{Sulk: 4, Trust: b.ScoreMax})

	u.ApplySentiment(Classify("ขอโทษนะ"), b)

	mem := u.Snapshot()
	require.Equal(t, b.ScoreMax, mem.Trust)
	assert.Equal(t, 2, mem.Sulk)
}
