package companion

import "strings"

// ScoreDelta is a fixed adjustment to the bounded relation scores.
type ScoreDelta struct {
	Affinity int
	Trust    int
	Sulk     int
	Tension  int
}

func (d *ScoreDelta) add(o ScoreDelta) {
	d.Affinity += o.Affinity
	d.Trust += o.Trust
	d.Sulk += o.Sulk
	d.Tension += o.Tension
}

// MoodRule maps keyword hits to a mood plus score deltas. Rules are evaluated
// top to bottom and the first match wins; ties resolve by table order, which
// keeps classification reproducible across runs.
type MoodRule struct {
	Keywords []string
	Mood     Mood
	Delta    ScoreDelta
}

// ModifierRule adjusts scores without touching the mood. Every matching
// modifier applies (apologies, endearments).
type ModifierRule struct {
	Keywords []string
	Delta    ScoreDelta
}

// Sentiment is the outcome of classifying one user message.
type Sentiment struct {
	Mood  Mood
	Delta ScoreDelta
}

// moodRules — order matters. Hostile phrasing outranks everything else so an
// insult wrapped in sweet talk still lands as angry.
var moodRules = []MoodRule{
	{
		Keywords: []string{"เกลียด", "โง่", "น่ารำคาญ", "ไปไกลๆ", "hate you", "stupid", "shut up"},
		Mood:     MoodAngry,
		Delta:    ScoreDelta{Affinity: -3, Sulk: 1, Tension: 1},
	},
	{
		Keywords: []string{"กัด", "ฆ่า", "เลือด", "สู้กัน", "fight me", "kill"},
		Mood:     MoodAggressive,
		Delta:    ScoreDelta{Tension: 2},
	},
	{
		Keywords: []string{"สาวคนนั้น", "แฟนใหม่", "คุยกับคนอื่น", "someone else", "another girl"},
		Mood:     MoodJealous,
		Delta:    ScoreDelta{Sulk: 1, Tension: 1},
	},
	{
		Keywords: []string{"เศร้า", "ร้องไห้", "เหงา", "ท้อ", "sad", "lonely", "crying"},
		Mood:     MoodSad,
		Delta:    ScoreDelta{Trust: 1},
	},
	{
		Keywords: []string{"รัก", "คิดถึง", "ชอบเธอ", "love you", "miss you"},
		Mood:     MoodAffection,
		Delta:    ScoreDelta{Affinity: 2, Trust: 1},
	},
}

var modifierRules = []ModifierRule{
	// apology: cools a sulk, earns back a little trust
	{Keywords: []string{"ขอโทษ", "โทษที", "ผิดเอง", "sorry", "my bad"}, Delta: ScoreDelta{Sulk: -2, Trust: 1}},
	// endearment
	{Keywords: []string{"ที่รัก", "เก่งมาก", "น่ารักจัง", "sweetheart", "dear"}, Delta: ScoreDelta{Affinity: 1, Sulk: -1}},
}

// Classify maps input text to a mood and a score delta. Pure and deterministic:
// identical text always yields the identical result. With no rule match the
// mood resolves to neutral. Clamping is the caller's job.
func Classify(text string) Sentiment {
	lower := strings.ToLower(text)

	out := Sentiment{Mood: MoodNeutral}
	for _, r := range moodRules {
		if containsAny(lower, r.Keywords) {
			out.Mood = r.Mood
			out.Delta = r.Delta
			break
		}
	}
	for _, r := range modifierRules {
		if containsAny(lower, r.Keywords) {
			out.Delta.add(r.Delta)
		}
	}
	return out
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
