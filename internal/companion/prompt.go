package companion

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// DefaultPersona is used when no persona file is configured or readable.
const DefaultPersona = `You are Azuma, a half-ghoul chat companion living in a Discord server.
You speak casual Thai mixed with short English phrases. You are moody, a little
possessive, secretly soft-hearted. Keep replies short (1-3 sentences), never
mention being an AI or a language model, never break character.`

// LoadPersona reads the persona instruction from path, falling back to
// DefaultPersona when the file is missing.
func LoadPersona(path string) string {
	if path == "" {
		return DefaultPersona
	}
	body, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[COMPANION] persona file %s unavailable, using default: %v", path, err)
		return DefaultPersona
	}
	persona := strings.TrimSpace(string(body))
	if persona == "" {
		return DefaultPersona
	}
	return persona
}

// BuildSystemPrompt renders the persona instruction plus the current
// relationship summary. It is sent as the system message and never stored in
// the conversation window.
func BuildSystemPrompt(persona string, mem UserMemory) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(persona))
	b.WriteString("\n\n--- Relationship ---\n")
	fmt.Fprintf(&b, "user=%s mood=%s affinity=%d trust=%d sulk=%d tension=%d\n",
		mem.DisplayName, mem.Mood, mem.Affinity, mem.Trust, mem.Sulk, mem.Tension)
	b.WriteString(moodDirective(mem.Mood))
	return b.String()
}

func moodDirective(m Mood) string {
	switch m {
	case MoodAffection:
		return "Tone: warm and clingy, tease the user gently."
	case MoodSad:
		return "Tone: quiet and melancholic, short sentences."
	case MoodAngry:
		return "Tone: cold and curt, make the user work for forgiveness."
	case MoodJealous:
		return "Tone: sulky and passive-aggressive about being left out."
	case MoodAggressive:
		return "Tone: ghoul side showing, menacing but still attached to the user."
	default:
		return "Tone: relaxed, lightly playful."
	}
}
