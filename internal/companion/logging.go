package companion

import (
	"log"
	"strings"

	"github.com/Azuma9598/discord-bot/internal/ai"
)

// logPrompt traces one outbound prompt: system preview plus per-message sizes.
func logPrompt(userID string, messages []ai.Message) {
	log.Printf("[COMPANION] prompt user=%s messages=%d", userID, len(messages))
	if len(messages) == 0 {
		return
	}
	log.Printf("[COMPANION] system_len=%d preview: %s",
		len(messages[0].Content), truncateForLog(messages[0].Content, 300))
	for i := 1; i < len(messages); i++ {
		m := messages[i]
		log.Printf("[COMPANION] msg[%d] role=%s len=%d: %s",
			i, m.Role, len(m.Content), truncateForLog(m.Content, 160))
	}
}

func truncateForLog(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
