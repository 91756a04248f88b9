package companion

import "github.com/Azuma9598/discord-bot/internal/ai"

// AppendTurn appends t to history, evicting the oldest turns so at most max
// remain. max <= 0 means unbounded.
func AppendTurn(history []Turn, t Turn, max int) []Turn {
	history = append(history, t)
	if max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}
	return history
}

// PromptMessages converts the window to provider messages, oldest first. The
// generation service is order-sensitive, so this ordering is load-bearing.
// The persona instruction is built by the engine and never stored here.
func PromptMessages(history []Turn) []ai.Message {
	msgs := make([]ai.Message, 0, len(history))
	for _, t := range history {
		msgs = append(msgs, ai.Message{Role: t.Role, Content: t.Content})
	}
	return msgs
}
