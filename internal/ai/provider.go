package ai

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Provider interface {
	Generate(messages []Message) (string, error)
}

// NewProvider picks a provider by engine name. Unknown engines fall back to
// pollinations so a bad env var does not take the bot down.
func NewProvider(engine string) Provider {
	switch engine {
	case "g4f":
		return NewG4FProvider("g4f:gpt-oss-120b")
	case "pollinations", "":
		return NewPollinationsProvider()
	default:
		return NewPollinationsProvider()
	}
}
