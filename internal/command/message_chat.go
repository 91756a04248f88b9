package command

import (
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Azuma9598/discord-bot/internal/companion"
)

type ChatMessageCommand struct{}

func (c *ChatMessageCommand) Name() string             { return "chat" }
func (c *ChatMessageCommand) Description() string      { return "Talk to the bot in an allowed channel or by mention" }
func (c *ChatMessageCommand) Category() string         { return "💬 Chat" }
func (c *ChatMessageCommand) UserPermissions() []int64 { return []int64{} }

func (c *ChatMessageCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*MessageContext)
	if !ok {
		return nil
	}

	session := context.Session
	event := context.Event
	author := event.Author

	msg := strings.TrimSpace(cleanMention(session, event.Content))
	if msg == "" {
		return nil
	}

	u := context.Store.User(author.ID, author.Username)
	if !shouldReply(session, event, u) {
		return nil
	}

	log.Printf("[CHAT] %s (%s) @ %s: %s", author.Username, author.ID, event.ChannelID, msg)

	done := make(chan struct{})
	go keepTyping(session, event.ChannelID, done)
	defer close(done)

	reply, err := context.Engine.HandleTurn(companion.TurnRequest{
		UserID:      author.ID,
		DisplayName: author.Username,
		ChannelID:   event.ChannelID,
		Text:        msg,
	})
	if reply != "" {
		if sendErr := sendChunked(session, event.ChannelID, reply); sendErr != nil {
			return sendErr
		}
	}
	return err
}

// shouldReply: direct mention always gets a reply; otherwise the channel must
// be in the user's chat scope with talkback enabled.
func shouldReply(s *discordgo.Session, m *discordgo.MessageCreate, u *companion.UserState) bool {
	for _, mention := range m.Mentions {
		if s.State.User != nil && mention.ID == s.State.User.ID {
			return true
		}
	}
	if !u.Talkback() {
		return false
	}
	for _, id := range u.ChatChannels() {
		if id == m.ChannelID {
			return true
		}
	}
	return false
}

func cleanMention(s *discordgo.Session, content string) string {
	if s.State.User == nil {
		return content
	}
	content = strings.ReplaceAll(content, "<@"+s.State.User.ID+">", "")
	content = strings.ReplaceAll(content, "<@!"+s.State.User.ID+">", "")
	return content
}

func keepTyping(s *discordgo.Session, channelID string, done <-chan struct{}) {
	_ = s.ChannelTyping(channelID)
	ticker := time.NewTicker(8 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_ = s.ChannelTyping(channelID)
		}
	}
}

func init() {
	Register(ApplyMiddlewares(
		&ChatMessageCommand{},
		WithRoleGate(),
		WithGuildOnly(),
	))
}
