package command

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

func respond(s *discordgo.Session, e *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(e.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func respondEphemeral(s *discordgo.Session, e *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(e.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// optionMap flattens slash options by name.
func optionMap(e *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := map[string]*discordgo.ApplicationCommandInteractionDataOption{}
	for _, opt := range e.ApplicationCommandData().Options {
		out[opt.Name] = opt
	}
	return out
}

// splitMessage chops a reply at Discord's message length limit, preferring
// newline boundaries.
func splitMessage(msg string, limit int) []string {
	var result []string
	for len(msg) > limit {
		cut := strings.LastIndex(msg[:limit], "\n")
		if cut == -1 {
			cut = limit
		}
		result = append(result, strings.TrimSpace(msg[:cut]))
		msg = strings.TrimSpace(msg[cut:])
	}
	if msg != "" {
		result = append(result, msg)
	}
	return result
}

// sendChunked delivers content to a channel in message-sized chunks.
func sendChunked(s *discordgo.Session, channelID, content string) error {
	for _, chunk := range splitMessage(content, 2000) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			return err
		}
		time.Sleep(200 * time.Millisecond)
	}
	return nil
}
