package command

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

type AnnounceCommand struct{}

func (c *AnnounceCommand) Name() string        { return "announce" }
func (c *AnnounceCommand) Description() string { return "Post an announcement embed" }
func (c *AnnounceCommand) Category() string    { return "📢 Server" }
func (c *AnnounceCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageMessages}
}

func (c *AnnounceCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Announcement text",
				Required:    true,
			},
		},
	}
}

func (c *AnnounceCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	content := optionMap(slash.Event)["message"].StringValue()

	channelID := slash.Event.ChannelID
	if slash.Config != nil && slash.Config.AnnounceChannelID != "" {
		channelID = slash.Config.AnnounceChannelID
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📢 ประกาศ",
		Description: content,
		Color:       0xFF0000,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if _, err := slash.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return err
	}

	return respondEphemeral(slash.Session, slash.Event, "✅ ประกาศแล้ว")
}

func init() {
	Register(ApplyMiddlewares(
		&AnnounceCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
