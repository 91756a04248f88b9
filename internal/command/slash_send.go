package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SendCommand struct{}

func (c *SendCommand) Name() string        { return "send" }
func (c *SendCommand) Description() string { return "Send a message through the bot" }
func (c *SendCommand) Category() string    { return "📢 Server" }
func (c *SendCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageMessages}
}

func (c *SendCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minCount := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Message text",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Target channel (defaults to this one)",
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "How many times (max 10)",
				MinValue:    &minCount,
				MaxValue:    10,
			},
		},
	}
}

func (c *SendCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	opts := optionMap(slash.Event)
	content := opts["message"].StringValue()

	channelID := slash.Event.ChannelID
	if opt, exists := opts["channel"]; exists {
		if ch := opt.ChannelValue(slash.Session); ch != nil {
			channelID = ch.ID
		}
	}
	count := 1
	if opt, exists := opts["count"]; exists {
		count = int(opt.IntValue())
	}

	for i := 0; i < count; i++ {
		if _, err := slash.Session.ChannelMessageSend(channelID, content); err != nil {
			return err
		}
	}

	return respondEphemeral(slash.Session, slash.Event, fmt.Sprintf("✅ ส่งข้อความ %d ครั้งแล้ว", count))
}

func init() {
	Register(ApplyMiddlewares(
		&SendCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
