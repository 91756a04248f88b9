package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SetChatCommand struct{}

func (c *SetChatCommand) Name() string             { return "set-chat" }
func (c *SetChatCommand) Description() string      { return "Add a channel the bot may talk to you in" }
func (c *SetChatCommand) Category() string         { return "⚙️ Settings" }
func (c *SetChatCommand) UserPermissions() []int64 { return []int64{} }

func (c *SetChatCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Text channel to allow",
				Required:    true,
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
				},
			},
		},
	}
}

func (c *SetChatCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	channel := optionMap(slash.Event)["channel"].ChannelValue(slash.Session)
	if channel == nil || channel.Type != discordgo.ChannelTypeGuildText {
		return respond(slash.Session, slash.Event, "❌ ไม่ใช่ text channel")
	}

	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	u.AddChatChannel(channel.ID)
	slash.Store.Save(u)

	return respond(slash.Session, slash.Event, fmt.Sprintf("✅ ตั้งห้อง %s แล้ว", channel.Name))
}

func init() {
	Register(ApplyMiddlewares(
		&SetChatCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
