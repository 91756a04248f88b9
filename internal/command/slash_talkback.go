package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type TalkbackCommand struct{}

func (c *TalkbackCommand) Name() string             { return "talkback" }
func (c *TalkbackCommand) Description() string      { return "Let the bot reply to you in chat channels" }
func (c *TalkbackCommand) Category() string         { return "💬 Chat" }
func (c *TalkbackCommand) UserPermissions() []int64 { return []int64{} }

func (c *TalkbackCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "toggle",
				Description: "on or off",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "on", Value: "on"},
					{Name: "off", Value: "off"},
				},
			},
		},
	}
}

func (c *TalkbackCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	on := optionMap(slash.Event)["toggle"].StringValue() == "on"
	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	u.SetTalkback(on)
	slash.Store.Save(u)

	state := "ปิด"
	if on {
		state = "เปิด"
	}
	return respond(slash.Session, slash.Event, fmt.Sprintf("✅ Talkback %s แล้ว", state))
}

func init() {
	Register(ApplyMiddlewares(
		&TalkbackCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
