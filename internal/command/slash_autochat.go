package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type AutochatCommand struct{}

func (c *AutochatCommand) Name() string             { return "autochat" }
func (c *AutochatCommand) Description() string      { return "Let the bot start conversations when you go quiet" }
func (c *AutochatCommand) Category() string         { return "💬 Chat" }
func (c *AutochatCommand) UserPermissions() []int64 { return []int64{} }

func (c *AutochatCommand) SlashDefinition() *discordgo.ApplicationCommand {
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

func (c *AutochatCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	on := optionMap(slash.Event)["toggle"].StringValue() == "on"
	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	u.SetAutochat(on)
	slash.Store.Save(u)

	state := "ปิด"
	if on {
		state = "เปิด"
	}
	return respond(slash.Session, slash.Event, fmt.Sprintf("🤖 Auto-chat %s แล้ว", state))
}

func init() {
	Register(ApplyMiddlewares(
		&AutochatCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
