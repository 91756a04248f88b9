package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type AffinityCommand struct{}

func (c *AffinityCommand) Name() string             { return "affinity" }
func (c *AffinityCommand) Description() string      { return "Adjust how close the bot feels to you" }
func (c *AffinityCommand) Category() string         { return "💬 Chat" }
func (c *AffinityCommand) UserPermissions() []int64 { return []int64{} }

func (c *AffinityCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Delta to apply (can be negative)",
				Required:    true,
			},
		},
	}
}

func (c *AffinityCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	amount := int(optionMap(slash.Event)["amount"].IntValue())
	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	now := u.AdjustAffinity(amount, slash.Engine.Bounds())
	slash.Store.Save(u)

	return respond(slash.Session, slash.Event, fmt.Sprintf("💖 ความสนิทตอนนี้ %d", now))
}

func init() {
	Register(ApplyMiddlewares(
		&AffinityCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
