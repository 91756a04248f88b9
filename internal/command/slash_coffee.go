package command

import (
	"github.com/bwmarrin/discordgo"
)

type CoffeeCommand struct{}

func (c *CoffeeCommand) Name() string             { return "coffee" }
func (c *CoffeeCommand) Description() string      { return "Share a coffee with the bot" }
func (c *CoffeeCommand) Category() string         { return "💬 Chat" }
func (c *CoffeeCommand) UserPermissions() []int64 { return []int64{} }

func (c *CoffeeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *CoffeeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	u.AdjustAffinity(5, slash.Engine.Bounds())
	slash.Store.Save(u)

	return respond(slash.Session, slash.Event, "☕ ดื่มกาแฟแล้ว")
}

func init() {
	Register(ApplyMiddlewares(
		&CoffeeCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
