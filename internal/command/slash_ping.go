package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type PingCommand struct{}

func (c *PingCommand) Name() string             { return "ping" }
func (c *PingCommand) Description() string      { return "Check bot latency" }
func (c *PingCommand) Category() string         { return "🛠️ Maintenance" }
func (c *PingCommand) UserPermissions() []int64 { return []int64{} }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *PingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	latency := slash.Session.HeartbeatLatency().Milliseconds()
	return respond(slash.Session, slash.Event, fmt.Sprintf("🏓 Pong! %dms", latency))
}

func init() {
	Register(ApplyMiddlewares(
		&PingCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithCommandLogger(),
	))
}
