package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type StatusCommand struct{}

func (c *StatusCommand) Name() string             { return "status" }
func (c *StatusCommand) Description() string      { return "Show your relationship status with the bot" }
func (c *StatusCommand) Category() string         { return "💬 Chat" }
func (c *StatusCommand) UserPermissions() []int64 { return []int64{} }

func (c *StatusCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *StatusCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	mem := u.Snapshot()

	channels := strings.Join(mem.ChatChannels, ", ")
	if channels == "" {
		channels = "none"
	}
	lastSeen := "never"
	if !mem.LastSeen.IsZero() {
		lastSeen = mem.LastSeen.Format("2006-01-02 15:04:05")
	}

	return respond(slash.Session, slash.Event, fmt.Sprintf(
		"💖 Affinity: %d\n"+
			"😎 Mood: %s\n"+
			"🤝 Trust: %d | 😤 Sulk: %d | ⚡ Tension: %d\n"+
			"🕒 Last seen: %s\n"+
			"📢 Chat channels: %s\n"+
			"🤖 Autochat: %t",
		mem.Affinity, mem.Mood, mem.Trust, mem.Sulk, mem.Tension, lastSeen, channels, mem.Autochat))
}

func init() {
	Register(ApplyMiddlewares(
		&StatusCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
