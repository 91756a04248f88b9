package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Azuma9598/discord-bot/internal/companion"
)

type GhoulModeCommand struct{}

func (c *GhoulModeCommand) Name() string             { return "ghoul-mode" }
func (c *GhoulModeCommand) Description() string      { return "Flip the bot into its ghoul side" }
func (c *GhoulModeCommand) Category() string         { return "💬 Chat" }
func (c *GhoulModeCommand) UserPermissions() []int64 { return []int64{} }

func (c *GhoulModeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *GhoulModeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	u.SetMood(companion.MoodAggressive)
	slash.Store.Save(u)

	return respond(slash.Session, slash.Event, "🩸 Ghoul mode activated...")
}

func init() {
	Register(ApplyMiddlewares(
		&GhoulModeCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
