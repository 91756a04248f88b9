package command

import (
	"github.com/bwmarrin/discordgo"
)

type StopChatCommand struct{}

func (c *StopChatCommand) Name() string             { return "stop-chat" }
func (c *StopChatCommand) Description() string      { return "Stop the bot from talking to you anywhere" }
func (c *StopChatCommand) Category() string         { return "⚙️ Settings" }
func (c *StopChatCommand) UserPermissions() []int64 { return []int64{} }

func (c *StopChatCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *StopChatCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	u.StopChat()
	slash.Store.Save(u)

	return respond(slash.Session, slash.Event, "🛑 หยุดพูดคุยทุกห้องแล้ว")
}

func init() {
	Register(ApplyMiddlewares(
		&StopChatCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
