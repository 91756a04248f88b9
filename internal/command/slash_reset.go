package command

import (
	"github.com/bwmarrin/discordgo"
)

type ResetCommand struct{}

func (c *ResetCommand) Name() string        { return "reset" }
func (c *ResetCommand) Description() string { return "Wipe your conversation history and scores" }
func (c *ResetCommand) Category() string    { return "⚙️ Settings" }
func (c *ResetCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageMessages}
}

func (c *ResetCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ResetCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	user := slash.Event.Member.User
	u := slash.Store.User(user.ID, user.Username)
	u.Reset()
	slash.Store.Save(u)

	return respond(slash.Session, slash.Event, "🔄 รีเซ็ตเรียบร้อย")
}

func init() {
	Register(ApplyMiddlewares(
		&ResetCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
