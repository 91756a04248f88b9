package command

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Azuma9598/discord-bot/internal/companion"
	"github.com/Azuma9598/discord-bot/internal/storage"
)

type Middleware func(Command) Command

type WrappedCommand struct {
	Command
	Wrap func(ctx interface{}) error
}

func (w *WrappedCommand) Run(ctx interface{}) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *WrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// invocation extracts the common fields from either context type.
type invocation struct {
	Session   *discordgo.Session
	Member    *discordgo.Member
	GuildID   string
	ChannelID string
	Store     *companion.Store
	Storage   *storage.Storage
	RoleID    string // configured member role gate
}

func invocationOf(ctx interface{}) (invocation, bool) {
	switch v := ctx.(type) {
	case *SlashContext:
		inv := invocation{
			Session:   v.Session,
			Member:    v.Event.Member,
			GuildID:   v.Event.GuildID,
			ChannelID: v.Event.ChannelID,
			Store:     v.Store,
			Storage:   v.Storage,
		}
		if v.Config != nil {
			inv.RoleID = v.Config.AllowedRoleID
		}
		return inv, true
	case *MessageContext:
		inv := invocation{
			Session:   v.Session,
			Member:    v.Event.Member,
			GuildID:   v.Event.GuildID,
			ChannelID: v.Event.ChannelID,
			Store:     v.Store,
			Storage:   v.Storage,
		}
		if v.Config != nil {
			inv.RoleID = v.Config.AllowedRoleID
		}
		return inv, true
	}
	return invocation{}, false
}

// WithGuildOnly silently drops invocations outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				if inv, ok := invocationOf(ctx); ok && inv.GuildID == "" {
					if s, ok := ctx.(*SlashContext); ok {
						return respondEphemeral(s.Session, s.Event, "❌ คำสั่งนี้ใช้ได้เฉพาะในเซิร์ฟเวอร์")
					}
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithRoleGate requires the configured member role (ALLOWED_ROLE_ID). With no
// role configured the gate is open.
func WithRoleGate() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				inv, ok := invocationOf(ctx)
				if !ok || inv.RoleID == "" || inv.Member == nil {
					return cmd.Run(ctx)
				}
				for _, r := range inv.Member.Roles {
					if r == inv.RoleID {
						return cmd.Run(ctx)
					}
				}
				if s, ok := ctx.(*SlashContext); ok {
					return respondEphemeral(s.Session, s.Event, "❌ คุณไม่มียศที่สามารถใช้คำสั่งบอทนี้ได้")
				}
				return nil
			},
		}
	}
}

// WithUserPermissionCheck enforces the command's UserPermissions list.
// Administrators always pass; an empty list means everyone.
func WithUserPermissionCheck() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				inv, ok := invocationOf(ctx)
				if !ok || inv.GuildID == "" || inv.Member == nil || inv.Member.User == nil {
					return cmd.Run(ctx)
				}
				required := cmd.UserPermissions()
				if len(required) == 0 {
					return cmd.Run(ctx)
				}
				perms, err := inv.Session.UserChannelPermissions(inv.Member.User.ID, inv.ChannelID)
				if err != nil {
					return err
				}
				if perms&discordgo.PermissionAdministrator != 0 {
					return cmd.Run(ctx)
				}
				for _, p := range required {
					if perms&p != 0 {
						return cmd.Run(ctx)
					}
				}
				if s, ok := ctx.(*SlashContext); ok {
					return respondEphemeral(s.Session, s.Event, "❌ ไม่มีสิทธิ์")
				}
				return nil
			},
		}
	}
}

// WithCommandLogger records each invocation in the command history and marks
// the invoking user as seen, so an actively commanding user never reads as
// idle to the proactive sweep.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx interface{}) error {
				err := cmd.Run(ctx)
				inv, ok := invocationOf(ctx)
				if !ok || inv.Member == nil || inv.Member.User == nil {
					return err
				}
				if inv.Store != nil {
					u := inv.Store.User(inv.Member.User.ID, inv.Member.User.Username)
					u.TouchSeen(time.Now())
					inv.Store.Save(u)
				}
				if inv.Storage == nil {
					return err
				}
				rec := storage.CommandHistoryRecord{
					ChannelID: inv.ChannelID,
					UserID:    inv.Member.User.ID,
					Username:  inv.Member.User.Username,
					Command:   cmd.Name(),
					Datetime:  time.Now(),
				}
				if logErr := inv.Storage.AppendCommandToHistory(rec); logErr != nil {
					log.Printf("[WARN] Failed to log command /%s: %v", cmd.Name(), logErr)
				}
				return err
			},
		}
	}
}
