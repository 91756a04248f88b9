package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	discordMaxMessageLength = 2000
	codeBlockOpen           = "```md"
	codeBlockClose          = "```"
)

var maxLogContentLength = discordMaxMessageLength - len(codeBlockOpen) - len(codeBlockClose)

type LogCommand struct{}

func (c *LogCommand) Name() string        { return "log" }
func (c *LogCommand) Description() string { return "Review recent command invocations" }
func (c *LogCommand) Category() string    { return "🛠️ Maintenance" }
func (c *LogCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageMessages}
}

func (c *LogCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *LogCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	records, err := slash.Storage.FetchCommandHistory()
	if err != nil {
		return respondEphemeral(slash.Session, slash.Event, fmt.Sprintf("❌ อ่านประวัติไม่ได้: %v", err))
	}
	if len(records) == 0 {
		return respondEphemeral(slash.Session, slash.Event, "ยังไม่มีประวัติคำสั่ง")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-19s\t%-15s\t%s\n", "# Datetime", "# Username", "# Command")
	// newest first
	for idx := len(records) - 1; idx >= 0; idx-- {
		r := records[idx]
		line := fmt.Sprintf("%-19s\t%-15s\t/%s\n",
			r.Datetime.Format("2006-01-02 15:04:05"), r.Username, r.Command)
		if b.Len()+len(line) > maxLogContentLength {
			break
		}
		b.WriteString(line)
	}

	out := codeBlockOpen + "\n" + b.String() + codeBlockClose
	return respondEphemeral(slash.Session, slash.Event, out)
}

func init() {
	Register(ApplyMiddlewares(
		&LogCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
