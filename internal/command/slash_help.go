package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Azuma9598/discord-bot/internal/config"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string             { return "help" }
func (c *HelpCommand) Description() string      { return "List all commands" }
func (c *HelpCommand) Category() string         { return "🛠️ Maintenance" }
func (c *HelpCommand) UserPermissions() []int64 { return []int64{} }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	byCategory := map[string][]string{}
	for _, cmd := range All() {
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], cmd.Name())
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		wi, wj := config.CategoryWeights[categories[i]], config.CategoryWeights[categories[j]]
		if wi != wj {
			return wi < wj
		}
		return categories[i] < categories[j]
	})

	var b strings.Builder
	b.WriteString("📜 คำสั่งทั้งหมด:\n")
	for _, cat := range categories {
		names := byCategory[cat]
		sort.Strings(names)
		fmt.Fprintf(&b, "%s — /%s\n", cat, strings.Join(names, " /"))
	}

	return respondEphemeral(slash.Session, slash.Event, b.String())
}

func init() {
	Register(ApplyMiddlewares(
		&HelpCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithCommandLogger(),
	))
}
