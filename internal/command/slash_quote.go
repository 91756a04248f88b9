package command

import (
	"fmt"
	"math/rand"

	"github.com/bwmarrin/discordgo"
)

var ghoulQuotes = []string{
	"It's better to be hurt than to hurt others.",
	"All of the liabilities in this world are due to the inadequacies of the person involved.",
	"I'm not the protagonist of a novel or anything. I'm just a college student who likes to read.",
	"If an angelic being fell from the sky and tried to live in this world of ours, even they would commit many wrongs.",
	"Sometimes good people pay the biggest price.",
}

type QuoteCommand struct{}

func (c *QuoteCommand) Name() string             { return "quote" }
func (c *QuoteCommand) Description() string      { return "A random Ken Kaneki quote" }
func (c *QuoteCommand) Category() string         { return "💬 Chat" }
func (c *QuoteCommand) UserPermissions() []int64 { return []int64{} }

func (c *QuoteCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *QuoteCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	quote := ghoulQuotes[rand.Intn(len(ghoulQuotes))]
	return respond(slash.Session, slash.Event, fmt.Sprintf("🗡️ \"%s\" - Ken Kaneki", quote))
}

func init() {
	Register(ApplyMiddlewares(
		&QuoteCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
