package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type PurgeCommand struct{}

func (c *PurgeCommand) Name() string        { return "purge" }
func (c *PurgeCommand) Description() string { return "Bulk delete recent messages in this channel" }
func (c *PurgeCommand) Category() string    { return "📢 Server" }
func (c *PurgeCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageMessages}
}

func (c *PurgeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minAmount := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many messages to delete (max 100)",
				MinValue:    &minAmount,
				MaxValue:    100,
			},
		},
	}
}

func (c *PurgeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return nil
	}

	amount := 1
	if opt, exists := optionMap(slash.Event)["amount"]; exists {
		amount = int(opt.IntValue())
	}

	msgs, err := slash.Session.ChannelMessages(slash.Event.ChannelID, amount, "", "", "")
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if len(ids) > 0 {
		if err := slash.Session.ChannelMessagesBulkDelete(slash.Event.ChannelID, ids); err != nil {
			return err
		}
	}

	return respondEphemeral(slash.Session, slash.Event, fmt.Sprintf("🚮 ลบ %d ข้อความ", len(ids)))
}

func init() {
	Register(ApplyMiddlewares(
		&PurgeCommand{},
		WithRoleGate(),
		WithGuildOnly(),
		WithUserPermissionCheck(),
		WithCommandLogger(),
	))
}
