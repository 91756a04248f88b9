package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Azuma9598/discord-bot/internal/command"
)

// onReady registers every slash definition globally.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s#%s", r.User.Username, r.User.Discriminator)

	var defs []*discordgo.ApplicationCommand
	for _, cmd := range command.All() {
		if sp, ok := cmd.(command.SlashProvider); ok {
			if def := sp.SlashDefinition(); def != nil {
				defs = append(defs, def)
			}
		}
	}
	if _, err := s.ApplicationCommandBulkOverwrite(r.User.ID, "", defs); err != nil {
		log.Printf("[ERR] Failed to register slash commands: %v", err)
		return
	}
	log.Printf("[INFO] Registered %d slash commands", len(defs))
}

// onMessageCreate hands the message to every registered command; each one
// decides whether it applies.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx := &command.MessageContext{
		Session: s,
		Event:   m,
		Engine:  b.engine,
		Store:   b.store,
		Storage: b.storage,
		Config:  b.cfg,
	}
	for _, cmd := range command.All() {
		if err := cmd.Run(ctx); err != nil {
			log.Printf("[ERR] Error running command %s: %v", cmd.Name(), err)
		}
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", name)
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Engine:  b.engine,
		Store:   b.store,
		Storage: b.storage,
		Config:  b.cfg,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Command /%s failed: %v", name, err)
	}
}
