package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Azuma9598/discord-bot/internal/companion"
	"github.com/Azuma9598/discord-bot/internal/config"
	"github.com/Azuma9598/discord-bot/internal/storage"
)

// Bot is the Discord transport: it feeds inbound messages and slash commands
// into the companion engine and delivers replies.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	store   *companion.Store
	engine  *companion.Engine
	storage *storage.Storage
}

// NewBot builds the session up front, so every field is immutable by the time
// Run or the scheduler's SendMessage can observe it.
func NewBot(cfg *config.Config, store *companion.Store, engine *companion.Engine, st *storage.Storage) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	b := &Bot{
		dg:      dg,
		cfg:     cfg,
		store:   store,
		engine:  engine,
		storage: st,
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	return b, nil
}

// Run opens the session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// SendMessage delivers content to a channel in message-sized chunks. Wired as
// the proactive scheduler's SendFunc.
func (b *Bot) SendMessage(channelID, content string) error {
	for _, chunk := range splitMessage(content, 2000) {
		if _, err := b.dg.ChannelMessageSend(channelID, chunk); err != nil {
			return err
		}
		time.Sleep(200 * time.Millisecond)
	}
	return nil
}

func splitMessage(msg string, limit int) []string {
	var result []string
	for len(msg) > limit {
		cut := strings.LastIndex(msg[:limit], "\n")
		if cut == -1 {
			cut = limit
		}
		result = append(result, strings.TrimSpace(msg[:cut]))
		msg = strings.TrimSpace(msg[cut:])
	}
	if msg != "" {
		result = append(result, msg)
	}
	return result
}
