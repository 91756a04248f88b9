// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Azuma9598/discord-bot/internal/ai"
	"github.com/Azuma9598/discord-bot/internal/companion"
	"github.com/Azuma9598/discord-bot/internal/config"
	"github.com/Azuma9598/discord-bot/internal/discord"
	"github.com/Azuma9598/discord-bot/internal/storage"
)

func main() {
	log.Println("[INFO] Starting companion bot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	store, err := storage.New(ctx, cfg.StoragePath, cfg.StorageSaveInterval)
	if err != nil {
		log.Fatal(err)
	}

	users := companion.NewStore(store)
	provider := ai.NewProvider(cfg.AIProvider)

	engineCfg := companion.DefaultEngineConfig()
	engineCfg.HistoryLimit = cfg.HistoryLimit
	engineCfg.Cooldown = cfg.ChatCooldown
	engineCfg.Bounds = companion.Bounds{
		AffinityMin: cfg.AffinityMin,
		AffinityMax: cfg.AffinityMax,
		ScoreMax:    cfg.ScoreMax,
	}
	engineCfg.Persona = companion.LoadPersona(cfg.PersonaPath)
	engine := companion.NewEngine(users, provider, engineCfg)

	bot, err := discord.NewBot(cfg, users, engine, store)
	if err != nil {
		log.Fatal(err)
	}

	scheduler := companion.NewScheduler(
		users,
		engine,
		companion.NewCallLimiter(cfg.ProactivePerMinute),
		companion.SchedulerConfig{
			SweepInterval: cfg.SweepInterval,
			IdleThreshold: cfg.IdleThreshold,
		},
		bot.SendMessage,
	)
	go scheduler.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	// The datastore's final flush waits for its context, so cancel precedes Close.
	if err := store.Close(); err != nil {
		log.Println("[ERR] Storage close:", err)
	}
	log.Println("[INFO] Discord bot exited cleanly")
}
