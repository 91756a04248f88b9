package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken        string        `env:"DISCORD_TOKEN,required"`
	StoragePath         string        `env:"STORAGE_PATH" envDefault:"datastore.json"`
	StorageSaveInterval time.Duration `env:"STORAGE_SAVE_INTERVAL" envDefault:"30s"`

	AIProvider  string `env:"AI_PROVIDER" envDefault:"pollinations"`
	PersonaPath string `env:"PERSONA_PATH" envDefault:"data/persona.md"`

	HistoryLimit  int           `env:"HISTORY_LIMIT" envDefault:"12"`
	ChatCooldown  time.Duration `env:"CHAT_COOLDOWN" envDefault:"5s"`
	IdleThreshold time.Duration `env:"IDLE_THRESHOLD" envDefault:"10m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5s"`

	AffinityMin int `env:"AFFINITY_MIN" envDefault:"-100"`
	AffinityMax int `env:"AFFINITY_MAX" envDefault:"100"`
	ScoreMax    int `env:"SCORE_MAX" envDefault:"5"`

	ProactivePerMinute int `env:"PROACTIVE_PER_MINUTE" envDefault:"6"`

	AllowedRoleID     string `env:"ALLOWED_ROLE_ID"`
	AnnounceChannelID string `env:"ANNOUNCE_CHANNEL_ID"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("[ERR] config: %v", err)
	}
	return cfg
}
