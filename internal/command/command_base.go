package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Azuma9598/discord-bot/internal/companion"
	"github.com/Azuma9598/discord-bot/internal/config"
	"github.com/Azuma9598/discord-bot/internal/storage"
)

type Command interface {
	Name() string
	Description() string
	Category() string
	UserPermissions() []int64
	Run(ctx interface{}) error
}

type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Engine  *companion.Engine
	Store   *companion.Store
	Storage *storage.Storage
	Config  *config.Config
}

type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Engine  *companion.Engine
	Store   *companion.Store
	Storage *storage.Storage
	Config  *config.Config
}
