package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *client.APIClient
	AppID    string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token  string
	AppID  string
	APIURL string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:  s,
		Client:   client.NewAPIClient(cfg.APIURL),
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

// Run starts the bot and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
