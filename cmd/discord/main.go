package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/discord"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.FromEnv("valley-companion-discord"))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	bot.Registry.RegisterAll(discord.DefaultCommands()...)

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	// Commands already registered keep working, so this is not fatal
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the bot configuration from the environment.
// Returns error if required variables are missing.
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	return discord.Config{
		Token:  token,
		AppID:  appID,
		APIURL: apiURL,
	}, nil
}
