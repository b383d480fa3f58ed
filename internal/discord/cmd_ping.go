package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
)

// PingCommand answers with the bot's own liveness and the API's round-trip time
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check the bot and the Valley data API",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient) {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: MsgPong + "\n" + apiStatusLine(c),
			},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}

func apiStatusLine(c *client.APIClient) string {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	if err := c.Health(ctx); err != nil {
		slog.Warn("API health check failed", "error", err)
		return MsgPingAPIDown
	}
	return fmt.Sprintf(MsgPingAPIUp, time.Since(start).Milliseconds())
}
