package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// deferResponse acknowledges an interaction with a deferred message.
// Required before any API call that might take longer than 3 seconds.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// optionString returns the named string option, or "" when it was not given
func optionString(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// respondError edits the deferred response into a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgResponseFailed, "error", err)
	}
}

// friendlyError maps API client errors to messages users can act on
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNPCNotFound):
		return MsgNPCNotFound
	case errors.Is(err, domain.ErrCropNotFound):
		return MsgCropNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return MsgAPIUnavailable
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 500 {
		return MsgAPIUnavailable
	}
	return MsgGenericError
}

// sendEmbed edits the deferred response into an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgResponseFailed, "error", err)
	}
}

// createEmbed creates a standard embed with the Valley Companion footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: truncate(description, MaxDescriptionLen),
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterValley,
		},
	}
}

// handleEmbedCommand defers, runs build against the API and sends the
// resulting embed, or a friendly error when build fails.
func handleEmbedCommand(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	name string,
	build func(ctx context.Context) (*discordgo.MessageEmbed, error),
) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	embed, err := build(ctx)
	if err != nil {
		slog.Error(LogMsgCommandFailed, "command", name, "error", err)
		respondError(s, i, friendlyError(err))
		return
	}
	sendEmbed(s, i, embed)
}

// seasonChoices builds the fixed choice list for season options
func seasonChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(Seasons))
	for _, season := range Seasons {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: season, Value: season})
	}
	return choices
}
