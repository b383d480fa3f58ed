package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// BundlesCommand lists community center bundles, optionally for one room
func BundlesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "bundles",
		Description: "List community center bundles",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptRoom,
				Description: "Exact room name, e.g. Pantry",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient) {
		room := optionString(i, OptRoom)
		handleEmbedCommand(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			bundles, err := c.ListBundles(ctx, room)
			if err != nil {
				return nil, err
			}
			return bundlesEmbed(bundles, room), nil
		})
	}

	return cmd, handler
}

func bundlesEmbed(bundles []domain.Bundle, room string) *discordgo.MessageEmbed {
	title := "📦 Bundles"
	if room != "" {
		title += " (" + room + ")"
	}
	embed := createEmbed(title, "", ColorBundles)
	if len(bundles) == 0 {
		embed.Description = MsgNoResults
		return embed
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(bundles))
	for _, b := range bundles {
		value := joinList(b.Items)
		if b.Reward != "" {
			value += "\nReward: " + b.Reward
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s · %s", b.Room, b.Name),
			Value: value,
		})
	}
	limitFields(embed, fields)
	return embed
}
