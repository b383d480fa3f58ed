package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// CropsCommand lists crops, optionally for one season
func CropsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "crops",
		Description: "List crops with growth times and prices",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptSeason,
				Description: "Only crops that grow in this season",
				Choices:     seasonChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient) {
		season := optionString(i, OptSeason)
		handleEmbedCommand(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			crops, err := c.ListCrops(ctx, season)
			if err != nil {
				return nil, err
			}
			return cropsEmbed(crops, season), nil
		})
	}

	return cmd, handler
}

func cropsEmbed(crops []domain.Crop, season string) *discordgo.MessageEmbed {
	embed := createEmbed("🌱 Crops"+filterSummary(season), "", ColorCrops)
	if len(crops) == 0 {
		embed.Description = MsgNoResults
		return embed
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(crops))
	for _, crop := range crops {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   crop.Name,
			Value:  cropLine(crop),
			Inline: true,
		})
	}
	limitFields(embed, fields)
	return embed
}

func cropLine(crop domain.Crop) string {
	growth := fmt.Sprintf("%d days", crop.GrowthTime)
	if crop.RegrowthTime != nil {
		growth += fmt.Sprintf(" (regrows %d)", *crop.RegrowthTime)
	}
	return fmt.Sprintf("%s\n%s\nSell %s · Seed %s", crop.Season, growth, gold(crop.SellPrice), gold(crop.SeedPrice))
}
