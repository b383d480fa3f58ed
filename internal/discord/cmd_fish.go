package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// FishCommand lists fish filtered by season, weather and location
func FishCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "fish",
		Description: "Find fish by season, weather and location",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptSeason,
				Description: "Season the fish appears in",
				Choices:     seasonChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptWeather,
				Description: "Weather, e.g. Rain or Sunny",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptLocation,
				Description: "Where to fish, e.g. Ocean",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient) {
		q := client.FishQuery{
			Season:   optionString(i, OptSeason),
			Weather:  optionString(i, OptWeather),
			Location: optionString(i, OptLocation),
		}
		handleEmbedCommand(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			fish, err := c.ListFish(ctx, q)
			if err != nil {
				return nil, err
			}
			return fishEmbed(fish, q), nil
		})
	}

	return cmd, handler
}

func fishEmbed(fish []domain.Fish, q client.FishQuery) *discordgo.MessageEmbed {
	embed := createEmbed("🎣 Fish"+filterSummary(q.Season, q.Weather, q.Location), "", ColorFish)
	if len(fish) == 0 {
		embed.Description = MsgNoResults
		return embed
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(fish))
	for _, f := range fish {
		difficulty := "-"
		if f.Difficulty != nil {
			difficulty = fmt.Sprint(*f.Difficulty)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: f.Name,
			Value: fmt.Sprintf("%s · %s\n%s\nTime %s · Difficulty %s",
				f.Season, f.Weather, f.Location, orDash(f.Time), difficulty),
			Inline: true,
		})
	}
	limitFields(embed, fields)
	return embed
}
