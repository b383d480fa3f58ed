package discord

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/client"
)

// SearchCommand searches recipes, fish and crops by name
func SearchCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "search",
		Description: "Search recipes, fish and crops by name",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptQuery,
				Description: "Part of a name, at least 2 characters",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient) {
		query := optionString(i, OptQuery)
		handleEmbedCommand(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			results, err := c.Search(ctx, query)
			if err != nil {
				return nil, err
			}
			return searchEmbed(query, results), nil
		})
	}

	return cmd, handler
}

func searchEmbed(query string, results []catalog.SearchResult) *discordgo.MessageEmbed {
	embed := createEmbed("🔍 "+strings.TrimSpace(query), "", ColorSearch)
	switch {
	case utf8.RuneCountInString(strings.TrimSpace(query)) < catalog.MinSearchLength:
		embed.Description = MsgQueryTooShort
		return embed
	case len(results) == 0:
		embed.Description = MsgNoResults
		return embed
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		line := "**" + r.Name + "** · " + titleCase(r.Type)
		if r.Category != nil && *r.Category != "" {
			line += " (" + *r.Category + ")"
		}
		lines = append(lines, line)
	}
	embed.Description = truncate(strings.Join(lines, "\n"), MaxDescriptionLen)
	return embed
}
