package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// GiftsCommand shows an NPC's gift preferences
func GiftsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gifts",
		Description: "Show what a villager loves, likes and hates",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptName,
				Description: "Villager name",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, c *client.APIClient) {
		name := optionString(i, OptName)
		handleEmbedCommand(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			npc, err := c.GetNPC(ctx, name)
			if err != nil {
				return nil, err
			}
			return giftsEmbed(npc), nil
		})
	}

	return cmd, handler
}

func giftsEmbed(npc *domain.NPC) *discordgo.MessageEmbed {
	embed := createEmbed("🎁 "+npc.Name,
		fmt.Sprintf("Birthday: %s\nLives at: %s", npc.Birthday, npc.Location),
		ColorGifts)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "❤️ Loves", Value: joinList(npc.Loves)},
		{Name: "🙂 Likes", Value: joinList(npc.Likes)},
		{Name: "😠 Hates", Value: joinList(npc.Hates)},
	}
	return embed
}
