package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase capitalizes user-entered words for embed titles ("spring" -> "Spring").
// cases.Caser is stateful, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// truncate shortens s to at most limit runes, marking the cut with an ellipsis
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

// joinList renders a list for a field value, "none" when empty
func joinList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return truncate(strings.Join(items, ", "), MaxFieldValueLength)
}

// gold formats an optional price
func gold(p *int) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("%dg", *p)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// limitFields caps fields at the embed maximum and reports what was dropped
// in the footer
func limitFields(embed *discordgo.MessageEmbed, fields []*discordgo.MessageEmbedField) {
	total := len(fields)
	if total > MaxEmbedFields {
		fields = fields[:MaxEmbedFields]
		embed.Footer.Text = fmt.Sprintf("%s · showing %d of %d", FooterValley, MaxEmbedFields, total)
	}
	for _, f := range fields {
		f.Value = truncate(f.Value, MaxFieldValueLength)
	}
	embed.Fields = fields
}

// filterSummary describes active filters for an embed title, e.g. "Spring, Rain"
func filterSummary(values ...string) string {
	var active []string
	for _, v := range values {
		if v != "" {
			active = append(active, titleCase(v))
		}
	}
	if len(active) == 0 {
		return ""
	}
	return " (" + strings.Join(active, ", ") + ")"
}
