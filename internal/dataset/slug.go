package dataset

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug derives a stable identifier from one or more key parts, e.g.
// Slug("Boiler Room", "Blacksmith's Bundle") == "boiler-room-blacksmiths-bundle".
// Accents are folded, apostrophes dropped, any other run of non-alphanumerics
// becomes a single dash.
func Slug(parts ...string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	joined, _, err := transform.String(fold, strings.Join(parts, " "))
	if err != nil {
		joined = strings.Join(parts, " ")
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(joined) {
		switch {
		case r == '\'' || r == '’':
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}
