package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// MaxSlugLength caps generated slugs so a numeric suffix still fits the column.
const MaxSlugLength = 120

// Slugify turns a title into a lowercase, hyphen separated, URL-safe slug.
// Accents are stripped ("Café" becomes "cafe"); other non-ASCII characters are dropped.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, title)
	if err != nil {
		s = title
	}
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	return s
}
