package scraper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText composes unicode (NFC), replaces non-breaking spaces and
// collapses whitespace. Feeds mix decomposed accents and &nbsp; in titles.
func CleanText(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
