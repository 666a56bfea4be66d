// Package normalize canonicalizes free-text location names so they can be
// used as ranking scope keys.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Country canonicalizes a country name: accents stripped, whitespace
// collapsed, title case. "  españa " and "España" collapse to "Espana".
func Country(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return cases.Title(language.Und).String(strings.ToLower(out))
}
