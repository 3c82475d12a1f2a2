package births

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dash is the canonical field separator used in rendered entries.
const Dash = "–" // en dash

var (
	commaSpacing = regexp.MustCompile(`\s*,\s*`)
	dashSpacing  = regexp.MustCompile(`\s*–\s*`)
)

// Normalize tidies a description for display: drops a leading nationality
// keyword so "American painter" reads as "Painter" (hyphenated compounds
// like "Chinese-American" are left alone), canonicalizes spacing around
// commas and en dashes, trims trailing punctuation, and capitalizes the
// first character. Normalizing an already-normalized description is a no-op.
func (c *Classifier) Normalize(desc string) string {
	d := strings.TrimSpace(desc)
	if c.keyword != "" {
		// Case-insensitive: the final capitalization step must not re-expose
		// a strippable keyword on a second pass.
		for {
			word, rest, found := strings.Cut(d, " ")
			if !found || !strings.EqualFold(word, c.keyword) {
				break
			}
			d = strings.TrimSpace(rest)
		}
	}
	d = commaSpacing.ReplaceAllString(d, ", ")
	d = dashSpacing.ReplaceAllString(d, " "+Dash+" ")
	d = cleanText(d)
	d = strings.TrimRight(d, " ,;:")
	return capitalize(d)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// String renders the entry as plain text, e.g.
// "Jane Doe – 75 years old (1950) – Painter". The description segment is
// omitted when empty.
func (e Entry) String() string {
	s := fmt.Sprintf("%s %s %d years old (%d)", e.Name, Dash, e.Age, e.Year)
	if e.Desc != "" {
		s += fmt.Sprintf(" %s %s", Dash, e.Desc)
	}
	return s
}
