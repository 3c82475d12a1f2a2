package births

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Bracketed footnote markers: [5], [a], [citation needed].
	refPattern = regexp.MustCompile(`\[[^\]]*\]`)
	wsPattern  = regexp.MustCompile(`\s+`)
	// A dash-like separator surrounded by whitespace. The source uses an en
	// dash, but tolerate em dashes and plain hyphens.
	dashSep       = regexp.MustCompile(`\s[–—-]\s`)
	bareYear      = regexp.MustCompile(`^\d{1,4}$`)
	letterPattern = regexp.MustCompile(`[A-Za-z]`)
)

// cleanText strips bracketed footnote markers and collapses whitespace runs
// to single spaces.
func cleanText(s string) string {
	s = refPattern.ReplaceAllString(s, "")
	s = wsPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Parse turns one raw list-item text like
//
//	"1932 – Carol Lawrence, American actress and singer[3]"
//
// into a Record. ok is false when the line does not look like a birth entry:
// no year separator, a year outside [1, currentYear] (which also rejects
// range buckets like "1900–1950"), or no usable name. Malformed lines are
// dropped rather than guessed at.
func Parse(raw string, currentYear int) (Record, bool) {
	text := cleanText(raw)

	loc := dashSep.FindStringIndex(text)
	if loc == nil {
		return Record{}, false
	}
	yearStr := strings.TrimSpace(text[:loc[0]])
	rest := strings.TrimSpace(text[loc[1]:])

	if !bareYear.MatchString(yearStr) {
		return Record{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > currentYear {
		return Record{}, false
	}
	// A description without a single letter is a count or date artifact.
	if !letterPattern.MatchString(rest) {
		return Record{}, false
	}

	name, desc, ok := splitNameDesc(rest)
	if !ok {
		return Record{}, false
	}
	return Record{Year: year, Name: name, Desc: desc, text: rest}, true
}

// splitNameDesc separates "Jane Doe, American painter" into name and
// description. A comma is the usual delimiter; without one, fall back to the
// next dash separator, then to taking the first two tokens as the name.
func splitNameDesc(rest string) (name, desc string, ok bool) {
	switch {
	case strings.Contains(rest, ","):
		i := strings.Index(rest, ",")
		name = strings.TrimSpace(rest[:i])
		desc = strings.TrimSpace(rest[i+1:])
	default:
		if loc := dashSep.FindStringIndex(rest); loc != nil {
			name = strings.TrimSpace(rest[:loc[0]])
			desc = strings.TrimSpace(rest[loc[1]:])
			break
		}
		tokens := strings.Fields(rest)
		if len(tokens) < 2 {
			return "", "", false
		}
		name = tokens[0] + " " + tokens[1]
		desc = strings.Join(tokens[2:], " ")
	}
	if name == "" {
		return "", "", false
	}
	return name, desc, true
}
