package births

import (
	"regexp"
	"time"
)

// Ages above this are treated as parse noise rather than people.
const maxAge = 125

// deathRule is one heuristic for spotting a deceased person in entry text.
// The source data has no structured liveness field, so detection is
// best-effort text matching: unconventional phrasing produces false
// negatives, incidental wording false positives.
type deathRule struct {
	name    string
	pattern *regexp.Regexp
}

var deathRules = []deathRule{
	{"word_died", regexp.MustCompile(`(?i)\bdied\b`)},
	{"word_death", regexp.MustCompile(`(?i)\bdeath\b`)},
	{"abbrev_death_year", regexp.MustCompile(`(?i)\bd\.\s*\d{3,4}\b`)},
	{"dagger", regexp.MustCompile(`†`)},
	{"paren_d", regexp.MustCompile(`(?i)\(d[.)]`)},
	{"paren_died", regexp.MustCompile(`(?i)\(died\b`)},
	{"lifespan_range", regexp.MustCompile(`[–—-]\s*\d{3,4}\)`)},
}

// LooksDead reports whether any death heuristic matches the entry text.
func LooksDead(text string) bool {
	for _, r := range deathRules {
		if r.pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Classifier applies the liveness and nationality rules to parsed records
// and normalizes the descriptions of the survivors.
type Classifier struct {
	keyword   string
	keywordRe *regexp.Regexp // nil when the filter is disabled
}

// NewClassifier builds a classifier for the given nationality keyword. An
// empty keyword disables the nationality filter entirely.
func NewClassifier(keyword string) *Classifier {
	c := &Classifier{keyword: keyword}
	if keyword != "" {
		// Whole-word match, allowing hyphenated compounds such as
		// "Chinese-American" for keyword "American".
		c.keywordRe = regexp.MustCompile(`\b[A-Za-z-]*` + regexp.QuoteMeta(keyword) + `\b`)
	}
	return c
}

// ClassifyAndFormat decides whether a record qualifies and, when it does,
// returns the finished entry. ok is false for deceased people, non-matching
// nationalities, and implausible ages.
func (c *Classifier) ClassifyAndFormat(rec Record, date time.Time) (Entry, bool) {
	if LooksDead(rec.text) {
		return Entry{}, false
	}
	if c.keywordRe != nil && !c.keywordRe.MatchString(rec.text) {
		return Entry{}, false
	}
	age := date.Year() - rec.Year
	if age < 0 || age > maxAge {
		return Entry{}, false
	}
	return Entry{
		Year: rec.Year,
		Age:  age,
		Name: rec.Name,
		Desc: c.Normalize(rec.Desc),
	}, true
}
