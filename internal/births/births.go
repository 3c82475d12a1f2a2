// Package births extracts notable living people's birthdays from a parsed
// encyclopedia date page. The pipeline is Locate -> Tokenize -> Parse ->
// Classifier; each stage is pure computation over the supplied document and
// holds no state between calls.
package births

import (
	"sort"
	"time"

	"golang.org/x/net/html"
)

// Record is one structured birth entry extracted from a list item, before
// liveness and nationality filtering.
type Record struct {
	Year int // Birth year.
	Name string
	Desc string

	// text is the cleaned right-hand segment of the source line (name plus
	// description), kept because the death and nationality heuristics need
	// the parentheticals that the name/description split may separate.
	text string
}

// Entry is one qualifying person, ready for rendering.
type Entry struct {
	Year int    `json:"year"`
	Age  int    `json:"age"`
	Name string `json:"name"`
	Desc string `json:"desc,omitempty"`
}

// Options control a single extraction run.
type Options struct {
	Section    string    // Heading to locate; defaults to "Births".
	Date       time.Time // Target date, used for age arithmetic.
	Keyword    string    // Nationality keyword filter; empty disables it.
	SortByYear bool      // Re-sort output chronologically instead of document order.
}

// Extract runs the full pipeline over a parsed date page: locate the section,
// tokenize its list items, parse each into a record, then filter and format
// the survivors. A page without the section, or with no parsable items,
// yields an empty result. A malformed individual item never aborts the run;
// it is simply skipped.
func Extract(doc *html.Node, opts Options) []Entry {
	if opts.Section == "" {
		opts.Section = "Births"
	}
	start, end, ok := Locate(doc, opts.Section)
	if !ok {
		return nil
	}

	cls := NewClassifier(opts.Keyword)
	currentYear := opts.Date.Year()

	var entries []Entry
	seen := make(map[dedupKey]bool)
	for _, raw := range Tokenize(doc, start, end) {
		rec, ok := Parse(raw, currentYear)
		if !ok {
			continue
		}
		entry, ok := cls.ClassifyAndFormat(rec, opts.Date)
		if !ok {
			continue
		}
		// Keep the first occurrence when a list block repeats an entry.
		key := dedupKey{entry.Year, entry.Desc}
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, entry)
	}

	if opts.SortByYear {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Year < entries[j].Year
		})
	}
	return entries
}

type dedupKey struct {
	year int
	desc string
}
