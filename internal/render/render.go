// Package render turns extracted entries into publishable fragments.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/srw3804/daily-birthdays/internal/births"
	"github.com/yuin/goldmark"
)

// HTML builds the publishable fragment: one paragraph per entry with the
// name bolded, wrapped in a birthdays container div. The fragment is meant
// to be embedded in a static page as-is.
func HTML(entries []births.Entry) string {
	var b strings.Builder
	b.WriteString("<div class='birthdays'>\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "<p><strong>%s</strong> %s %d years old (%d)",
			html.EscapeString(e.Name), births.Dash, e.Age, e.Year)
		if e.Desc != "" {
			fmt.Fprintf(&b, " %s %s", births.Dash, html.EscapeString(e.Desc))
		}
		b.WriteString("</p>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

// Markdown renders the same content as a Markdown list, for archives kept
// alongside other repository pages.
func Markdown(entries []births.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "- **%s** %s %d years old (%d)", e.Name, births.Dash, e.Age, e.Year)
		if e.Desc != "" {
			fmt.Fprintf(&b, " %s %s", births.Dash, e.Desc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MarkdownToHTML converts an archived Markdown fragment for browser preview.
func MarkdownToHTML(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
