// Package publish writes rendered day fragments to the output directory.
package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/srw3804/daily-birthdays/internal/births"
	"github.com/srw3804/daily-birthdays/internal/render"
)

// Format selects the on-disk representation of a day's fragment.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a configured format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatHTML, "":
		return FormatHTML, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// FileName returns the output file name for a date, e.g. "september-5.html".
func FileName(month string, day int, f Format) string {
	ext := ".html"
	if f == FormatMarkdown {
		ext = ".md"
	}
	return fmt.Sprintf("%s-%d%s", strings.ToLower(month), day, ext)
}

// Writer persists rendered fragments under a single output directory.
type Writer struct {
	dir    string
	format Format
}

func NewWriter(dir string, format Format) *Writer {
	if format == "" {
		format = FormatHTML
	}
	return &Writer{dir: dir, format: format}
}

// Write renders the entries and writes the day's file, creating the output
// directory when needed. It returns the path written.
func (w *Writer) Write(month string, day int, entries []births.Entry) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var content string
	if w.format == FormatMarkdown {
		content = render.Markdown(entries)
	} else {
		content = render.HTML(entries)
	}

	path := filepath.Join(w.dir, FileName(month, day, w.format))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
