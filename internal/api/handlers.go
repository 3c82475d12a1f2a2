package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/srw3804/daily-birthdays/internal/births"
	"github.com/srw3804/daily-birthdays/internal/render"
)

// Published pages are named like "september-5"; anything else is a miss, not
// a path to resolve.
var pageName = regexp.MustCompile(`^[a-z]+-[0-9]{1,2}$`)

// handlePage serves a previously published fragment. Markdown archives are
// converted to HTML on the way out.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := strings.TrimSuffix(chi.URLParam(r, "page"), ".html")
	if !pageName.MatchString(page) {
		http.NotFound(w, r)
		return
	}

	if data, err := os.ReadFile(filepath.Join(s.cfg.OutputDir, page+".html")); err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(data)
		return
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.OutputDir, page+".md"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	out, err := render.MarkdownToHTML(data)
	if err != nil {
		s.log.Error("markdown conversion failed", "page", page, "error", err)
		http.Error(w, "conversion failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(out))
}

type generateResponse struct {
	Month   string         `json:"month"`
	Day     int            `json:"day"`
	Count   int            `json:"count"`
	Entries []births.Entry `json:"entries"`
}

// handleGenerate fetches the date page and runs the extraction pipeline on
// demand, returning the qualifying entries as JSON.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	month, ok := normalizeMonth(chi.URLParam(r, "month"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown month")
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 1 || day > 31 {
		writeError(w, http.StatusBadRequest, "day must be in [1, 31]")
		return
	}

	doc, err := s.client.PageDocument(r.Context(), month, day)
	if err != nil {
		s.log.Error("fetch failed", "month", month, "day", day, "error", err)
		writeError(w, http.StatusBadGateway, "source fetch failed")
		return
	}

	entries := births.Extract(doc, births.Options{
		Section: s.cfg.Section,
		Date:    time.Now(),
		Keyword: s.cfg.Keyword,
	})
	if entries == nil {
		entries = []births.Entry{}
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Month:   month,
		Day:     day,
		Count:   len(entries),
		Entries: entries,
	})
}

// normalizeMonth maps a case-insensitive month name to its canonical form.
func normalizeMonth(name string) (string, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return m.String(), true
		}
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
