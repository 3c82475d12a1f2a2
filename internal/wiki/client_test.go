package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/srw3804/daily-birthdays/internal/births"
)

const fixturePage = `<html><body>
<h2 id="Births">Births</h2>
<ul><li>1950 – Jane Doe, American painter</li></ul>
</body></html>`

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "daily-birthdays-test/1.0", 5*time.Second, 100)
}

func TestClient_PageDocument(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(fixturePage))
	}))
	defer srv.Close()

	doc, err := newTestClient(srv.URL).PageDocument(context.Background(), "September", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/wiki/September_5" {
		t.Errorf("expected path /wiki/September_5, got %s", gotPath)
	}
	if gotUA != "daily-birthdays-test/1.0" {
		t.Errorf("expected custom user agent, got %q", gotUA)
	}

	// The parsed tree is usable by the engine directly.
	entries := births.Extract(doc, births.Options{
		Date:    time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
		Keyword: "American",
	})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry from fixture, got %d", len(entries))
	}
}

func TestClient_NotFoundIsNotRetried(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PageDocument(context.Background(), "September", 5)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("expected status in error, got %v", err)
	}
	if requests != 1 {
		t.Errorf("expected exactly 1 request for a 404, got %d", requests)
	}
}

func TestClient_PageURL(t *testing.T) {
	c := newTestClient("https://en.wikipedia.org/")
	want := "https://en.wikipedia.org/wiki/May_1"
	if got := c.PageURL("May", 1); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBackoff_Bounded(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := backoff(attempt)
		if d < time.Second {
			t.Errorf("attempt %d: backoff %v below base", attempt, d)
		}
		if d > 45*time.Second {
			t.Errorf("attempt %d: backoff %v above cap", attempt, d)
		}
	}
}
