package births

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

const datePage = `<html><body>
<h2><span class="mw-headline" id="Events">Events</span></h2>
<ul><li>1886 – Something happened.</li></ul>
<h2><span class="mw-headline" id="Births">Births</span></h2>
<ul>
<li>1887 – Old Person, American judge (d. 1950)[2]</li>
<li>1950 – Jane Doe, American painter</li>
</ul>
<ul>
<li>1960 – Bob Lee, Actor[5]</li>
</ul>
<h2><span class="mw-headline" id="Deaths">Deaths</span></h2>
<ul><li>1995 – Dead Guy, American poet (b. 1900)</li></ul>
</body></html>`

func TestLocate_AnchorInsideHeading(t *testing.T) {
	doc := parseDoc(t, datePage)
	start, end, ok := Locate(doc, "Births")
	if !ok {
		t.Fatal("expected section to be found")
	}
	if got := flatText(start); got != "Births" {
		t.Errorf("expected start heading %q, got %q", "Births", got)
	}
	if end == nil {
		t.Fatal("expected an end heading, got end-of-document")
	}
	if got := flatText(end); got != "Deaths" {
		t.Errorf("expected end heading %q, got %q", "Deaths", got)
	}
}

func TestLocate_AnchorOnHeadingItself(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<h2 id="Births">Births</h2>
<ul><li>1950 – Jane Doe, American painter</li></ul>
</body></html>`)
	start, end, ok := Locate(doc, "births")
	if !ok {
		t.Fatal("expected case-insensitive id match")
	}
	if start.Data != "h2" {
		t.Errorf("expected h2 start, got %q", start.Data)
	}
	if end != nil {
		t.Errorf("expected end-of-document, got %q", flatText(end))
	}
}

func TestLocate_HeadingTextFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<h2>Events</h2>
<h2>Births</h2>
<ul><li>1950 – Jane Doe, American painter</li></ul>
<h2>Deaths</h2>
</body></html>`)
	start, end, ok := Locate(doc, "Births")
	if !ok {
		t.Fatal("expected text match with no anchors")
	}
	if got := flatText(start); got != "Births" {
		t.Errorf("expected %q, got %q", "Births", got)
	}
	if end == nil || flatText(end) != "Deaths" {
		t.Errorf("expected end at Deaths heading, got %v", end)
	}
}

func TestLocate_EndSkipsDeeperHeadings(t *testing.T) {
	// An h3 sub-heading inside the section must not terminate it.
	doc := parseDoc(t, `<html><body>
<h2 id="Births">Births</h2>
<h3>Pre-1600</h3>
<ul><li>1550 – Some One, English writer</li></ul>
<h2 id="Deaths">Deaths</h2>
</body></html>`)
	start, end, ok := Locate(doc, "Births")
	if !ok {
		t.Fatal("expected section to be found")
	}
	if start.Data != "h2" {
		t.Fatalf("expected h2 start, got %q", start.Data)
	}
	if end == nil || attr(end, "id") != "Deaths" {
		t.Errorf("expected end at Deaths h2, got %v", end)
	}
}

func TestLocate_NotFound(t *testing.T) {
	doc := parseDoc(t, `<html><body><h2>Events</h2><p>Nothing here.</p></body></html>`)
	_, _, ok := Locate(doc, "Births")
	if ok {
		t.Error("expected NotFound for a page without the section")
	}
}
