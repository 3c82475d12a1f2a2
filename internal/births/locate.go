package births

import (
	"strings"

	"golang.org/x/net/html"
)

// A matchFunc is one strategy for recognizing the target section heading.
// Each returns the heading element, or nil when the strategy does not apply.
type matchFunc func(doc *html.Node, title string) *html.Node

// Strategies in order of specificity; the first hit wins.
var matchers = []matchFunc{
	matchHeadingAnchor,
	matchAnchorAnywhere,
	matchHeadingTextExact,
	matchHeadingTextContains,
}

// Locate finds the boundary of the section whose heading carries the given
// title, either as an anchor id or as visible text. start is the heading
// element; end is the next heading of equal-or-higher rank in document order,
// or nil when the section runs to the end of the document. ok is false when
// no strategy matches; callers treat that as a section with zero entries.
func Locate(doc *html.Node, title string) (start, end *html.Node, ok bool) {
	for _, match := range matchers {
		if h := match(doc, title); h != nil {
			return h, nextHeading(doc, h, headingLevel(h.Data)), true
		}
	}
	return nil, nil, false
}

// matchHeadingAnchor finds a heading whose own id, or a descendant's id,
// equals the title. Covers both <h2 id="Births"> and <h2><span id="Births">.
func matchHeadingAnchor(doc *html.Node, title string) *html.Node {
	return findNode(doc, func(n *html.Node) bool {
		if headingLevel(n.Data) == 0 {
			return false
		}
		if strings.EqualFold(attr(n, "id"), title) {
			return true
		}
		return findNode(n, func(d *html.Node) bool {
			return d != n && strings.EqualFold(attr(d, "id"), title)
		}) != nil
	})
}

// matchAnchorAnywhere finds any element with the title as its id and climbs
// to the nearest enclosing heading.
func matchAnchorAnywhere(doc *html.Node, title string) *html.Node {
	anchor := findNode(doc, func(n *html.Node) bool {
		return strings.EqualFold(attr(n, "id"), title)
	})
	for n := anchor; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && headingLevel(n.Data) > 0 {
			return n
		}
	}
	return nil
}

func matchHeadingTextExact(doc *html.Node, title string) *html.Node {
	return findNode(doc, func(n *html.Node) bool {
		return headingLevel(n.Data) > 0 && strings.EqualFold(flatText(n), title)
	})
}

func matchHeadingTextContains(doc *html.Node, title string) *html.Node {
	return findNode(doc, func(n *html.Node) bool {
		return headingLevel(n.Data) > 0 &&
			strings.Contains(strings.ToLower(flatText(n)), strings.ToLower(title))
	})
}

// nextHeading returns the first heading after start, in document order, whose
// rank is equal to or shallower than level. nil means end-of-document.
func nextHeading(doc, start *html.Node, level int) *html.Node {
	var found *html.Node
	forEachAfter(doc, start, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if l := headingLevel(n.Data); l > 0 && l <= level {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// forEachAfter visits every node strictly after start in document order
// (start's own descendants included), stopping early when visit returns false.
func forEachAfter(doc, start *html.Node, visit func(*html.Node) bool) {
	passed := false
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if passed && !visit(n) {
			return false
		}
		if n == start {
			passed = true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(doc)
}

// findNode returns the first element node in document order satisfying pred.
func findNode(root *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && pred(n) {
			found = n
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)
	return found
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func attr(n *html.Node, name string) string {
	if n.Type != html.ElementNode {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// flatText concatenates the visible text of n's descendants, joining text
// nodes with single spaces.
func flatText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
