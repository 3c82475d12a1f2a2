package births

import "golang.org/x/net/html"

// Tokenize yields the flattened text of every top-level list item between
// start (exclusive) and end (exclusive), in document order. Only direct
// children of each list block are emitted: a sub-list nested inside a list
// item is already part of that item's flattened text, so emitting its items
// separately would double-count them.
func Tokenize(doc, start, end *html.Node) []string {
	var items []string
	forEachAfter(doc, start, func(n *html.Node) bool {
		if n == end {
			return false
		}
		if !isList(n) || underListItem(n) {
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				if t := flatText(c); t != "" {
					items = append(items, t)
				}
			}
		}
		return true
	})
	return items
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol")
}

// underListItem reports whether n sits inside an li element, meaning the
// enclosing item's text already covers it.
func underListItem(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "li" {
			return true
		}
	}
	return false
}
