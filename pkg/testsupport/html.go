package testsupport

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// ParseHTML parses markup as a document and fails the test on error.
func ParseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FindByClass returns element nodes carrying class, in document order.
func FindByClass(root *html.Node, class string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool {
		return slices.Contains(strings.Fields(Attr(n, "class")), class)
	})
}

// FindByTag returns element nodes with the given tag name.
func FindByTag(root *html.Node, tag string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool {
		return n.Data == tag
	})
}

// FindAll walks root depth first and collects matching element nodes.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return out
}

// Attr returns the value of attribute key on n, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries attribute key.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// DataAttrs collects attributes with prefix, keyed by the remainder.
func DataAttrs(n *html.Node, prefix string) map[string]string {
	out := make(map[string]string)
	if n == nil {
		return out
	}
	for _, attr := range n.Attr {
		if rest, ok := strings.CutPrefix(attr.Key, prefix); ok {
			out[rest] = attr.Val
		}
	}
	return out
}
