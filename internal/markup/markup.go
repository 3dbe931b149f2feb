// Package markup provides small queries over parsed HTML documents.
package markup

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Matcher selects nodes during a document walk.
type Matcher func(*html.Node) bool

// Element matches element nodes with the given tag name.
func Element(tag string) Matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// HasClass matches element nodes whose class list contains class.
func HasClass(class string) Matcher {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		value, ok := Attr(n, "class")
		return ok && slices.Contains(strings.Fields(value), class)
	}
}

// FindFirst returns the first descendant of root, in document order, that
// matches. Root itself is not considered.
func FindFirst(root *html.Node, match Matcher) *html.Node {
	for n := range root.Descendants() {
		if match(n) {
			return n
		}
	}
	return nil
}

// FindAll returns every descendant of root that matches, in document order.
func FindAll(root *html.Node, match Matcher) []*html.Node {
	var found []*html.Node
	for n := range root.Descendants() {
		if match(n) {
			found = append(found, n)
		}
	}
	return found
}

// Children returns the direct element children of n that match.
func Children(n *html.Node, match Matcher) []*html.Node {
	var found []*html.Node
	for c := range n.ChildNodes() {
		if match(c) {
			found = append(found, c)
		}
	}
	return found
}

// Attr returns the value of the attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent concatenates the text of n and all of its descendants.
func TextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
	}
	return sb.String()
}

// CollapsedText returns the text content of n with runs of whitespace folded
// into single spaces and the ends trimmed.
func CollapsedText(n *html.Node) string {
	return strings.Join(strings.Fields(TextContent(n)), " ")
}
