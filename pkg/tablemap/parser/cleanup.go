// Package parser adapts parsed HTML tables for span resolution.
//
// It owns everything that touches golang.org/x/net/html nodes: cloning a table
// subtree, stripping whitespace-only text, enumerating rows and cells and reading
// their span attributes.
package parser

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

var textNodes = xpath.MustCompile("//text()")

// CloneNode returns a deep copy of n. The copy has no parent or siblings.
func CloneNode(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}

	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(CloneNode(child))
	}
	return c
}

// Cleanup removes every whitespace-only text node below root and returns how
// many were removed.
func Cleanup(root *html.Node) int {
	removed := 0
	for _, text := range htmlquery.QuerySelectorAll(root, textNodes) {
		if text.Type != html.TextNode || text.Parent == nil {
			continue
		}
		if strings.TrimSpace(text.Data) == "" {
			text.Parent.RemoveChild(text)
			removed++
		}
	}
	return removed
}
