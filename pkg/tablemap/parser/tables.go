package parser

import (
	"fmt"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultSelector selects every table of a document.
const DefaultSelector = "//table"

// FindTables returns the table elements of doc matched by an XPath selector.
// Matches that are not table elements are skipped.
func FindTables(doc *html.Node, selector string) ([]*html.Node, error) {
	if selector == "" {
		selector = DefaultSelector
	}

	nodes, err := htmlquery.QueryAll(doc, selector)
	if err != nil {
		return nil, fmt.Errorf("invalid XPath selector '%s': %w", selector, err)
	}

	var tables []*html.Node
	for _, n := range nodes {
		if isElement(n, atom.Table) {
			tables = append(tables, n)
		}
	}
	return tables, nil
}

// IsTable reports whether n is a table element.
func IsTable(n *html.Node) bool {
	return n != nil && isElement(n, atom.Table)
}

// Rows returns the rows owned by table in document order. Row groups
// (thead, tbody, tfoot) are looked through; rows of nested tables are not.
func Rows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case isElement(c, atom.Tr):
				rows = append(rows, c)
			case isElement(c, atom.Table):
				// nested table
			case c.Type == html.ElementNode:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}
