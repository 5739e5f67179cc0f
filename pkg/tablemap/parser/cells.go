package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/grid"
)

// Span attribute names.
const (
	AttrRowSpan = "rowspan"
	AttrColSpan = "colspan"
)

// Largest spans honoured, matching the limits browsers apply.
const (
	MaxRowSpan = 65534
	MaxColSpan = 1000
)

// Cells returns the element children of a row in document order.
// A cell's index is its position in the returned slice.
func Cells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			cells = append(cells, c)
		}
	}
	return cells
}

// Span reads a span attribute of a cell. A missing attribute counts as 1.
// Values that are not positive integers return 1 and grid.ErrMalformedSpan.
// Values above MaxRowSpan or MaxColSpan are clamped to the limit and also
// return grid.ErrMalformedSpan.
func Span(cell *html.Node, key string) (int, error) {
	val, ok := attr(cell, key)
	if !ok {
		return 1, nil
	}

	limit := MaxColSpan
	if strings.EqualFold(key, AttrRowSpan) {
		limit = MaxRowSpan
	}

	n, err := strconv.Atoi(strings.TrimSpace(val))
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		n, err = limit+1, nil
	}
	if err != nil || n < 1 {
		return 1, fmt.Errorf("%w: %s=%q", grid.ErrMalformedSpan, key, val)
	}
	if n > limit {
		return limit, fmt.Errorf("%w: %s=%q exceeds %d", grid.ErrMalformedSpan, key, val, limit)
	}
	return n, nil
}

// ReadRow snapshots the spans of a row's cells. Malformed span values are
// clamped and returned as errors alongside the row.
func ReadRow(cells []*html.Node) (grid.Row, []error) {
	row := make(grid.Row, len(cells))
	var errs []error
	for i, cell := range cells {
		rs, err := Span(cell, AttrRowSpan)
		if err != nil {
			errs = append(errs, fmt.Errorf("cell %d: %w", i, err))
		}
		cs, err := Span(cell, AttrColSpan)
		if err != nil {
			errs = append(errs, fmt.Errorf("cell %d: %w", i, err))
		}
		row[i] = grid.Cell{RowSpan: rs, ColSpan: cs}
	}
	return row, errs
}

// CellText returns the trimmed text content of a node and its descendants.
func CellText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and infinities stay strings
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func isElement(n *html.Node, a atom.Atom) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return n.DataAtom == a || (n.DataAtom == 0 && strings.EqualFold(n.Data, a.String()))
}
