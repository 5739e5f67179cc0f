package tablemap

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/parser"
)

const debugStyle = "border: 1px solid #000; border-collapse: collapse"

// RenderHTML writes the resolved grid as an HTML table for debugging. Each
// group gets a header row, and every logical position becomes its own cell
// holding the owning cell's text. The output is a diagnostic, not a stable format.
func (m *Mapper) RenderHTML(w io.Writer) error {
	table := element(atom.Table, html.Attribute{Key: "style", Val: debugStyle})

	for gi, g := range m.groups {
		cov := m.grids[gi]

		th := element(atom.Th, html.Attribute{Key: "colspan", Val: strconv.Itoa(max(cov.Cols(), 1))})
		th.AppendChild(text(fmt.Sprintf("Group %d", gi)))
		header := element(atom.Tr)
		header.AppendChild(th)
		table.AppendChild(header)

		for r := 0; r < g.Len(); r++ {
			tr := element(atom.Tr)
			for c := 0; c < cov.Cols(); c++ {
				td := element(atom.Td, html.Attribute{Key: "style", Val: "border: 1px solid #000;"})
				if ref, err := m.Resolve(gi, r, c); err == nil {
					td.AppendChild(text(parser.CellText(ref.Node)))
				}
				tr.AppendChild(td)
			}
			table.AppendChild(tr)
		}
	}

	return html.Render(w, table)
}

// DumpCoverage writes the coverage records of every group, one line per local
// row: O(cell,remaining) for origins, I(delta,cell) for inherited positions and
// "-" for unresolved ones.
func (m *Mapper) DumpCoverage(w io.Writer) error {
	for gi, g := range m.groups {
		if _, err := fmt.Fprintf(w, "group %d rows %d-%d\n", gi, g.First, g.Last); err != nil {
			return err
		}
		for r, records := range m.grids[gi].Table() {
			fields := make([]string, len(records))
			for c, rec := range records {
				fields[c] = rec.String()
			}
			if _, err := fmt.Fprintf(w, "  %d: %s\n", r, strings.Join(fields, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
