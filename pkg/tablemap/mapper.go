package tablemap

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/grid"
	"github.com/ukaji3/tablemap-go/pkg/tablemap/parser"
)

// Mapper holds the resolved grid of one table. It is built in a single pass by
// New and read-only afterwards, so it may be queried from several goroutines.
type Mapper struct {
	doc    *html.Node // private document owning table
	table  *html.Node
	rows   []*html.Node
	cells  [][]*html.Node
	spans  []grid.Row
	groups []grid.Group
	grids  []*grid.Coverage
	issues []error
}

// CellRef identifies the cell owning a logical position.
type CellRef struct {
	Group  int
	Row    int // local row queried
	Column int
	// OwnerRow is the local row the owning cell starts in.
	OwnerRow int
	// PhysicalRow is OwnerRow as an offset into the table's rows.
	PhysicalRow int
	// Index is the owning cell's position among its row's cells.
	Index int
	// Inherited is true when the cell started in a row above Row.
	Inherited bool
	Node      *html.Node
}

// New copies table into a private document and resolves its grid.
//
// The caller's tree is never modified. Malformed spans are recorded and
// available through Issues; with Options.Strict they are returned as an error
// instead.
func New(table *html.Node, opts Options) (*Mapper, error) {
	if !parser.IsTable(table) {
		return nil, ErrNotTable
	}
	logger := opts.logger()
	visitor := opts.visitor()

	m := &Mapper{
		doc:   &html.Node{Type: html.DocumentNode},
		table: parser.CloneNode(table),
	}
	m.doc.AppendChild(m.table)

	if n := parser.Cleanup(m.table); n > 0 {
		logger.Debug("removed whitespace text", "nodes", n)
	}

	m.rows = parser.Rows(m.table)
	m.cells = make([][]*html.Node, len(m.rows))
	m.spans = make([]grid.Row, len(m.rows))
	for i, tr := range m.rows {
		m.cells[i] = parser.Cells(tr)
		row, errs := parser.ReadRow(m.cells[i])
		m.spans[i] = row
		for _, err := range errs {
			m.issues = append(m.issues, NewMappingError("span", -1, i, -1, err))
		}
	}

	m.groups = grid.Partition(m.spans)
	m.grids = make([]*grid.Coverage, len(m.groups))
	for _, g := range m.groups {
		for r := g.First; r <= g.Last; r++ {
			visitor.VisitRow(m.rows[r])
			if r == g.First {
				for _, cell := range m.cells[r] {
					visitor.VisitCell(cell, m.rows[r])
				}
			}
		}

		cov, issues := grid.Resolve(m.spans[g.First : g.Last+1])
		m.grids[g.Index] = cov
		for _, issue := range issues {
			m.issues = append(m.issues, NewMappingError("resolve", g.Index, issue.Row, issue.Col, issue))
		}

		logger.Debug("resolved group",
			"group", g.Index, "first", g.First, "last", g.Last,
			"columns", cov.Cols(), "clipped", g.Clipped())
	}

	for _, err := range m.issues {
		logger.Debug("malformed table", "err", err)
	}
	if len(m.issues) > 0 && opts.ShouldFailOnMalformed() {
		return nil, errors.Join(m.issues...)
	}
	return m, nil
}

// Groups returns the number of row groups.
func (m *Mapper) Groups() int {
	return len(m.groups)
}

// Rows returns the number of physical rows.
func (m *Mapper) Rows() int {
	return len(m.rows)
}

// Issues returns the malformed spans and rows found while mapping.
func (m *Mapper) Issues() []error {
	return append([]error(nil), m.issues...)
}

// Resolve returns the cell owning (group, row, column).
func (m *Mapper) Resolve(group, row, column int) (CellRef, error) {
	cov, err := m.coverage("resolve", group)
	if err != nil {
		return CellRef{}, err
	}

	rec, ok := cov.At(row, column)
	if !ok {
		return CellRef{}, NewMappingError("resolve", group, row, column, ErrOutOfRange)
	}
	if rec.Kind() == grid.Unresolved {
		return CellRef{}, NewMappingError("resolve", group, row, column, ErrMalformedSpan)
	}

	owner := row - rec.Delta()
	physical := m.groups[group].First + owner
	return CellRef{
		Group:       group,
		Row:         row,
		Column:      column,
		OwnerRow:    owner,
		PhysicalRow: physical,
		Index:       rec.Cell(),
		Inherited:   rec.Kind() == grid.Inherited,
		Node:        m.cells[physical][rec.Cell()],
	}, nil
}

// Cell returns the cell node owning (group, row, column).
func (m *Mapper) Cell(group, row, column int) (*html.Node, error) {
	ref, err := m.Resolve(group, row, column)
	if err != nil {
		return nil, err
	}
	return ref.Node, nil
}

// Row returns the row node at a local row of a group.
func (m *Mapper) Row(group, row int) (*html.Node, error) {
	g, err := m.group("row", group)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= g.Len() {
		return nil, NewMappingError("row", group, row, -1, ErrOutOfRange)
	}
	return m.rows[g.First+row], nil
}

// FirstRow returns the offset of the group's first physical row.
func (m *Mapper) FirstRow(group int) (int, error) {
	g, err := m.group("first row", group)
	if err != nil {
		return 0, err
	}
	return g.First, nil
}

// LastRow returns the offset of the group's last physical row.
func (m *Mapper) LastRow(group int) (int, error) {
	g, err := m.group("last row", group)
	if err != nil {
		return 0, err
	}
	return g.Last, nil
}

// RowOffsets returns every group's row offsets.
func (m *Mapper) RowOffsets() []grid.Group {
	return append([]grid.Group(nil), m.groups...)
}

// Width returns the column count of a group.
func (m *Mapper) Width(group int) (int, error) {
	cov, err := m.coverage("width", group)
	if err != nil {
		return 0, err
	}
	return cov.Cols(), nil
}

// Coverage returns a copy of a group's coverage records.
func (m *Mapper) Coverage(group int) ([][]grid.Record, error) {
	cov, err := m.coverage("coverage", group)
	if err != nil {
		return nil, err
	}
	return cov.Table(), nil
}

// Span returns the rows and columns the cell owning (group, row, column)
// occupies inside its group, after clipping.
func (m *Mapper) Span(group, row, column int) (rows, cols int, err error) {
	cov, err := m.coverage("span", group)
	if err != nil {
		return 0, 0, err
	}
	if _, ok := cov.At(row, column); !ok {
		return 0, 0, NewMappingError("span", group, row, column, ErrOutOfRange)
	}
	_, _, rows, cols, ok := cov.Bounds(row, column)
	if !ok {
		return 0, 0, NewMappingError("span", group, row, column, ErrMalformedSpan)
	}
	return rows, cols, nil
}

// Table returns a fresh copy of the cleaned table.
func (m *Mapper) Table() *html.Node {
	return parser.CloneNode(m.table)
}

// AppendToDocument appends a copy of the cleaned table to doc and returns it.
func (m *Mapper) AppendToDocument(doc *html.Node) (*html.Node, error) {
	if doc == nil || doc.Type != html.DocumentNode || doc == m.doc {
		return nil, fmt.Errorf("append table to document: %w", ErrDetachedNode)
	}
	t := m.Table()
	doc.AppendChild(t)
	return t, nil
}

// AppendTo appends a copy of the cleaned table to parent and returns it. The
// parent must belong to a document other than the mapper's own.
func (m *Mapper) AppendTo(parent *html.Node) (*html.Node, error) {
	owner := ownerDocument(parent)
	if owner == nil || owner == m.doc {
		return nil, fmt.Errorf("append table to node: %w", ErrDetachedNode)
	}
	t := m.Table()
	parent.AppendChild(t)
	return t, nil
}

func (m *Mapper) group(op string, group int) (grid.Group, error) {
	if group < 0 || group >= len(m.groups) {
		return grid.Group{}, NewMappingError(op, group, -1, -1, ErrOutOfRange)
	}
	return m.groups[group], nil
}

func (m *Mapper) coverage(op string, group int) (*grid.Coverage, error) {
	if _, err := m.group(op, group); err != nil {
		return nil, err
	}
	return m.grids[group], nil
}

func ownerDocument(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		n = n.Parent
	}
	if n.Type != html.DocumentNode {
		return nil
	}
	return n
}
