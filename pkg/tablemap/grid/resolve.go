package grid

import "fmt"

// Coverage maps every (row, column) position of one group to its Record.
// It is immutable once returned by Resolve and safe for concurrent readers.
type Coverage struct {
	rows    int
	cols    int
	records []Record
}

func newCoverage(rows, cols int) *Coverage {
	return &Coverage{
		rows:    rows,
		cols:    cols,
		records: make([]Record, rows*cols),
	}
}

// Rows returns the number of local rows.
func (c *Coverage) Rows() int { return c.rows }

// Cols returns the number of columns, constant across all rows of the group.
func (c *Coverage) Cols() int { return c.cols }

// At returns the record at (row, col). ok is false when the position lies
// outside the grid.
func (c *Coverage) At(row, col int) (rec Record, ok bool) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return Record{}, false
	}
	return c.records[row*c.cols+col], true
}

// Owner returns the local row the owning cell starts in and its cell index.
// ok is false when the position is out of range or unresolved.
func (c *Coverage) Owner(row, col int) (ownerRow, cell int, ok bool) {
	rec, ok := c.At(row, col)
	if !ok || rec.Kind() == Unresolved {
		return 0, 0, false
	}
	return row - rec.Delta(), rec.Cell(), true
}

// Bounds returns the rectangle occupied by the cell owning (row, col): its top
// row, left column and the number of rows and columns it covers in this group.
func (c *Coverage) Bounds(row, col int) (top, left, rows, cols int, ok bool) {
	top, cell, ok := c.Owner(row, col)
	if !ok {
		return 0, 0, 0, 0, false
	}

	left = col
	for left > 0 && c.isOrigin(top, left-1, cell) {
		left--
	}
	cols = 1
	for c.isOrigin(top, left+cols, cell) {
		cols++
	}
	rows = 1
	for {
		rec, ok := c.At(top+rows, left)
		if !ok || rec.Kind() != Inherited || rec.Delta() != rows || rec.Cell() != cell {
			break
		}
		rows++
	}
	return top, left, rows, cols, true
}

// Table returns a copy of the records as a row-major 2D slice.
func (c *Coverage) Table() [][]Record {
	out := make([][]Record, c.rows)
	for r := range out {
		out[r] = make([]Record, c.cols)
		copy(out[r], c.records[r*c.cols:(r+1)*c.cols])
	}
	return out
}

func (c *Coverage) isOrigin(row, col, cell int) bool {
	rec, ok := c.At(row, col)
	return ok && rec.Kind() == Origin && rec.Cell() == cell
}

func (c *Coverage) set(row, col int, rec Record) {
	c.records[row*c.cols+col] = rec
}

// carry reports whether a span from an earlier row still covers (row, col) and
// returns the inherited record for it. Inherited records already point at their
// origin, so only one step back is needed.
func (c *Coverage) carry(row, col int) (Record, bool) {
	prev := c.records[(row-1)*c.cols+col]

	var originRow, remaining int
	switch prev.Kind() {
	case Origin:
		originRow = row - 1
		remaining = prev.Remaining()
	case Inherited:
		originRow = row - 1 - prev.Delta()
		remaining = c.records[originRow*c.cols+col].Remaining()
	default:
		return Record{}, false
	}

	if originRow+remaining < row {
		return Record{}, false
	}
	return NewInherited(row-originRow, prev.Cell()), true
}

// Resolve builds the coverage of one group from its rows. The first row defines
// the column count; later rows only place cells in columns not still covered by
// a span from above.
//
// Malformed input does not stop resolution. A row with too few cells leaves the
// remaining columns Unresolved, and cells that do not fit are dropped or clipped.
// Each such case is reported as an Issue.
func Resolve(rows []Row) (*Coverage, []Issue) {
	if len(rows) == 0 {
		return newCoverage(0, 0), nil
	}

	width := 0
	for _, cell := range rows[0] {
		width += cell.ColSpan
	}
	cov := newCoverage(len(rows), width)

	col := 0
	for k, cell := range rows[0] {
		for i := 0; i < cell.ColSpan; i++ {
			cov.set(0, col+i, NewOrigin(k, cell.RowSpan-1))
		}
		col += cell.ColSpan
	}

	var issues []Issue
	for t := 1; t < len(rows); t++ {
		row := rows[t]
		next := 0
		short := false

		for col := 0; col < width; {
			if rec, ok := cov.carry(t, col); ok {
				cov.set(t, col, rec)
				col++
				continue
			}

			if next >= len(row) {
				if !short {
					issues = append(issues, Issue{
						Row:    t,
						Col:    col,
						Reason: fmt.Sprintf("row has %d cells, not enough to fill %d columns", len(row), width),
					})
					short = true
				}
				col++
				continue
			}

			cell := row[next]
			n := 0
			for n < cell.ColSpan && col+n < width {
				if n > 0 {
					if _, covered := cov.carry(t, col+n); covered {
						break
					}
				}
				cov.set(t, col+n, NewOrigin(next, cell.RowSpan-1))
				n++
			}
			if n < cell.ColSpan {
				issues = append(issues, Issue{
					Row:    t,
					Col:    col,
					Reason: fmt.Sprintf("colspan %d of cell %d clipped to %d", cell.ColSpan, next, n),
				})
			}
			next++
			col += n
		}

		if next < len(row) {
			issues = append(issues, Issue{
				Row:    t,
				Col:    width,
				Reason: fmt.Sprintf("%d cells beyond column %d ignored", len(row)-next, width),
			})
		}
	}

	return cov, issues
}
