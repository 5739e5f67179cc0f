package tablemap

import (
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/grid"
	"github.com/ukaji3/tablemap-go/pkg/tablemap/models"
	"github.com/ukaji3/tablemap-go/pkg/tablemap/parser"
)

// Model converts the resolved grid into its serialisable form. index is the
// table's position in its document.
func (m *Mapper) Model(index int) models.Table {
	t := models.Table{
		ID:     uuid.New().String(),
		Index:  index,
		Rows:   len(m.rows),
		Groups: make([]models.Group, len(m.groups)),
	}

	for gi, g := range m.groups {
		cov := m.grids[gi]
		group := models.Group{
			Index:    gi,
			FirstRow: g.First,
			LastRow:  g.Last,
			Columns:  cov.Cols(),
			Rows:     make([][]models.Cell, cov.Rows()),
		}
		for r := range group.Rows {
			group.Rows[r] = make([]models.Cell, cov.Cols())
			for c := range group.Rows[r] {
				group.Rows[r][c] = m.modelCell(g, cov, r, c)
			}
		}
		t.Groups[gi] = group
	}

	for _, err := range m.issues {
		t.Issues = append(t.Issues, err.Error())
	}
	return t
}

func (m *Mapper) modelCell(g grid.Group, cov *grid.Coverage, r, c int) models.Cell {
	cell := models.Cell{
		Kind:     models.KindUnresolved,
		R:        g.First + r,
		C:        c,
		OwnerRow: g.First + r,
		OwnerCol: c,
		Index:    -1,
	}

	top, left, rows, cols, ok := cov.Bounds(r, c)
	if !ok {
		return cell
	}
	rec, _ := cov.At(r, c)

	cell.Kind = rec.Kind().String()
	cell.OwnerRow = g.First + top
	cell.OwnerCol = left
	cell.Index = rec.Cell()
	cell.RowSpan = rows
	cell.ColSpan = cols
	cell.Range = a1Range(cell.OwnerRow, left, rows, cols)
	cell.V = parser.ParseValue(parser.CellText(m.cells[cell.OwnerRow][cell.Index]))
	return cell
}

// a1Range formats a 0-based area in A1 notation, collapsing single cells.
func a1Range(row, col, rows, cols int) string {
	start, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	if rows == 1 && cols == 1 {
		return start
	}
	end, err := excelize.CoordinatesToCellName(col+cols, row+rows)
	if err != nil {
		return ""
	}
	return start + ":" + end
}
