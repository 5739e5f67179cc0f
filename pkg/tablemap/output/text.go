package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// RenderText draws every row group of a table as a terminal grid. Positions
// covered by a cell from an earlier row or column repeat its value, dimmed.
func RenderText(t models.Table) string {
	var b strings.Builder
	for _, g := range t.Groups {
		fmt.Fprintf(&b, "Group %d (rows %d-%d)\n", g.Index, g.FirstRow, g.LastRow)

		headers := make([]string, g.Columns)
		for c := range headers {
			name, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				name = fmt.Sprint(c + 1)
			}
			headers[c] = name
		}

		rows := make([][]string, len(g.Rows))
		for r, cells := range g.Rows {
			rows[r] = make([]string, len(cells))
			for c, cell := range cells {
				rows[r][c] = cellValue(cell)
			}
		}

		grid := g
		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				if row < len(grid.Rows) && col < len(grid.Rows[row]) && !grid.Rows[row][col].IsAnchor() {
					return dimStyle
				}
				return cellStyle
			})

		b.WriteString(tbl.Render())
		b.WriteString("\n")
	}
	return b.String()
}

func cellValue(cell models.Cell) string {
	if cell.Kind == models.KindUnresolved || cell.V == nil {
		return ""
	}
	return fmt.Sprint(cell.V)
}
