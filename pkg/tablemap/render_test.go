package tablemap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/parser"
)

func TestRenderHTML(t *testing.T) {
	m := newMapper(t, `<table>
		<tr><td rowspan="2">A</td><td>B</td></tr>
		<tr><td>C</td></tr>
		<tr><td colspan="2">D</td></tr>
	</table>`)

	var buf bytes.Buffer
	require.NoError(t, m.RenderHTML(&buf))
	out := buf.String()

	assert.Contains(t, out, "Group 0")
	assert.Contains(t, out, "Group 1")
	assert.Contains(t, out, `colspan="2"`)

	// Every logical position becomes its own cell.
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	tables, err := parser.FindTables(doc, "")
	require.NoError(t, err)
	require.Len(t, tables, 1)

	var texts [][]string
	for _, tr := range parser.Rows(tables[0]) {
		var row []string
		for _, cell := range parser.Cells(tr) {
			row = append(row, parser.CellText(cell))
		}
		texts = append(texts, row)
	}
	assert.Equal(t, [][]string{
		{"Group 0"},
		{"A", "B"},
		{"A", "C"},
		{"Group 1"},
		{"D", "D"},
	}, texts)
}

func TestRenderHTMLUnresolvedIsEmpty(t *testing.T) {
	m := newMapper(t, `<table>
		<tr><td rowspan="2">A</td><td>B</td><td>C</td></tr>
		<tr><td>D</td></tr>
	</table>`)

	var buf bytes.Buffer
	require.NoError(t, m.RenderHTML(&buf))
	assert.Contains(t, buf.String(), `<td style="border: 1px solid #000;">D</td><td style="border: 1px solid #000;"></td>`)
}

func TestDumpCoverage(t *testing.T) {
	m := newMapper(t, `<table>
		<tr><td rowspan="2">A</td><td>B</td><td>C</td></tr>
		<tr><td>D</td></tr>
	</table>`)

	var buf bytes.Buffer
	require.NoError(t, m.DumpCoverage(&buf))
	assert.Equal(t, "group 0 rows 0-1\n  0: O(0,1) O(1,0) O(2,0)\n  1: I(1,0) O(0,0) -\n", buf.String())
}
