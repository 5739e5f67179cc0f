package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/grid"
)

func parseTable(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)

	tables, err := FindTables(doc, "")
	require.NoError(t, err)
	require.NotEmpty(t, tables)
	return tables[0]
}

func TestSpan(t *testing.T) {
	tests := []struct {
		src     string
		want    int
		wantErr bool
	}{
		{`<td>x</td>`, 1, false},
		{`<td rowspan="3">x</td>`, 3, false},
		{`<td rowspan=" 2 ">x</td>`, 2, false},
		{`<td rowspan="0">x</td>`, 1, true},
		{`<td rowspan="-2">x</td>`, 1, true},
		{`<td rowspan="two">x</td>`, 1, true},
		{`<td rowspan="65534">x</td>`, 65534, false},
		{`<td rowspan="65535">x</td>`, 65534, true},
		{`<td rowspan="9223372036854775807">x</td>`, 65534, true},
		{`<td rowspan="99999999999999999999">x</td>`, 65534, true},
		{`<td rowspan="-99999999999999999999">x</td>`, 1, true},
	}

	for _, tt := range tests {
		table := parseTable(t, "<table><tr>"+tt.src+"</tr></table>")
		cell := Cells(Rows(table)[0])[0]

		got, err := Span(cell, AttrRowSpan)
		if got != tt.want {
			t.Errorf("Span(%q) = %d, expected %d", tt.src, got, tt.want)
		}
		if (err != nil) != tt.wantErr {
			t.Errorf("Span(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, grid.ErrMalformedSpan) {
			t.Errorf("Span(%q) error = %v, expected ErrMalformedSpan", tt.src, err)
		}
	}
}

func TestSpanColspanLimit(t *testing.T) {
	table := parseTable(t, `<table><tr><td colspan="1000">a</td><td colspan="5000">b</td></tr></table>`)
	cells := Cells(Rows(table)[0])

	n, err := Span(cells[0], AttrColSpan)
	require.NoError(t, err)
	assert.Equal(t, MaxColSpan, n)

	n, err = Span(cells[1], AttrColSpan)
	assert.ErrorIs(t, err, grid.ErrMalformedSpan)
	assert.Equal(t, MaxColSpan, n)
}

func TestReadRow(t *testing.T) {
	table := parseTable(t, `<table><tr>
		<td rowspan="2">A</td>
		<th colspan="3">B</th>
		<td colspan="x">C</td>
	</tr></table>`)
	Cleanup(table)

	row, errs := ReadRow(Cells(Rows(table)[0]))
	assert.Equal(t, grid.Row{
		{RowSpan: 2, ColSpan: 1},
		{RowSpan: 1, ColSpan: 3},
		{RowSpan: 1, ColSpan: 1},
	}, row)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "cell 2")
	assert.ErrorIs(t, errs[0], grid.ErrMalformedSpan)
}

func TestCellText(t *testing.T) {
	table := parseTable(t, `<table><tr><td>  Hello <b>World</b> </td><td></td></tr></table>`)
	cells := Cells(Rows(table)[0])

	assert.Equal(t, "Hello World", CellText(cells[0]))
	assert.Equal(t, "", CellText(cells[1]))
	assert.Equal(t, "", CellText(nil))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"-Infinity", "-Infinity"},
		{"1e400", "1e400"},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
