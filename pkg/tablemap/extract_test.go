package tablemap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/models"
)

const sampleDoc = `<!DOCTYPE html>
<html><body>
<table id="spans">
  <tr><td rowspan="2" colspan="2">Total</td><td>10</td></tr>
  <tr><td>2.5</td></tr>
</table>
<table id="broken">
  <tr><td rowspan="2">A</td><td>B</td><td>C</td></tr>
  <tr><td>D</td></tr>
</table>
</body></html>`

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.html")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	doc, err := Extract(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "sample.html", doc.Source)
	require.Len(t, doc.Tables, 2)

	table := doc.Tables[0]
	assert.NotEmpty(t, table.ID)
	assert.Equal(t, 0, table.Index)
	assert.Equal(t, 2, table.Rows)
	require.Len(t, table.Groups, 1)

	group := table.Groups[0]
	assert.Equal(t, 3, group.Columns)
	assert.Equal(t, 0, group.FirstRow)
	assert.Equal(t, 1, group.LastRow)

	total := group.Rows[1][1]
	assert.Equal(t, models.KindInherited, total.Kind)
	assert.Equal(t, 0, total.OwnerRow)
	assert.Equal(t, 0, total.OwnerCol)
	assert.Equal(t, 2, total.RowSpan)
	assert.Equal(t, 2, total.ColSpan)
	assert.Equal(t, "A1:B2", total.Range)
	assert.Equal(t, "Total", total.V)
	assert.False(t, total.IsAnchor())
	assert.True(t, group.Rows[0][0].IsAnchor())

	assert.Equal(t, int64(10), group.Rows[0][2].V)
	assert.Equal(t, "C1", group.Rows[0][2].Range)
	assert.Equal(t, 2.5, group.Rows[1][2].V)

	broken := doc.Tables[1]
	assert.Equal(t, 1, broken.Index)
	assert.Len(t, broken.Issues, 1)
	unresolved := broken.Groups[0].Rows[1][2]
	assert.Equal(t, models.KindUnresolved, unresolved.Kind)
	assert.Equal(t, -1, unresolved.Index)
	assert.Nil(t, unresolved.V)
}

func TestExtractStrict(t *testing.T) {
	strict := true
	opts := DefaultOptions()
	opts.Strict = &strict

	_, err := ExtractReader(strings.NewReader(sampleDoc), "sample", opts)
	require.Error(t, err)

	var ee *ExtractionError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 1, ee.Table)
	assert.Equal(t, "sample", ee.Source)
	assert.ErrorIs(t, err, ErrMalformedSpan)
}

func TestExtractSelector(t *testing.T) {
	opts := DefaultOptions()
	opts.Selector = `//table[@id="broken"]`

	doc, err := ExtractReader(strings.NewReader(sampleDoc), "sample", opts)
	require.NoError(t, err)
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, 3, doc.Tables[0].Groups[0].Columns)

	opts.Selector = "//table["
	_, err = ExtractReader(strings.NewReader(sampleDoc), "sample", opts)
	assert.Error(t, err)
}

func TestExtractFileNotFound(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.html"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestMapDocumentNoTables(t *testing.T) {
	doc, err := ExtractReader(strings.NewReader("<p>no tables</p>"), "empty", DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, doc.Tables)
	assert.NotNil(t, doc.Tables)
}
