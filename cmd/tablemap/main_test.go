package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const page = `<html><body><table>
<tr><td rowspan="2">A</td><td>B</td></tr>
<tr><td>C</td></tr>
</table></body></html>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))
	return path
}

func TestRunFormats(t *testing.T) {
	input := writePage(t)

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"source":"page.html"`},
		{"text", "Group 0 (rows 0-1)"},
		{"html", "Group 0</th>"},
		{"coverage", "1: I(1,0) O(0,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, "--format", tt.format, input)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRunXLSXToFile(t *testing.T) {
	input := writePage(t)
	dst := filepath.Join(t.TempDir(), "out.xlsx")

	_, err := execute(t, "--format", "xlsx", "-o", dst, input)
	require.NoError(t, err)

	f, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer f.Close()

	merged, err := f.GetMergeCells("Table1")
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "A2", merged[0].GetEndAxis())
}

func TestRunConfig(t *testing.T) {
	input := writePage(t)
	config := filepath.Join(t.TempDir(), "tablemap.toml")
	require.NoError(t, os.WriteFile(config, []byte("format = \"coverage\"\n"), 0644))

	out, err := execute(t, "--config", config, input)
	require.NoError(t, err)
	assert.Contains(t, out, "group 0 rows 0-1")

	// Flags override the file.
	out, err = execute(t, "--config", config, "--format", "json", input)
	require.NoError(t, err)
	assert.Contains(t, out, `"tables"`)
}

func TestRunErrors(t *testing.T) {
	input := writePage(t)

	_, err := execute(t, filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)

	_, err = execute(t, "--format", "yaml", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, err = execute(t)
	assert.Error(t, err)
}
