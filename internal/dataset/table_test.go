package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "table.md")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseTable_HappyPath(t *testing.T) {
	path := writeTable(t, `| Name | Votes |
| --- | --- |
| Alpha | 10 |
| Beta | 20 |
`)

	tbl, err := ParseTableFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "Votes"}, tbl.Headers)
	require.Equal(t, [][]string{{"Alpha", "10"}, {"Beta", "20"}}, tbl.Rows)
	require.Equal(t, []int{3, 4}, tbl.Lines)
}

func TestParseTable_CollapsesHeaderBreaks(t *testing.T) {
	path := writeTable(t, `| Candidate | Pulse Asia<br>Apr 2025 |
| --- | --- |
| Alpha | 10% |
`)

	tbl, err := ParseTableFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Candidate", "Pulse Asia Apr 2025"}, tbl.Headers)
}

func TestParseTable_SkipsNonPipeLines(t *testing.T) {
	path := writeTable(t, `| Name | Votes |
| --- | --- |
| Alpha | 10 |

Some trailing prose without pipes.
| Beta | 20 |
`)

	tbl, err := ParseTableFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
}

func TestParseTable_RowShapeMismatch(t *testing.T) {
	path := writeTable(t, `| Name | Votes |
| --- | --- |
| Alpha | 10 |
| Beta | 20 | extra |
`)

	_, err := ParseTableFile(path)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, 4, rowErr.Line)
	require.Contains(t, rowErr.Raw, "Beta")
	require.Contains(t, rowErr.Error(), path)
}

func TestParseTable_MissingFile(t *testing.T) {
	_, err := ParseTableFile(filepath.Join(t.TempDir(), "missing.md"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseTable_TooShort(t *testing.T) {
	path := writeTable(t, "| Name |")
	_, err := ParseTableFile(path)
	require.ErrorContains(t, err, "missing header and separator")
}
