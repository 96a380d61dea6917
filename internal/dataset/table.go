// Package dataset parses the raw Markdown pipe-table source files into typed
// records and reads/writes the processed CSV artifacts.
package dataset

import (
	"fmt"
	"os"
	"strings"
)

// Table is a parsed Markdown pipe table. The first source line is the
// header, the second is the separator and is ignored, and every remaining
// line containing a pipe is a data row.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string
	Lines   []int // 1-based source line number per row
}

// ParseTableFile reads and parses a Markdown pipe table from disk.
func ParseTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("table: read %s: %w", path, err)
	}
	return parseTable(path, string(data))
}

func parseTable(path, content string) (*Table, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("table: %s: missing header and separator lines", path)
	}

	headers := splitCells(lines[0])
	if len(headers) == 0 {
		return nil, fmt.Errorf("table: %s: header row has no cells", path)
	}
	for i, h := range headers {
		headers[i] = collapseBreaks(h)
	}

	t := &Table{Path: path, Headers: headers}
	for i, line := range lines[2:] {
		if !strings.Contains(line, "|") {
			continue
		}
		cells := splitCells(line)
		if len(cells) != len(headers) {
			return nil, &RowError{
				Path: path,
				Line: i + 3,
				Raw:  line,
				Err:  fmt.Errorf("row has %d cells, header has %d", len(cells), len(headers)),
			}
		}
		t.Rows = append(t.Rows, cells)
		t.Lines = append(t.Lines, i+3)
	}
	return t, nil
}

// columnIndex finds a header by exact name.
func (t *Table) columnIndex(name string) (int, error) {
	for i, h := range t.Headers {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("table: %s: missing column %q (have %v)", t.Path, name, t.Headers)
}

// splitCells splits a table line on pipes, discarding the empty outer cells
// produced by the leading and trailing delimiters, and trims each cell.
func splitCells(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// collapseBreaks flattens multi-line header cells to a single line.
func collapseBreaks(cell string) string {
	cell = strings.ReplaceAll(cell, "<br>", " ")
	return strings.Join(strings.Fields(cell), " ")
}
