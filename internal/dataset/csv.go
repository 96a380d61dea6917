package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rmagsino/pollscore/internal/models"
)

// Row represents a single CSV row with column name to value mapping.
type Row map[string]string

// LoadCSV reads a CSV artifact and returns rows as maps of column to value.
// The first row is treated as headers (column names).
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = record[j]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WriteResultsCSV writes the canonicalized official results artifact.
// Columns mirror the raw table plus the standardized-name column.
func WriteResultsCSV(path string, results []models.OfficialResult) error {
	records := [][]string{{resultsNameColumn, resultsVotesColumn, "Standardized Name"}}
	for _, r := range results {
		records = append(records, []string{r.RawName, strconv.Itoa(r.Votes), r.Candidate})
	}
	return writeCSVFile(path, records)
}

// WritePollsCSV writes the canonicalized opinion-poll artifact. Absent
// scores become empty cells, never zeroes.
func WritePollsCSV(path string, ds *models.PollDataset) error {
	header := append([]string{"Candidate", "Party"}, ds.Instruments...)
	header = append(header, "Standardized Name")
	records := [][]string{header}
	for _, rec := range ds.Records {
		row := []string{rec.RawName, rec.Party}
		for _, instrument := range ds.Instruments {
			if v, ok := rec.Score(instrument); ok {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, rec.Candidate)
		records = append(records, row)
	}
	return writeCSVFile(path, records)
}

func writeCSVFile(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("csv: write %s: %w", path, err)
	}
	return f.Close()
}
