package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmagsino/pollscore/internal/models"
	"github.com/rmagsino/pollscore/internal/names"
)

// Column names in the official-results source table.
const (
	resultsNameColumn  = "Candidate Name"
	resultsVotesColumn = "Number of Votes"
)

// LoadResults parses the official-results table, canonicalizing the name
// column through std. Vote counts must parse fully: a bad count is a
// *RowError, not a skipped row.
func LoadResults(path string, std *names.Standardizer) ([]models.OfficialResult, error) {
	t, err := ParseTableFile(path)
	if err != nil {
		return nil, err
	}

	nameIdx, err := t.columnIndex(resultsNameColumn)
	if err != nil {
		return nil, err
	}
	votesIdx, err := t.columnIndex(resultsVotesColumn)
	if err != nil {
		return nil, err
	}

	results := make([]models.OfficialResult, 0, len(t.Rows))
	for i, row := range t.Rows {
		raw := row[nameIdx]
		votes, err := parseVotes(row[votesIdx])
		if err != nil {
			return nil, &RowError{
				Path: path,
				Line: t.Lines[i],
				Raw:  strings.Join(row, " | "),
				Err:  err,
			}
		}
		results = append(results, models.OfficialResult{
			RawName:   raw,
			Candidate: std.Standardize(raw),
			Votes:     votes,
		})
	}
	return results, nil
}

// parseVotes strips thousands separators and parses the count.
func parseVotes(cell string) (int, error) {
	cleaned := strings.ReplaceAll(cell, ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("vote count %q is not an integer", cell)
	}
	return n, nil
}
