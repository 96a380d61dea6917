package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmagsino/pollscore/internal/models"
	"github.com/rmagsino/pollscore/internal/names"
)

// pollFixedColumns is the number of leading non-instrument columns in the
// opinion-poll table (candidate name, party).
const pollFixedColumns = 2

// LoadPolls parses the opinion-poll table. Every column after the candidate
// and party columns is a polling instrument. A cell that is empty or does
// not parse as a number becomes an explicitly absent score: an instrument
// that skipped a candidate must stay distinguishable from one that scored
// them at zero.
func LoadPolls(path string, std *names.Standardizer) (*models.PollDataset, error) {
	t, err := ParseTableFile(path)
	if err != nil {
		return nil, err
	}
	if len(t.Headers) < pollFixedColumns+1 {
		return nil, fmt.Errorf("polls: %s: need at least %d columns plus one instrument, have %v",
			path, pollFixedColumns, t.Headers)
	}

	instruments := make([]string, len(t.Headers)-pollFixedColumns)
	copy(instruments, t.Headers[pollFixedColumns:])

	ds := &models.PollDataset{Instruments: instruments}
	for _, row := range t.Rows {
		raw := row[0]
		rec := models.PollRecord{
			RawName:   raw,
			Candidate: std.Standardize(raw),
			Party:     row[1],
			Scores:    make(map[string]float64, len(instruments)),
		}
		for j, instrument := range instruments {
			if v, ok := parseScore(row[j+pollFixedColumns]); ok {
				rec.Scores[instrument] = v
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

// parseScore strips percentage signs and emphasis markup, then parses the
// cell as a float. Reports ok=false for empty or non-numeric cells.
func parseScore(cell string) (float64, bool) {
	cleaned := strings.ReplaceAll(cell, "%", "")
	cleaned = strings.ReplaceAll(cleaned, "**", "")
	cleaned = strings.ReplaceAll(cleaned, "*", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
