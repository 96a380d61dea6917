// Package checks validates the raw data files before processing: table
// shape, numeric columns, duplicate identities, and the provenance links
// cited inside the files.
package checks

import (
	"fmt"
	"os"

	"github.com/rmagsino/pollscore/internal/dataset"
	"github.com/rmagsino/pollscore/internal/names"
)

// Issue represents a specific problem found in a raw data file.
type Issue struct {
	Rule     string
	Message  string
	Severity string // "error" or "warning"
}

// FileReport holds the outcome of checking one raw data file.
type FileReport struct {
	Path        string
	Rows        int
	Issues      []Issue
	SourceLinks []string // provenance links cited inside the file
}

// Passed returns true when no error-severity issues were found.
func (r *FileReport) Passed() bool {
	for _, issue := range r.Issues {
		if issue.Severity == "error" {
			return false
		}
	}
	return true
}

// CheckResultsFile validates the official-results table. A missing or
// unreadable file is returned as an error; everything found inside the
// file becomes an Issue on the report.
func CheckResultsFile(path string, std *names.Standardizer) (*FileReport, error) {
	report := &FileReport{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checks: read %s: %w", path, err)
	}
	report.SourceLinks = extractLinks(data)

	results, err := dataset.LoadResults(path, std)
	if err != nil {
		report.Issues = append(report.Issues, Issue{
			Rule:     "results-parse",
			Message:  err.Error(),
			Severity: "error",
		})
		return report, nil
	}
	report.Rows = len(results)

	seen := make(map[string]string, len(results))
	for _, r := range results {
		if r.Candidate == "" {
			report.Issues = append(report.Issues, Issue{
				Rule:     "empty-identity",
				Message:  fmt.Sprintf("raw name %q standardized to an empty identity", r.RawName),
				Severity: "error",
			})
			continue
		}
		if prev, ok := seen[r.Candidate]; ok && prev != r.RawName {
			report.Issues = append(report.Issues, Issue{
				Rule:     "duplicate-identity",
				Message:  fmt.Sprintf("raw names %q and %q both standardize to %q", prev, r.RawName, r.Candidate),
				Severity: "warning",
			})
			continue
		}
		seen[r.Candidate] = r.RawName
	}

	return report, nil
}

// CheckPollsFile validates the opinion-poll table. Instruments with no data
// at all are flagged: an entirely empty column usually means a misaligned
// header rather than a poll that skipped everyone.
func CheckPollsFile(path string, std *names.Standardizer) (*FileReport, error) {
	report := &FileReport{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checks: read %s: %w", path, err)
	}
	report.SourceLinks = extractLinks(data)

	ds, err := dataset.LoadPolls(path, std)
	if err != nil {
		report.Issues = append(report.Issues, Issue{
			Rule:     "polls-parse",
			Message:  err.Error(),
			Severity: "error",
		})
		return report, nil
	}
	report.Rows = len(ds.Records)

	for _, instrument := range ds.Instruments {
		covered := 0
		for _, rec := range ds.Records {
			if _, ok := rec.Score(instrument); ok {
				covered++
			}
		}
		if covered == 0 {
			report.Issues = append(report.Issues, Issue{
				Rule:     "empty-instrument",
				Message:  fmt.Sprintf("instrument %q has no parseable scores", instrument),
				Severity: "warning",
			})
		}
	}

	return report, nil
}
