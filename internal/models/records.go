// Package models defines the data structures shared between the dataset
// loaders, the scorer, and the report commands.
package models

// OfficialResult is one row of the official tally: a candidate's canonical
// name alongside the raw spelling the source used and the vote count.
type OfficialResult struct {
	RawName   string `json:"raw_name"`
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

// PollRecord holds one candidate's scores across every polling instrument.
// Scores maps instrument name to a percentage; a missing key means the
// instrument did not cover the candidate, which is distinct from scoring
// them at zero.
type PollRecord struct {
	RawName   string             `json:"raw_name"`
	Candidate string             `json:"candidate"`
	Party     string             `json:"party"`
	Scores    map[string]float64 `json:"scores"`
}

// Score returns the record's percentage for the given instrument and whether
// the instrument covered the candidate at all.
func (r PollRecord) Score(instrument string) (float64, bool) {
	v, ok := r.Scores[instrument]
	return v, ok
}

// PollDataset is the full parsed opinion-poll table. Instruments preserves
// the column order of the source file.
type PollDataset struct {
	Instruments []string     `json:"instruments"`
	Records     []PollRecord `json:"records"`
}
