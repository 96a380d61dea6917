package models

// Scorecard captures how one polling instrument fared against the official
// top-N. PredictedTop may be shorter than N when the instrument scored fewer
// candidates; the accuracy denominator stays N regardless.
type Scorecard struct {
	Instrument   string   `json:"instrument"`
	PredictedTop []string `json:"predicted_top"`
	CorrectCount int      `json:"correct_count"`
	Accuracy     float64  `json:"accuracy"`
}

// CandidateCount pairs a candidate with an occurrence count in one of the
// derived ranking views (misses or false positives).
type CandidateCount struct {
	Candidate string `json:"candidate"`
	Count     int    `json:"count"`
}

// Summary is the complete evaluation payload for a given top-N: the official
// top-N, one scorecard per instrument, and the derived aggregate views.
// It is recomputed on demand and never mutated after construction.
type Summary struct {
	TopN           int              `json:"top_n"`
	ActualTop      []string         `json:"actual_top"`
	Scorecards     []Scorecard      `json:"scorecards"`
	MeanAccuracy   float64          `json:"mean_accuracy"`
	AccuracySpread float64          `json:"accuracy_spread"`
	Misses         []CandidateCount `json:"misses"`
	FalsePositives []CandidateCount `json:"false_positives"`
}
