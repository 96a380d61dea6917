// Package scoring computes top-N prediction accuracy for each polling
// instrument against the official results. Every function here is a pure
// transform: inputs are never mutated and outputs are fresh structures.
package scoring

import (
	"sort"

	"github.com/rmagsino/pollscore/internal/models"
)

// ActualTopN returns the canonical names of the top n official finishers,
// ordered by vote count descending. Equal vote counts keep their input
// order (stable sort), so ties never reorder nondeterministically.
func ActualTopN(official []models.OfficialResult, n int) []string {
	ranked := make([]models.OfficialResult, len(official))
	copy(ranked, official)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})

	n = clampTopN(n, len(ranked))
	top := make([]string, 0, n)
	for _, r := range ranked[:n] {
		top = append(top, r.Candidate)
	}
	return top
}

// RankedScore pairs a candidate with one instrument's percentage for them.
type RankedScore struct {
	Candidate string
	Score     float64
}

// Ranking returns every candidate the instrument scored, ordered by score
// descending. Equal scores keep their input order (stable sort).
func Ranking(ds *models.PollDataset, instrument string) []RankedScore {
	ranked := make([]RankedScore, 0, len(ds.Records))
	for _, rec := range ds.Records {
		if v, ok := rec.Score(instrument); ok {
			ranked = append(ranked, RankedScore{Candidate: rec.Candidate, Score: v})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// PredictedTopN returns the instrument's top n picks ordered by score
// descending. Only candidates the instrument actually scored participate,
// so the result may be shorter than n.
func PredictedTopN(ds *models.PollDataset, instrument string, n int) []string {
	ranked := Ranking(ds, instrument)

	n = clampTopN(n, len(ranked))
	top := make([]string, 0, n)
	for _, r := range ranked[:n] {
		top = append(top, r.Candidate)
	}
	return top
}

// Score produces one scorecard per polling instrument, in the dataset's
// column order. Correctness is set membership against the official top-N,
// not positional match. A topN of 0 yields empty predictions and an
// accuracy of 0.0 rather than a division error.
func Score(official []models.OfficialResult, ds *models.PollDataset, topN int) []models.Scorecard {
	actualSet := toSet(ActualTopN(official, topN))

	cards := make([]models.Scorecard, 0, len(ds.Instruments))
	for _, instrument := range ds.Instruments {
		predicted := PredictedTopN(ds, instrument, topN)

		correct := 0
		for _, c := range predicted {
			if _, ok := actualSet[c]; ok {
				correct++
			}
		}

		accuracy := 0.0
		if topN > 0 {
			accuracy = float64(correct) / float64(topN) * 100
		}

		cards = append(cards, models.Scorecard{
			Instrument:   instrument,
			PredictedTop: predicted,
			CorrectCount: correct,
			Accuracy:     accuracy,
		})
	}
	return cards
}

func clampTopN(n, available int) int {
	if n < 0 {
		return 0
	}
	if n > available {
		return available
	}
	return n
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
