package scoring

import (
	"slices"
	"sort"

	"github.com/rmagsino/pollscore/internal/metrics"
	"github.com/rmagsino/pollscore/internal/models"
)

// MeanAccuracy averages the accuracy across all scorecards.
func MeanAccuracy(cards []models.Scorecard) float64 {
	return metrics.Mean(accuracies(cards))
}

// MissCounts reports, for every member of the official top-N, how many
// instruments left them out of their predicted top-N. Ordered by count
// descending; ties keep the official ranking order.
func MissCounts(actualTop []string, cards []models.Scorecard) []models.CandidateCount {
	counts := make([]models.CandidateCount, 0, len(actualTop))
	for _, candidate := range actualTop {
		missed := 0
		for _, card := range cards {
			if !slices.Contains(card.PredictedTop, candidate) {
				missed++
			}
		}
		counts = append(counts, models.CandidateCount{Candidate: candidate, Count: missed})
	}
	sortByCountDesc(counts)
	return counts
}

// FalsePositiveCounts reports, for every candidate outside the official
// top-N, how many instruments predicted them anyway. Ordered by count
// descending; ties keep first-predicted order.
func FalsePositiveCounts(actualTop []string, cards []models.Scorecard) []models.CandidateCount {
	actualSet := toSet(actualTop)

	index := make(map[string]int)
	var counts []models.CandidateCount
	for _, card := range cards {
		for _, candidate := range card.PredictedTop {
			if _, ok := actualSet[candidate]; ok {
				continue
			}
			if i, ok := index[candidate]; ok {
				counts[i].Count++
				continue
			}
			index[candidate] = len(counts)
			counts = append(counts, models.CandidateCount{Candidate: candidate, Count: 1})
		}
	}
	sortByCountDesc(counts)
	return counts
}

// BuildSummary assembles the full evaluation payload for a given top-N.
func BuildSummary(official []models.OfficialResult, ds *models.PollDataset, topN int) *models.Summary {
	actualTop := ActualTopN(official, topN)
	cards := Score(official, ds, topN)

	return &models.Summary{
		TopN:           topN,
		ActualTop:      actualTop,
		Scorecards:     cards,
		MeanAccuracy:   MeanAccuracy(cards),
		AccuracySpread: metrics.StdDev(accuracies(cards)),
		Misses:         MissCounts(actualTop, cards),
		FalsePositives: FalsePositiveCounts(actualTop, cards),
	}
}

func accuracies(cards []models.Scorecard) []float64 {
	values := make([]float64, 0, len(cards))
	for _, c := range cards {
		values = append(values, c.Accuracy)
	}
	return values
}

func sortByCountDesc(counts []models.CandidateCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}
