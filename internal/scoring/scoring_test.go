package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmagsino/pollscore/internal/models"
)

func officialFixture() []models.OfficialResult {
	return []models.OfficialResult{
		{Candidate: "A", Votes: 400},
		{Candidate: "B", Votes: 300},
		{Candidate: "C", Votes: 200},
		{Candidate: "D", Votes: 100},
	}
}

func pollFixture(instrument string, scores map[string]float64) *models.PollDataset {
	ds := &models.PollDataset{Instruments: []string{instrument}}
	for candidate, score := range map[string]float64(scores) {
		ds.Records = append(ds.Records, models.PollRecord{
			Candidate: candidate,
			Scores:    map[string]float64{instrument: score},
		})
	}
	return ds
}

func TestActualTopN(t *testing.T) {
	require.Equal(t, []string{"A", "B"}, ActualTopN(officialFixture(), 2))
	require.Equal(t, []string{"A", "B", "C", "D"}, ActualTopN(officialFixture(), 10))
	require.Empty(t, ActualTopN(officialFixture(), 0))
}

func TestActualTopN_TiesKeepInputOrder(t *testing.T) {
	official := []models.OfficialResult{
		{Candidate: "X", Votes: 100},
		{Candidate: "Y", Votes: 100},
		{Candidate: "Z", Votes: 100},
	}
	require.Equal(t, []string{"X", "Y", "Z"}, ActualTopN(official, 3))
}

func TestActualTopN_DoesNotMutateInput(t *testing.T) {
	official := []models.OfficialResult{
		{Candidate: "Low", Votes: 1},
		{Candidate: "High", Votes: 2},
	}
	ActualTopN(official, 2)
	require.Equal(t, "Low", official[0].Candidate)
}

func TestScore_PerfectPredictionRegardlessOfOrder(t *testing.T) {
	// Survey order [B, A, X, Y] against official [A, B, C, D] at top-2:
	// both picks are in the official top-2, so accuracy is 100%.
	ds := &models.PollDataset{
		Instruments: []string{"P"},
		Records: []models.PollRecord{
			{Candidate: "B", Scores: map[string]float64{"P": 50}},
			{Candidate: "A", Scores: map[string]float64{"P": 40}},
			{Candidate: "X", Scores: map[string]float64{"P": 30}},
			{Candidate: "Y", Scores: map[string]float64{"P": 20}},
		},
	}

	cards := Score(officialFixture(), ds, 2)
	require.Len(t, cards, 1)
	require.Equal(t, []string{"B", "A"}, cards[0].PredictedTop)
	require.Equal(t, 2, cards[0].CorrectCount)
	require.InDelta(t, 100.0, cards[0].Accuracy, 1e-9)
}

func TestScore_ShortPredictionKeepsDenominator(t *testing.T) {
	// Only one scored candidate but top-N of 3: the predicted list is
	// shorter than N and the accuracy denominator stays N.
	ds := pollFixture("P", map[string]float64{"A": 10})

	cards := Score(officialFixture(), ds, 3)
	require.Len(t, cards[0].PredictedTop, 1)
	require.Equal(t, 1, cards[0].CorrectCount)
	require.InDelta(t, 100.0/3.0, cards[0].Accuracy, 1e-9)
}

func TestScore_TopNZero(t *testing.T) {
	ds := pollFixture("P", map[string]float64{"A": 10})

	cards := Score(officialFixture(), ds, 0)
	require.Empty(t, cards[0].PredictedTop)
	require.Equal(t, 0, cards[0].CorrectCount)
	require.Equal(t, 0.0, cards[0].Accuracy)
}

func TestPredictedTopN_SkipsAbsentScores(t *testing.T) {
	ds := &models.PollDataset{
		Instruments: []string{"P", "Q"},
		Records: []models.PollRecord{
			{Candidate: "A", Scores: map[string]float64{"P": 10}},
			{Candidate: "B", Scores: map[string]float64{"Q": 90}},
		},
	}

	require.Equal(t, []string{"A"}, PredictedTopN(ds, "P", 5))
	require.Equal(t, []string{"B"}, PredictedTopN(ds, "Q", 5))
}

func TestRanking_StableOnTies(t *testing.T) {
	ds := &models.PollDataset{
		Instruments: []string{"P"},
		Records: []models.PollRecord{
			{Candidate: "First", Scores: map[string]float64{"P": 20}},
			{Candidate: "Second", Scores: map[string]float64{"P": 20}},
			{Candidate: "Top", Scores: map[string]float64{"P": 30}},
		},
	}

	ranked := Ranking(ds, "P")
	require.Equal(t, "Top", ranked[0].Candidate)
	require.Equal(t, "First", ranked[1].Candidate)
	require.Equal(t, "Second", ranked[2].Candidate)
}
