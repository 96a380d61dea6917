package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmagsino/pollscore/internal/models"
)

func sampleSummary() *models.Summary {
	return &models.Summary{
		TopN:      2,
		ActualTop: []string{"Bong Go", "Erwin Tulfo"},
		Scorecards: []models.Scorecard{
			{Instrument: "SWS", PredictedTop: []string{"Bong Go", "Ben Tulfo"}, CorrectCount: 1, Accuracy: 50},
			{Instrument: "Pulse Asia", PredictedTop: []string{"Bong Go", "Erwin Tulfo"}, CorrectCount: 2, Accuracy: 100},
		},
		MeanAccuracy:   75,
		AccuracySpread: 25,
		Misses: []models.CandidateCount{
			{Candidate: "Erwin Tulfo", Count: 1},
			{Candidate: "Bong Go", Count: 0},
		},
		FalsePositives: []models.CandidateCount{
			{Candidate: "Ben Tulfo", Count: 1},
		},
	}
}

func TestFormatMarkdownReport(t *testing.T) {
	report := FormatMarkdownReport(sampleSummary())

	assert.Contains(t, report, "## 🗳️ Poll Accuracy Report")
	assert.Contains(t, report, "**Top-N:** 2 | **Instruments:** 2 | **Mean accuracy:** 75.00% (σ=25.00)")

	// Ranked table lists the more accurate instrument first.
	pulse := strings.Index(report, "| Pulse Asia | 2/2 | 100.0% |")
	sws := strings.Index(report, "| SWS | 1/2 | 50.0% |")
	require.GreaterOrEqual(t, pulse, 0)
	require.GreaterOrEqual(t, sws, 0)
	assert.Less(t, pulse, sws)

	assert.Contains(t, report, "### Official top 2")
	assert.Contains(t, report, "1. Bong Go")
	assert.Contains(t, report, "2. Erwin Tulfo")

	assert.Contains(t, report, "### Winners most often missed")
	assert.Contains(t, report, "- **Erwin Tulfo**: missed by 1 of 2 instruments (50.0%)")
	assert.Contains(t, report, "### Losers most often predicted")
	assert.Contains(t, report, "- **Ben Tulfo**: predicted by 1 of 2 instruments (50.0%)")
}

func TestFormatMarkdownReport_SkipsZeroCountSections(t *testing.T) {
	summary := sampleSummary()
	summary.Misses = []models.CandidateCount{{Candidate: "Bong Go", Count: 0}}
	summary.FalsePositives = nil

	report := FormatMarkdownReport(summary)
	assert.NotContains(t, report, "Winners most often missed")
	assert.NotContains(t, report, "Losers most often predicted")
}
