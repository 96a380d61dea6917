package main

import (
	"fmt"
	"strings"

	"github.com/rmagsino/pollscore/internal/models"
)

// FormatMarkdownReport formats a Summary as a markdown document suitable for
// pasting into an issue or a project page.
func FormatMarkdownReport(summary *models.Summary) string {
	var b strings.Builder

	b.WriteString("## 🗳️ Poll Accuracy Report\n\n")
	b.WriteString(fmt.Sprintf("**Top-N:** %d | **Instruments:** %d | **Mean accuracy:** %.2f%% (σ=%.2f)\n\n",
		summary.TopN, len(summary.Scorecards), summary.MeanAccuracy, summary.AccuracySpread))

	b.WriteString("### Instruments ranked by accuracy\n\n")
	b.WriteString("| Instrument | Correct | Accuracy |\n")
	b.WriteString("|------------|---------|----------|\n")
	for _, card := range sortedByAccuracy(summary.Scorecards) {
		b.WriteString(fmt.Sprintf("| %s | %d/%d | %.1f%% |\n",
			card.Instrument, card.CorrectCount, summary.TopN, card.Accuracy))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("### Official top %d\n\n", summary.TopN))
	for i, candidate := range summary.ActualTop {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, candidate))
	}
	b.WriteString("\n")

	writeCountSection(&b, "Winners most often missed", summary.Misses,
		len(summary.Scorecards), "missed by")
	writeCountSection(&b, "Losers most often predicted", summary.FalsePositives,
		len(summary.Scorecards), "predicted by")

	return b.String()
}

func writeCountSection(b *strings.Builder, title string, counts []models.CandidateCount, instruments int, verb string) {
	written := 0
	for _, c := range counts {
		if c.Count == 0 || written >= 5 {
			break
		}
		if written == 0 {
			b.WriteString(fmt.Sprintf("### %s\n\n", title))
		}
		share := float64(c.Count) / float64(instruments) * 100
		b.WriteString(fmt.Sprintf("- **%s**: %s %d of %d instruments (%.1f%%)\n",
			c.Candidate, verb, c.Count, instruments, share))
		written++
	}
	if written > 0 {
		b.WriteString("\n")
	}
}
