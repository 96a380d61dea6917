package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/rmagsino/pollscore/internal/models"
	"github.com/rmagsino/pollscore/internal/projectconfig"
	"github.com/rmagsino/pollscore/internal/scoring"
)

var (
	scoreTopN        int
	scoreFormat      string
	scoreResultsPath string
	scorePollsPath   string
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score every polling instrument against the official top-N",
		Long: `Compute, for each polling instrument, how many of its predicted top-N
candidates appear in the official top-N, and report per-instrument accuracy
alongside the aggregate views: mean accuracy, most-missed winners, and
most-over-predicted losers.`,
		Args: cobra.NoArgs,
		RunE: scoreCommandE,
	}

	cmd.Flags().IntVarP(&scoreTopN, "top-n", "n", -1, "Number of top candidates to compare (default from config)")
	cmd.Flags().StringVarP(&scoreFormat, "format", "f", "table", "Output format: table, json, or markdown")
	cmd.Flags().StringVar(&scoreResultsPath, "results", "", "Path to the raw official-results table (default from config)")
	cmd.Flags().StringVar(&scorePollsPath, "polls", "", "Path to the raw opinion-poll table (default from config)")

	return cmd
}

func scoreCommandE(cmd *cobra.Command, _ []string) error {
	if scoreFormat != "table" && scoreFormat != "json" && scoreFormat != "markdown" {
		return fmt.Errorf("unsupported format %q: must be table, json, or markdown", scoreFormat)
	}

	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	ds, err := loadDatasets(cfg,
		resolvePath(scoreResultsPath, cfg.Paths.Results),
		resolvePath(scorePollsPath, cfg.Paths.Polls))
	if err != nil {
		return err
	}

	summary := scoring.BuildSummary(ds.Official, ds.Polls, resolveTopN(scoreTopN, cfg))

	out := cmd.OutOrStdout()
	switch scoreFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case "markdown":
		_, err := fmt.Fprint(out, FormatMarkdownReport(summary))
		return err
	default:
		printSummaryTable(out, summary)
		return nil
	}
}

// sortedByAccuracy returns the scorecards ordered by accuracy descending.
// Ties keep the instrument column order.
func sortedByAccuracy(cards []models.Scorecard) []models.Scorecard {
	sorted := make([]models.Scorecard, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Accuracy > sorted[j].Accuracy
	})
	return sorted
}

func printSummaryTable(w io.Writer, summary *models.Summary) {
	const (
		colCorrect  = 9
		colAccuracy = 10
	)

	nameWidth := len("Instrument")
	for _, card := range summary.Scorecards {
		if sw := runewidth.StringWidth(card.Instrument); sw > nameWidth {
			nameWidth = sw
		}
	}

	fmt.Fprintf(w, "Instruments ranked by top-%d accuracy:\n\n", summary.TopN)
	fmt.Fprintf(w, "%s  %s  %s\n",
		padRight("Instrument", nameWidth),
		padRight("Correct", colCorrect),
		padRight("Accuracy", colAccuracy))
	for _, card := range sortedByAccuracy(summary.Scorecards) {
		fmt.Fprintf(w, "%s  %s  %s\n",
			padRight(card.Instrument, nameWidth),
			padRight(fmt.Sprintf("%d/%d", card.CorrectCount, summary.TopN), colCorrect),
			padRight(fmt.Sprintf("%.1f%%", card.Accuracy), colAccuracy))
	}

	fmt.Fprintf(w, "\nMean accuracy across %d instruments: %.2f%% (σ=%.2f)\n",
		len(summary.Scorecards), summary.MeanAccuracy, summary.AccuracySpread)

	printCandidateCounts(w, "Official top winners most often missed by the polls:",
		summary.Misses, len(summary.Scorecards), "missed by")
	printCandidateCounts(w, "Candidates most often predicted despite losing:",
		summary.FalsePositives, len(summary.Scorecards), "predicted by")
}

func printCandidateCounts(w io.Writer, title string, counts []models.CandidateCount, instruments int, verb string) {
	shown := 0
	for _, c := range counts {
		if c.Count == 0 || shown >= 5 {
			break
		}
		if shown == 0 {
			fmt.Fprintf(w, "\n%s\n", title)
		}
		fmt.Fprintf(w, "- %s: %s %d of %d instruments\n", c.Candidate, verb, c.Count, instruments)
		shown++
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
