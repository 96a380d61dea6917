package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmagsino/pollscore/internal/picker"
	"github.com/rmagsino/pollscore/internal/projectconfig"
	"github.com/rmagsino/pollscore/internal/scoring"
)

var (
	showTopN        int
	showResultsPath string
	showPollsPath   string
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [instrument]",
		Short: "Show one instrument's predictions against the official results",
		Long: `Display a single polling instrument's predicted top-N next to the official
top-N, with cross-ranks and hit/miss markers, followed by the instrument's
full ordered candidate list. With no argument, pick the instrument
interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: showCommandE,
	}

	cmd.Flags().IntVarP(&showTopN, "top-n", "n", -1, "Number of top candidates to compare (default from config)")
	cmd.Flags().StringVar(&showResultsPath, "results", "", "Path to the raw official-results table (default from config)")
	cmd.Flags().StringVar(&showPollsPath, "polls", "", "Path to the raw opinion-poll table (default from config)")

	return cmd
}

func showCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	ds, err := loadDatasets(cfg,
		resolvePath(showResultsPath, cfg.Paths.Results),
		resolvePath(showPollsPath, cfg.Paths.Polls))
	if err != nil {
		return err
	}

	var instrument string
	if len(args) == 1 {
		instrument = args[0]
	} else {
		instrument, err = picker.SelectInstrument(os.Stdin, cmd.OutOrStdout(), ds.Polls.Instruments)
		if err != nil {
			return err
		}
	}
	if !slices.Contains(ds.Polls.Instruments, instrument) {
		return fmt.Errorf("unknown instrument %q: have %s",
			instrument, strings.Join(ds.Polls.Instruments, ", "))
	}

	topN := resolveTopN(showTopN, cfg)
	actual := scoring.ActualTopN(ds.Official, topN)
	predicted := scoring.PredictedTopN(ds.Polls, instrument, topN)
	ranking := scoring.Ranking(ds.Polls, instrument)

	printInstrumentDetail(cmd.OutOrStdout(), instrument, topN, actual, predicted, ranking)
	return nil
}

func printInstrumentDetail(w io.Writer, instrument string, topN int, actual, predicted []string, ranking []scoring.RankedScore) {
	correct := 0
	for _, c := range predicted {
		if slices.Contains(actual, c) {
			correct++
		}
	}
	accuracy := 0.0
	if topN > 0 {
		accuracy = float64(correct) / float64(topN) * 100
	}

	fmt.Fprintf(w, "Instrument: %s\n", instrument)
	fmt.Fprintf(w, "Correct predictions: %d out of %d (%.1f%%)\n", correct, topN, accuracy)

	fmt.Fprintf(w, "\nPredicted top %d:\n", topN)
	for i, candidate := range predicted {
		if pos := slices.Index(actual, candidate); pos >= 0 {
			fmt.Fprintf(w, "%2d. %s ✓ (actual rank %d)\n", i+1, candidate, pos+1)
		} else {
			fmt.Fprintf(w, "%2d. %s ✗ (not in official top %d)\n", i+1, candidate, topN)
		}
	}

	fmt.Fprintf(w, "\nOfficial top %d:\n", topN)
	for i, candidate := range actual {
		if pos := slices.Index(predicted, candidate); pos >= 0 {
			fmt.Fprintf(w, "%2d. %s ✓ (predicted rank %d)\n", i+1, candidate, pos+1)
		} else {
			fmt.Fprintf(w, "%2d. %s ✗ (not predicted)\n", i+1, candidate)
		}
	}

	fmt.Fprintf(w, "\nAll candidates scored by %s:\n", instrument)
	for i, r := range ranking {
		marker := " "
		if slices.Contains(actual, r.Candidate) {
			marker = "✓"
		}
		fmt.Fprintf(w, "%2d. %s %s (%.1f%%)\n", i+1, marker, r.Candidate, r.Score)
	}
}
