package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rmagsino/pollscore/internal/dataset"
	"github.com/rmagsino/pollscore/internal/names"
	"github.com/rmagsino/pollscore/internal/projectconfig"
)

// Artifact file names under the processed directory.
const (
	resultsArtifact = "actual_results.csv"
	pollsArtifact   = "opinion_polls.csv"
	mappingArtifact = "name_mapping.csv"
)

var (
	processResultsPath string
	processPollsPath   string
	processOutDir      string
)

func newProcessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Canonicalize the raw tables and write the processed CSV artifacts",
		Long: `Parse the raw official-results and opinion-poll tables, standardize every
candidate name, and write three CSV artifacts to the processed directory:
the canonicalized results, the canonicalized polls, and the raw-to-canonical
name mapping.`,
		Args: cobra.NoArgs,
		RunE: processCommandE,
	}

	cmd.Flags().StringVar(&processResultsPath, "results", "", "Path to the raw official-results table (default from config)")
	cmd.Flags().StringVar(&processPollsPath, "polls", "", "Path to the raw opinion-poll table (default from config)")
	cmd.Flags().StringVarP(&processOutDir, "out", "o", "", "Directory for processed artifacts (default from config)")

	return cmd
}

func processCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	resultsPath := resolvePath(processResultsPath, cfg.Paths.Results)
	pollsPath := resolvePath(processPollsPath, cfg.Paths.Polls)
	outDir := resolvePath(processOutDir, cfg.Paths.Processed)

	ds, err := loadDatasets(cfg, resultsPath, pollsPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	if err := dataset.WriteResultsCSV(filepath.Join(outDir, resultsArtifact), ds.Official); err != nil {
		return err
	}
	if err := dataset.WritePollsCSV(filepath.Join(outDir, pollsArtifact), ds.Polls); err != nil {
		return err
	}

	// The mapping concatenates both datasets in load order, duplicates removed.
	mapping := names.NewMapping()
	for _, r := range ds.Official {
		mapping.Add(r.RawName, r.Candidate)
	}
	for _, rec := range ds.Polls.Records {
		mapping.Add(rec.RawName, rec.Candidate)
	}
	if err := mapping.WriteCSV(filepath.Join(outDir, mappingArtifact)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed %d candidates from official results\n", len(ds.Official))
	fmt.Fprintf(out, "Processed %d candidates from opinion polls\n", len(ds.Polls.Records))
	fmt.Fprintf(out, "Created name mapping with %d entries\n", mapping.Len())
	fmt.Fprintf(out, "Artifacts written to %s\n", outDir)
	return nil
}
