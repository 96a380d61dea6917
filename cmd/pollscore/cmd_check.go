package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmagsino/pollscore/internal/checks"
	"github.com/rmagsino/pollscore/internal/names"
	"github.com/rmagsino/pollscore/internal/projectconfig"
)

var (
	checkResultsPath string
	checkPollsPath   string
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the raw data files",
		Long: `Validate both raw source tables before processing: table shape, vote-count
parsing, identity collisions, instrument coverage, and the provenance links
cited inside the files. Exits nonzero when any error-level problem is found.`,
		Args: cobra.NoArgs,
		RunE: checkCommandE,
	}

	cmd.Flags().StringVar(&checkResultsPath, "results", "", "Path to the raw official-results table (default from config)")
	cmd.Flags().StringVar(&checkPollsPath, "polls", "", "Path to the raw opinion-poll table (default from config)")

	return cmd
}

func checkCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	std := names.NewStandardizer()
	out := cmd.OutOrStdout()

	resultsReport, err := checks.CheckResultsFile(resolvePath(checkResultsPath, cfg.Paths.Results), std)
	if err != nil {
		return err
	}
	printFileReport(out, resultsReport)

	pollsReport, err := checks.CheckPollsFile(resolvePath(checkPollsPath, cfg.Paths.Polls), std)
	if err != nil {
		return err
	}
	printFileReport(out, pollsReport)

	if !resultsReport.Passed() || !pollsReport.Passed() {
		return &CheckFailureError{Message: "data checks failed"}
	}
	fmt.Fprintln(out, "All data checks passed")
	return nil
}

func printFileReport(w io.Writer, report *checks.FileReport) {
	fmt.Fprintf(w, "%s: %d rows\n", report.Path, report.Rows)
	for _, issue := range report.Issues {
		marker := "⚠️"
		if issue.Severity == "error" {
			marker = "❌"
		}
		fmt.Fprintf(w, "  %s [%s] %s\n", marker, issue.Rule, issue.Message)
	}
	if len(report.SourceLinks) > 0 {
		fmt.Fprintf(w, "  sources:\n")
		for _, link := range report.SourceLinks {
			fmt.Fprintf(w, "    %s\n", link)
		}
	}
	fmt.Fprintln(w)
}
