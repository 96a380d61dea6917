package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pollscore",
		Short: "Pollscore - compare pre-election opinion polls against official results",
		Long: `Pollscore is a command-line tool for evaluating opinion polls.

It canonicalizes candidate names across the official election tally and the
pre-election opinion-poll table, then measures how accurately each polling
instrument predicted the official top-N winners.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newProcessCommand())
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newCheckCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
