package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/rmagsino/pollscore/internal/cache"
	"github.com/rmagsino/pollscore/internal/dataset"
	"github.com/rmagsino/pollscore/internal/models"
	"github.com/rmagsino/pollscore/internal/names"
	"github.com/rmagsino/pollscore/internal/projectconfig"
)

// datasets bundles both canonicalized tables for one run.
type datasets struct {
	Official []models.OfficialResult `json:"official"`
	Polls    *models.PollDataset     `json:"polls"`
}

// loadDatasets reads and canonicalizes both raw tables, consulting the
// processed-data cache when the project config enables it. Cache entries
// are keyed by source content and rule fingerprint, so a stale entry
// cannot survive an edit to either.
func loadDatasets(cfg *projectconfig.ProjectConfig, resultsPath, pollsPath string) (*datasets, error) {
	std := names.NewStandardizer()

	if !cfg.CacheEnabled() {
		return parseDatasets(resultsPath, pollsPath, std)
	}

	rawResults, err := os.ReadFile(resultsPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resultsPath, err)
	}
	rawPolls, err := os.ReadFile(pollsPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pollsPath, err)
	}

	combined := bytes.Join([][]byte{rawResults, rawPolls}, []byte{0})
	key := cache.Key(combined, std.Fingerprint())
	c := cache.New(cfg.Cache.Dir)

	var cached datasets
	if ok, err := c.Get(key, &cached); err == nil && ok {
		slog.Debug("processed-data cache hit", "key", key)
		return &cached, nil
	}

	ds, err := parseDatasets(resultsPath, pollsPath, std)
	if err != nil {
		return nil, err
	}
	if err := c.Put(key, ds); err != nil {
		slog.Debug("processed-data cache write failed", "error", err)
	}
	return ds, nil
}

func parseDatasets(resultsPath, pollsPath string, std *names.Standardizer) (*datasets, error) {
	official, err := dataset.LoadResults(resultsPath, std)
	if err != nil {
		return nil, err
	}
	polls, err := dataset.LoadPolls(pollsPath, std)
	if err != nil {
		return nil, err
	}
	slog.Debug("datasets parsed",
		"official_rows", len(official),
		"poll_rows", len(polls.Records),
		"instruments", len(polls.Instruments))
	return &datasets{Official: official, Polls: polls}, nil
}

// resolvePath prefers an explicit flag value over the config default.
func resolvePath(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

// resolveTopN prefers an explicit --top-n over the config default. The flag
// default is negative so a user-supplied 0 stays distinguishable.
func resolveTopN(flagValue int, cfg *projectconfig.ProjectConfig) int {
	if flagValue >= 0 {
		return flagValue
	}
	return cfg.Scoring.TopN
}
