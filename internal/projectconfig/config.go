// Package projectconfig provides the ProjectConfig struct and loader for
// .pollscore.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rmagsino/pollscore/internal/validation"
)

// ConfigFileName is the project configuration file discovered by Load.
const ConfigFileName = ".pollscore.yaml"

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultResultsFile  = "data/raw-actual-results.md"
	DefaultPollsFile    = "data/raw-opinion-poll-data.md"
	DefaultProcessedDir = "data/processed"

	DefaultTopN = 12

	DefaultCacheDir = ".pollscore-cache"
)

// PathsConfig holds the locations of the raw source tables and the
// processed-artifact directory.
type PathsConfig struct {
	Results   string `yaml:"results,omitempty"`
	Polls     string `yaml:"polls,omitempty"`
	Processed string `yaml:"processed,omitempty"`
}

// ScoringConfig holds default scoring parameters.
type ScoringConfig struct {
	TopN int `yaml:"top_n,omitempty"`
}

// CacheConfig holds processed-data cache settings.
type CacheConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
}

// ProjectConfig is the root of .pollscore.yaml.
type ProjectConfig struct {
	Paths   PathsConfig   `yaml:"paths,omitempty"`
	Scoring ScoringConfig `yaml:"scoring,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
}

// New returns a ProjectConfig populated with defaults.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Results:   DefaultResultsFile,
			Polls:     DefaultPollsFile,
			Processed: DefaultProcessedDir,
		},
		Scoring: ScoringConfig{
			TopN: DefaultTopN,
		},
		Cache: CacheConfig{
			Enabled: boolPtr(false),
			Dir:     DefaultCacheDir,
		},
	}
}

// CacheEnabled reports whether the processed-data cache is on.
func (c *ProjectConfig) CacheEnabled() bool {
	return c.Cache.Enabled != nil && *c.Cache.Enabled
}

// Load finds .pollscore.yaml by walking up from startDir (max 10 levels),
// validates it against the embedded schema, unmarshals it, and fills in
// missing fields with defaults. If no config file is found, returns
// defaults with a nil error. Real I/O errors (e.g. permission denied) are
// returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	if problems := validation.ValidateConfigBytes(data); len(problems) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", ConfigFileName, strings.Join(problems, "\n  "))
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .pollscore.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}
	if src.Paths.Polls != "" {
		dst.Paths.Polls = src.Paths.Polls
	}
	if src.Paths.Processed != "" {
		dst.Paths.Processed = src.Paths.Processed
	}

	// Scoring
	if src.Scoring.TopN != 0 {
		dst.Scoring.TopN = src.Scoring.TopN
	}

	// Cache
	if src.Cache.Enabled != nil {
		dst.Cache.Enabled = src.Cache.Enabled
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
}

func boolPtr(b bool) *bool { return &b }
