// Package config holds the application's configuration values.
// Everything is an explicit value passed into component calls; there is
// no ambient global state, so ingestion, distribution, and scoring stay
// independently testable.
package config

import (
	"fmt"
	"strings"
)

// Config collects the tunable values used by the CLI.
type Config struct {
	// PassThreshold is the minimum score percentage to pass a quiz.
	PassThreshold float64 `yaml:"pass_threshold"`
	// MaxQuestions caps the number of questions per generated quiz.
	MaxQuestions int `yaml:"max_questions"`
	// QuizCount is the default number of quizzes in duplicate mode.
	QuizCount int `yaml:"quiz_count"`
	// IDPrefix prefixes generated quiz identifiers.
	IDPrefix string `yaml:"id_prefix"`
	// OutputDir is where generated quiz JSON files are written.
	OutputDir string `yaml:"output_dir"`
	// ReportsDir is where run reports are written.
	ReportsDir string `yaml:"reports_dir"`
	// MaxStoredRuns caps the run-history retention.
	MaxStoredRuns int `yaml:"max_stored_runs"`
	// SamplePatterns are folder-name substrings marking sample data.
	SamplePatterns []string `yaml:"sample_patterns"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		PassThreshold:  80.0,
		MaxQuestions:   50,
		QuizCount:      1,
		IDPrefix:       "quiz",
		OutputDir:      "data/quizzes",
		ReportsDir:     "data/reports",
		MaxStoredRuns:  100,
		SamplePatterns: []string{"sample", "test", "demo", "example"},
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.PassThreshold <= 0 || c.PassThreshold > 100 {
		return fmt.Errorf("pass_threshold must be in (0, 100], got %v", c.PassThreshold)
	}
	if c.MaxQuestions < 1 {
		return fmt.Errorf("max_questions must be at least 1, got %d", c.MaxQuestions)
	}
	if c.QuizCount < 1 {
		return fmt.Errorf("quiz_count must be at least 1, got %d", c.QuizCount)
	}
	if c.IDPrefix == "" {
		return fmt.Errorf("id_prefix must not be empty")
	}
	if c.MaxStoredRuns < 1 {
		return fmt.Errorf("max_stored_runs must be at least 1, got %d", c.MaxStoredRuns)
	}
	return nil
}

// IsSampleData reports whether a quiz-set folder name matches one of
// the sample-data patterns (case-insensitive substring match).
func (c Config) IsSampleData(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range c.SamplePatterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
