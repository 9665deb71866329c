package config

import (
	"os"
	"runtime"
)

// ConfigFileName is the per-directory configuration file QSI looks for
const ConfigFileName = ".qsi.kdl"

type Config struct {
	Version    int
	Normalizer Normalizer
	Similarity Similarity
	Matcher    Matcher
	Questions  Questions
	Watch      Watch
}

// Normalizer controls the shared text-cleaning pass applied to questions and
// syllabus segments. All options are explicit so runs are reproducible.
type Normalizer struct {
	StopWordSet   string // Versioned built-in stop-word set ("v1" or "none")
	StopWordsFile string // Optional TOML override for the stop-word list
	Stemming      bool   // Porter2 stemming of tokens
	StemMinLength int    // Minimum token length to stem
}

// Similarity controls the TF-IDF scoring engine
type Similarity struct {
	OCRCorrection bool    // Map unknown question terms to nearest vocabulary term
	OCRThreshold  float64 // Jaro-Winkler similarity required for a correction
}

// Matcher controls ranking and the low-confidence policy
type Matcher struct {
	MinConfidence float64 // Best matches below this are flagged, never discarded
	Workers       int     // Parallel question workers; 1 = sequential
}

// Questions controls splitting of raw question-paper text
type Questions struct {
	MinLength    int // Fragments shorter than this are discarded
	MaxQuestions int // Cap on questions taken from one paper
}

// Watch controls the file-watching re-run loop in the CLI
type Watch struct {
	DebounceMs int
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFileName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := LoadKDL(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Normalizer: Normalizer{
			StopWordSet:   "v1",
			StopWordsFile: "",
			Stemming:      true,
			StemMinLength: 3,
		},
		Similarity: Similarity{
			OCRCorrection: false,
			OCRThreshold:  0.85,
		},
		Matcher: Matcher{
			MinConfidence: 0.15,
			Workers:       1,
		},
		Questions: Questions{
			MinLength:    10,
			MaxQuestions: 200,
		},
		Watch: Watch{
			DebounceMs: 400,
		},
	}
}

// MaxWorkers resolves the worker count, treating 0 as auto-detect
func (c *Config) MaxWorkers() int {
	if c.Matcher.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Matcher.Workers
}
