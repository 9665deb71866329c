package config

import (
	"errors"
	"fmt"

	qsierrors "github.com/standardbeagle/qsi/internal/errors"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults
// Returns an error if validation fails
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.validateNormalizer(&cfg.Normalizer); err != nil {
		return qsierrors.NewConfigError("normalizer", "", err)
	}

	if err := v.validateSimilarity(&cfg.Similarity); err != nil {
		return qsierrors.NewConfigError("similarity", "", err)
	}

	if err := v.validateMatcher(&cfg.Matcher); err != nil {
		return qsierrors.NewConfigError("matcher", "", err)
	}

	if err := v.validateQuestions(&cfg.Questions); err != nil {
		return qsierrors.NewConfigError("questions", "", err)
	}

	v.setSmartDefaults(cfg)
	return nil
}

func (v *Validator) validateNormalizer(n *Normalizer) error {
	switch n.StopWordSet {
	case "v1", "none", "":
	default:
		return fmt.Errorf("unknown stop-word set %q (must be v1 or none)", n.StopWordSet)
	}

	if n.StemMinLength < 0 {
		return fmt.Errorf("StemMinLength must be >= 0, got %d", n.StemMinLength)
	}

	return nil
}

func (v *Validator) validateSimilarity(s *Similarity) error {
	if s.OCRThreshold < 0 || s.OCRThreshold > 1 {
		return fmt.Errorf("OCRThreshold must be in [0,1], got %.2f", s.OCRThreshold)
	}
	return nil
}

func (v *Validator) validateMatcher(m *Matcher) error {
	if m.MinConfidence < 0 || m.MinConfidence > 1 {
		return fmt.Errorf("MinConfidence must be in [0,1], got %.2f", m.MinConfidence)
	}

	if m.Workers < 0 {
		return errors.New("Workers cannot be negative")
	}

	return nil
}

func (v *Validator) validateQuestions(q *Questions) error {
	if q.MinLength < 0 {
		return fmt.Errorf("MinLength must be >= 0, got %d", q.MinLength)
	}

	if q.MaxQuestions <= 0 {
		return fmt.Errorf("MaxQuestions must be positive, got %d", q.MaxQuestions)
	}

	return nil
}

// setSmartDefaults fills in values that depend on the environment
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Normalizer.StopWordSet == "" {
		cfg.Normalizer.StopWordSet = "v1"
	}

	if cfg.Watch.DebounceMs <= 0 {
		cfg.Watch.DebounceMs = 400
	}
}
