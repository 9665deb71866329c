package textnorm

import (
	"strings"

	"github.com/surgebase/porter2"
)

// Stemmer provides word normalization through Porter2 stemming so that
// different forms of a term ("traverse", "traversal", "traversing") land on
// the same vector dimension.
type Stemmer struct {
	enabled    bool
	minLength  int
	exclusions map[string]bool // Words to never stem
}

// NewStemmer creates a new stemmer with configuration
func NewStemmer(enabled bool, minLength int, exclusions map[string]bool) *Stemmer {
	if minLength < 0 {
		minLength = 3
	}

	if exclusions == nil {
		exclusions = make(map[string]bool)
	}

	return &Stemmer{
		enabled:    enabled,
		minLength:  minLength,
		exclusions: exclusions,
	}
}

// IsEnabled checks if stemming is enabled
func (s *Stemmer) IsEnabled() bool {
	return s.enabled
}

// GetMinLength returns the minimum word length for stemming
func (s *Stemmer) GetMinLength() int {
	return s.minLength
}

// IsExcluded checks if a word is in the exclusion list
func (s *Stemmer) IsExcluded(word string) bool {
	return s.exclusions[strings.ToLower(word)]
}

// Stem returns the stem of a word, or the original word if stemming is
// disabled, the word is excluded, or it is shorter than the minimum length
func (s *Stemmer) Stem(word string) string {
	if !s.enabled {
		return word
	}

	if s.exclusions[strings.ToLower(word)] {
		return word
	}

	if len(word) < s.minLength {
		return word
	}

	return porter2.Stem(word)
}

// StemAll applies stemming to multiple words
func (s *Stemmer) StemAll(words []string) []string {
	if !s.enabled {
		return words
	}

	result := make([]string, 0, len(words))
	for _, word := range words {
		result = append(result, s.Stem(word))
	}

	return result
}
