package textnorm

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// StopWordSet is an explicit, versioned stop-word list. Versioning the set
// keeps normalization reproducible across reimplementations instead of
// depending on a library default that may drift.
type StopWordSet struct {
	name  string
	words map[string]bool
}

// stopWordsV1 is the built-in "v1" list: English function words plus the
// interrogative boilerplate common in exam papers.
var stopWordsV1 = []string{
	"a", "about", "above", "after", "again", "all", "also", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "being",
	"below", "between", "both", "but", "by", "can", "could", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"him", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "me", "more", "most", "my", "no", "nor", "not", "of",
	"off", "on", "once", "only", "or", "other", "our", "ours", "out",
	"over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until",
	"up", "very", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "would", "you", "your",
	"yours",
}

// StopWords returns a built-in stop-word set by version name
func StopWords(version string) (*StopWordSet, error) {
	switch version {
	case "", "v1":
		return newStopWordSet("v1", stopWordsV1), nil
	case "none":
		return newStopWordSet("none", nil), nil
	default:
		return nil, fmt.Errorf("unknown stop-word set %q (must be v1 or none)", version)
	}
}

// stopWordsFile is the on-disk TOML shape for a stop-word override
type stopWordsFile struct {
	Name  string   `toml:"name"`
	Words []string `toml:"words"`
}

// LoadStopWordsTOML loads a stop-word set from a TOML file.
// The file replaces the built-in list entirely; it does not extend it.
func LoadStopWordsTOML(path string) (*StopWordSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop-word file %s: %w", path, err)
	}

	var file stopWordsFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse stop-word file %s: %w", path, err)
	}

	name := file.Name
	if name == "" {
		name = path
	}

	return newStopWordSet(name, file.Words), nil
}

func newStopWordSet(name string, words []string) *StopWordSet {
	set := &StopWordSet{
		name:  name,
		words: make(map[string]bool, len(words)),
	}
	for _, w := range words {
		set.words[w] = true
	}
	return set
}

// Name returns the set's version name
func (s *StopWordSet) Name() string {
	return s.name
}

// Contains reports whether a lowercased token is a stop word
func (s *StopWordSet) Contains(token string) bool {
	return s.words[token]
}

// Len returns the number of words in the set
func (s *StopWordSet) Len() int {
	return len(s.words)
}
