package textnorm

import (
	"strings"
	"unicode"
)

// Normalizer is the shared text-cleaning pass applied uniformly to questions
// and syllabus segments so comparisons are on equal footing. It is a pure
// transform: identical input always produces identical output, and there is
// no hidden state.
type Normalizer struct {
	stopWords *StopWordSet
	stemmer   *Stemmer
}

// Options configures a Normalizer. The zero value is not usable; build
// through New so every option is resolved explicitly.
type Options struct {
	StopWordSet   string // "v1" (default) or "none"
	StopWordsFile string // Optional TOML override, replaces the built-in set
	Stemming      bool
	StemMinLength int
}

// DefaultOptions returns the options used when none are supplied
func DefaultOptions() Options {
	return Options{
		StopWordSet:   "v1",
		Stemming:      true,
		StemMinLength: 3,
	}
}

// New creates a Normalizer from options
func New(opts Options) (*Normalizer, error) {
	var stopWords *StopWordSet
	var err error

	if opts.StopWordsFile != "" {
		stopWords, err = LoadStopWordsTOML(opts.StopWordsFile)
	} else {
		stopWords, err = StopWords(opts.StopWordSet)
	}
	if err != nil {
		return nil, err
	}

	return &Normalizer{
		stopWords: stopWords,
		stemmer:   NewStemmer(opts.Stemming, opts.StemMinLength, nil),
	}, nil
}

// StopWordSetName returns the name of the active stop-word set
func (n *Normalizer) StopWordSetName() string {
	return n.stopWords.Name()
}

// Normalize lowercases, strips punctuation, collapses whitespace, removes
// stop words, and stems the remaining tokens. Empty or whitespace-only input
// normalizes to the empty string; callers treat that as unmatchable, not as
// an error.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.Tokens(text), " ")
}

// Tokens returns the normalized token stream for a text
func (n *Normalizer) Tokens(text string) []string {
	lowered := strings.ToLower(text)

	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if n.stopWords.Contains(field) {
			continue
		}
		tokens = append(tokens, n.stemmer.Stem(field))
	}

	return tokens
}
