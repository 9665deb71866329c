package questions

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/qsi/internal/debug"
	"github.com/standardbeagle/qsi/internal/types"
)

// Question papers number items as "1.", "1)" or "Q.1". A new item starts at
// a line boundary whose first token is such a marker; the marker stays part
// of the question text.
var (
	markerRe      = regexp.MustCompile(`\n\s*((?:Q\.\s*\d{1,3}|\d{1,3}[.)]))`)
	innerMarkerRe = regexp.MustCompile(`\S\n\s*(\d{1,3}\.)`)
)

// Options controls splitting of raw question-paper text
type Options struct {
	MinLength    int // Fragments with this many characters or fewer are dropped
	MaxQuestions int // Cap on questions taken from one paper; 0 = no cap
}

// DefaultOptions returns the splitting defaults
func DefaultOptions() Options {
	return Options{MinLength: 10, MaxQuestions: 200}
}

// Split breaks raw question-paper text into individual questions. Fragments
// at or under the length floor are dropped, the rest are numbered in
// document order starting at 1. Empty input yields an empty, non-nil slice.
func Split(text string, opts Options) []types.Question {
	fragments := SplitText(text, opts)
	questions := make([]types.Question, len(fragments))
	for i, f := range fragments {
		questions[i] = types.Question{Index: i + 1, Text: f}
	}
	return questions
}

// SplitText is Split without the numbering, returning the raw fragments
func SplitText(text string, opts Options) []string {
	out := []string{}
	if strings.TrimSpace(text) == "" {
		return out
	}

	text = strings.ReplaceAll(text, "\r", "\n")

	for _, part := range splitBefore(text, markerRe) {
		// A paragraph can still hold several numbered items of its own.
		for _, item := range splitBefore(part, innerMarkerRe) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if utf8.RuneCountInString(item) <= opts.MinLength {
				debug.Log("questions", "dropping short fragment: %q\n", item)
				continue
			}
			out = append(out, item)
		}
	}

	if opts.MaxQuestions > 0 && len(out) > opts.MaxQuestions {
		debug.Log("questions", "capping %d questions at %d\n", len(out), opts.MaxQuestions)
		out = out[:opts.MaxQuestions]
	}
	return out
}

// splitBefore cuts text immediately before each match of the pattern's
// first capture group. The marker itself is kept with the fragment it
// opens, and text before the first marker is kept as a fragment of its own.
func splitBefore(text string, re *regexp.Regexp) []string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	parts := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		cut := m[2] // start of the capture group, after the line break
		if cut > prev {
			parts = append(parts, text[prev:cut])
		}
		prev = cut
	}
	parts = append(parts, text[prev:])
	return parts
}
