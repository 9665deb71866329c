package textnorm

import (
	"testing"
)

func newTestNormalizer(t *testing.T, opts Options) *Normalizer {
	t.Helper()
	n, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return n
}

func TestNormalizeLowercasesAndStripsPunctuation(t *testing.T) {
	n := newTestNormalizer(t, Options{StopWordSet: "none"})

	got := n.Normalize("Dijkstra's Algorithm: Shortest-Path!")
	want := "dijkstra s algorithm shortest path"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizeRemovesStopWords(t *testing.T) {
	n := newTestNormalizer(t, Options{StopWordSet: "v1"})

	got := n.Normalize("What is the role of a stack in recursion?")
	// "what", "is", "the", "of", "a", "in" are stop words
	want := "role stack recursion"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizeStemming(t *testing.T) {
	n := newTestNormalizer(t, Options{StopWordSet: "none", Stemming: true, StemMinLength: 3})

	got := n.Normalize("searching searches searched")
	want := "search search search"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := newTestNormalizer(t, DefaultOptions())

	cases := []string{"", "   ", "\t\n", "?!.,;:", "the is of and a"}
	for _, input := range cases {
		if got := n.Normalize(input); got != "" {
			t.Errorf("Expected empty normalization for %q, got %q", input, got)
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	n := newTestNormalizer(t, DefaultOptions())

	input := "Explain Bayes' theorem with an example."
	first := n.Normalize(input)
	for i := 0; i < 10; i++ {
		if got := n.Normalize(input); got != first {
			t.Fatalf("Normalization not deterministic: %q vs %q", first, got)
		}
	}
}

func TestTokensIdenticalForIdenticalContent(t *testing.T) {
	n := newTestNormalizer(t, DefaultOptions())

	a := n.Normalize("Bayes' theorem and probability basics.")
	b := n.Normalize("bayes theorem AND Probability basics")
	if a != b {
		t.Errorf("Equivalent texts should normalize identically: %q vs %q", a, b)
	}
}

func TestNewRejectsUnknownStopWordSet(t *testing.T) {
	if _, err := New(Options{StopWordSet: "v99"}); err == nil {
		t.Error("Expected error for unknown stop-word set")
	}
}
