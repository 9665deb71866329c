package similarity

import (
	"testing"
)

func TestCorrectExactMatch(t *testing.T) {
	tc := NewTermCorrector(0.85)

	got, ok := tc.Correct("dijkstra", []string{"bellman", "dijkstra", "kruskal"})
	if !ok || got != "dijkstra" {
		t.Errorf("Expected exact match to return itself, got %q ok=%v", got, ok)
	}
}

func TestCorrectNearMiss(t *testing.T) {
	tc := NewTermCorrector(0.85)

	got, ok := tc.Correct("dijkstre", []string{"bellman", "dijkstra", "kruskal"})
	if !ok {
		t.Fatal("Expected a correction for a one-character typo")
	}
	if got != "dijkstra" {
		t.Errorf("Expected dijkstra, got %q", got)
	}
}

func TestCorrectBelowThreshold(t *testing.T) {
	tc := NewTermCorrector(0.95)

	if _, ok := tc.Correct("entropy", []string{"bellman", "dijkstra"}); ok {
		t.Error("Unrelated token should not be corrected")
	}
}

func TestCorrectEmptyInputs(t *testing.T) {
	tc := NewTermCorrector(0.85)

	if _, ok := tc.Correct("", []string{"x"}); ok {
		t.Error("Empty token should not correct")
	}
	if _, ok := tc.Correct("x", nil); ok {
		t.Error("Empty candidate list should not correct")
	}
}

func TestNewTermCorrectorClampsThreshold(t *testing.T) {
	if got := NewTermCorrector(-1).Threshold(); got != 0.85 {
		t.Errorf("Expected default threshold 0.85, got %v", got)
	}
	if got := NewTermCorrector(2.0).Threshold(); got != 0.85 {
		t.Errorf("Expected default threshold 0.85, got %v", got)
	}
	if got := NewTermCorrector(0.7).Threshold(); got != 0.7 {
		t.Errorf("Expected threshold 0.7, got %v", got)
	}
}
