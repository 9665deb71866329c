package similarity

import (
	"github.com/hbollon/go-edlib"
)

// TermCorrector maps a noisy token to the most similar term from a
// candidate vocabulary using Jaro-Winkler similarity. OCR output routinely
// mangles a character or two ("Dijkstre" for "Dijkstra"); without
// correction such tokens land on their own vector dimension and contribute
// nothing to the match.
type TermCorrector struct {
	threshold float64
}

// NewTermCorrector creates a corrector with the given similarity threshold
func NewTermCorrector(threshold float64) *TermCorrector {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.85
	}
	return &TermCorrector{threshold: threshold}
}

// Threshold returns the configured similarity threshold
func (tc *TermCorrector) Threshold() float64 {
	return tc.threshold
}

// Correct returns the candidate most similar to the token, provided it
// meets the threshold. Candidates must be sorted; ties on similarity keep
// the first candidate so correction is deterministic.
func (tc *TermCorrector) Correct(token string, candidates []string) (string, bool) {
	if token == "" || len(candidates) == 0 {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for _, candidate := range candidates {
		if candidate == token {
			return candidate, true
		}

		score, err := edlib.StringsSimilarity(token, candidate, edlib.JaroWinkler)
		if err != nil {
			continue
		}

		if float64(score) > bestScore {
			bestScore = float64(score)
			best = candidate
		}
	}

	if bestScore >= tc.threshold {
		return best, true
	}
	return "", false
}
