package matcher

import (
	"context"

	"golang.org/x/sync/errgroup"

	qsierrors "github.com/standardbeagle/qsi/internal/errors"
	"github.com/standardbeagle/qsi/internal/syllabus"
	"github.com/standardbeagle/qsi/internal/types"
)

// Match scores a single question against the index. It is Assemble for a
// one-question batch: corpus weights are built over that question plus the
// segment texts.
func (m *Matcher) Match(ctx context.Context, q types.Question, index *syllabus.Index) (types.MatchResult, error) {
	results, err := m.Assemble(ctx, []types.Question{q}, index)
	if err != nil {
		return types.MatchResult{}, err
	}
	return results[0], nil
}

// Assemble runs the full batch: it builds the batch vector space, scores
// every question, and returns exactly one result per question in input
// order. Results are complete before return; nothing is streamed.
//
// An empty syllabus index fails the whole batch up front. An empty question
// slice is not an error and yields an empty result set. An individual
// empty-text question is not an error either: it vectorizes to zero, scores
// 0.0 against every segment, and comes back flagged low-confidence like any
// other no-overlap question.
func (m *Matcher) Assemble(ctx context.Context, questions []types.Question, index *syllabus.Index) ([]types.MatchResult, error) {
	if index == nil || index.IsEmpty() {
		return nil, qsierrors.NewEmptySyllabusIndexError("assemble")
	}

	results := make([]types.MatchResult, len(questions))
	if len(questions) == 0 {
		return results, nil
	}

	b := m.prepare(questions, index)

	if m.workers <= 1 || len(questions) == 1 {
		for i, q := range questions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = m.match(b, q)
		}
		return results, nil
	}

	// Each worker writes only its own slot, so the slice needs no lock.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i, q := range questions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = m.match(b, q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
