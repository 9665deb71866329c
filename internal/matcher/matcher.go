package matcher

import (
	"github.com/standardbeagle/qsi/internal/config"
	"github.com/standardbeagle/qsi/internal/debug"
	"github.com/standardbeagle/qsi/internal/similarity"
	"github.com/standardbeagle/qsi/internal/syllabus"
	"github.com/standardbeagle/qsi/internal/textnorm"
	"github.com/standardbeagle/qsi/internal/types"
)

// Matcher scores questions against a syllabus index and produces one result
// per question. Construction resolves all configuration up front; a Matcher
// is safe for concurrent use because matching never mutates it.
type Matcher struct {
	normalizer    *textnorm.Normalizer
	minConfidence float64
	workers       int
	simOpts       similarity.Options
}

// New builds a Matcher from configuration
func New(cfg *config.Config) (*Matcher, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	norm, err := textnorm.New(textnorm.Options{
		StopWordSet:   cfg.Normalizer.StopWordSet,
		StopWordsFile: cfg.Normalizer.StopWordsFile,
		Stemming:      cfg.Normalizer.Stemming,
		StemMinLength: cfg.Normalizer.StemMinLength,
	})
	if err != nil {
		return nil, err
	}

	return &Matcher{
		normalizer:    norm,
		minConfidence: cfg.Matcher.MinConfidence,
		workers:       cfg.MaxWorkers(),
		simOpts: similarity.Options{
			OCRCorrection: cfg.Similarity.OCRCorrection,
			OCRThreshold:  cfg.Similarity.OCRThreshold,
		},
	}, nil
}

// Normalizer exposes the text-cleaning pass so callers can inspect the
// active stop-word set
func (m *Matcher) Normalizer() *textnorm.Normalizer {
	return m.normalizer
}

// batch holds the per-run scoring state: the vector space built over this
// question batch plus the segment texts, and the precomputed segment
// vectors. A batch is read-only after prepare.
type batch struct {
	index   *syllabus.Index
	corpus  *similarity.Corpus
	segVecs []similarity.Vector
}

// prepare tokenizes both sides, builds the corpus, and vectorizes every
// segment once. Term weights are relative to this batch, so the returned
// state must not outlive the run.
func (m *Matcher) prepare(questions []types.Question, index *syllabus.Index) *batch {
	segmentDocs := make([][]string, len(index.Segments))
	for i, seg := range index.Segments {
		segmentDocs[i] = m.normalizer.Tokens(seg.LineText)
	}

	questionDocs := make([][]string, len(questions))
	for i, q := range questions {
		questionDocs[i] = m.normalizer.Tokens(q.Text)
	}

	corpus := similarity.BuildCorpus(segmentDocs, questionDocs, m.simOpts)

	segVecs := make([]similarity.Vector, len(segmentDocs))
	for i, doc := range segmentDocs {
		segVecs[i] = corpus.Vectorize(doc)
	}

	debug.LogIndex("batch corpus: %d terms over %d documents\n",
		corpus.VocabularySize(), corpus.DocumentCount())

	return &batch{index: index, corpus: corpus, segVecs: segVecs}
}

// match scores one question against every segment and returns the result
// for the best one. Ties keep the earliest segment, so ranking is stable
// for equal scores. A best score below the configured threshold marks the
// result low-confidence; it is still reported in full.
func (m *Matcher) match(b *batch, q types.Question) types.MatchResult {
	qv := b.corpus.Vectorize(m.normalizer.Tokens(q.Text))

	bestIdx := 0
	bestScore := 0.0
	for i, sv := range b.segVecs {
		score := similarity.Cosine(qv, sv)
		if score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	seg := b.index.Segments[bestIdx]
	debug.LogMatch("Q%d best=%d score=%.4f subject=%s\n", q.Index, bestIdx, bestScore, seg.SubjectCode)

	return types.MatchResult{
		QuestionIndex: q.Index,
		QuestionText:  q.Text,
		SubjectCode:   seg.SubjectCode,
		SubjectName:   seg.SubjectName,
		YearSemester:  seg.YearSemester,
		TopicLabel:    seg.TopicLabel,
		SyllabusLine:  seg.LineText,
		Confidence:    bestScore,
		LowConfidence: bestScore < m.minConfidence,
		QuestionType:  ClassifyQuestionType(q.Text),
	}
}
