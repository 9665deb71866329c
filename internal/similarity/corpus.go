package similarity

import (
	"math"
	"sort"
)

// Options configures corpus construction
type Options struct {
	// OCRCorrection maps question terms that appear in no syllabus segment
	// to the nearest segment-side vocabulary term, tolerating OCR noise.
	// Off by default: it changes scores, so the baseline stays exact.
	OCRCorrection bool
	OCRThreshold  float64
}

// Corpus is the term-weighted vector space for one batch run. It is built
// over the question batch and all segment texts combined - term weights are
// corpus-relative, so a corpus must never be reused across unrelated runs.
// Once built it is read-only; vectorization does not mutate it.
type Corpus struct {
	terms       []string
	index       map[string]int
	df          []int
	docs        int
	segmentTerm []bool // term appears in at least one segment document
	opts        Options
	corrector   *TermCorrector
	segTerms    []string // sorted segment-side terms, correction candidates
}

// BuildCorpus builds the vector space from tokenized segment documents and
// tokenized question documents. Document frequencies count both sides; the
// vocabulary is sorted so dimension order is deterministic.
func BuildCorpus(segmentDocs, questionDocs [][]string, opts Options) *Corpus {
	vocab := make(map[string]bool)
	for _, doc := range segmentDocs {
		for _, tok := range doc {
			vocab[tok] = true
		}
	}
	for _, doc := range questionDocs {
		for _, tok := range doc {
			vocab[tok] = true
		}
	}

	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	c := &Corpus{
		terms:       terms,
		index:       make(map[string]int, len(terms)),
		df:          make([]int, len(terms)),
		docs:        len(segmentDocs) + len(questionDocs),
		segmentTerm: make([]bool, len(terms)),
		opts:        opts,
	}
	for i, term := range terms {
		c.index[term] = i
	}

	countDoc := func(doc []string, segment bool) {
		seen := make(map[int]bool, len(doc))
		for _, tok := range doc {
			dim := c.index[tok]
			if !seen[dim] {
				seen[dim] = true
				c.df[dim]++
			}
			if segment {
				c.segmentTerm[dim] = true
			}
		}
	}
	for _, doc := range segmentDocs {
		countDoc(doc, true)
	}
	for _, doc := range questionDocs {
		countDoc(doc, false)
	}

	if opts.OCRCorrection {
		c.corrector = NewTermCorrector(opts.OCRThreshold)
		for dim, isSeg := range c.segmentTerm {
			if isSeg {
				c.segTerms = append(c.segTerms, c.terms[dim])
			}
		}
	}

	return c
}

// VocabularySize returns the number of distinct terms in the corpus
func (c *Corpus) VocabularySize() int {
	return len(c.terms)
}

// DocumentCount returns the number of documents the corpus was built over
func (c *Corpus) DocumentCount() int {
	return c.docs
}

// idf returns the smoothed inverse document frequency for a dimension.
// The +1 smoothing keeps terms present in every document at a non-zero
// weight so exact duplicates still score 1.0.
func (c *Corpus) idf(dim int) float64 {
	return math.Log(float64(c.docs+1)/float64(c.df[dim]+1)) + 1.0
}

// Vectorize builds the L2-normalized tf-idf vector for a token stream.
// Tokens outside the vocabulary are dropped; with OCR correction enabled,
// tokens absent from every segment are first mapped to the nearest
// segment-side term. A token stream with no recognized terms yields the
// zero vector.
func (c *Corpus) Vectorize(tokens []string) Vector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if c.corrector != nil {
			if dim, ok := c.index[tok]; !ok || !c.segmentTerm[dim] {
				if corrected, ok := c.corrector.Correct(tok, c.segTerms); ok {
					tok = corrected
				}
			}
		}

		dim, ok := c.index[tok]
		if !ok {
			continue
		}
		counts[dim]++
	}

	if len(counts) == 0 {
		return Vector{}
	}

	dims := make([]int, 0, len(counts))
	for dim := range counts {
		dims = append(dims, dim)
	}
	sort.Ints(dims)

	weights := make([]float64, len(dims))
	sumSquares := 0.0
	for i, dim := range dims {
		w := float64(counts[dim]) * c.idf(dim)
		weights[i] = w
		sumSquares += w * w
	}

	norm := math.Sqrt(sumSquares)
	for i := range weights {
		weights[i] /= norm
	}

	return Vector{dims: dims, weights: weights}
}
