package similarity

import "math"

// Vector is a sparse term-weighted vector over a Corpus vocabulary. Entries
// are kept sorted by dimension so dot products accumulate in a fixed order
// and scoring stays byte-identical across runs.
type Vector struct {
	dims    []int
	weights []float64
}

// IsZero reports whether the vector has no recognized terms
func (v Vector) IsZero() bool {
	return len(v.dims) == 0
}

// Len returns the number of non-zero dimensions
func (v Vector) Len() int {
	return len(v.dims)
}

// Equal reports whether two vectors are identical dimension for dimension
func (v Vector) Equal(o Vector) bool {
	if len(v.dims) != len(o.dims) {
		return false
	}
	for i := range v.dims {
		if v.dims[i] != o.dims[i] || v.weights[i] != o.weights[i] {
			return false
		}
	}
	return true
}

// Cosine returns the cosine of the angle between two L2-normalized vectors,
// clamped to [0,1]. A zero vector on either side scores 0.0, never NaN.
// Identical vectors score exactly 1.0.
func Cosine(a, b Vector) float64 {
	if a.IsZero() || b.IsZero() {
		return 0.0
	}

	// Exact self-similarity must not be eroded by rounding
	if a.Equal(b) {
		return 1.0
	}

	// Merge-join over sorted dimensions
	dot := 0.0
	i, j := 0, 0
	for i < len(a.dims) && j < len(b.dims) {
		switch {
		case a.dims[i] == b.dims[j]:
			dot += a.weights[i] * b.weights[j]
			i++
			j++
		case a.dims[i] < b.dims[j]:
			i++
		default:
			j++
		}
	}

	// Inputs are unit length, so the dot product is already the cosine;
	// clamp against accumulated rounding
	return math.Min(math.Max(dot, 0.0), 1.0)
}
