package similarity

import (
	"fmt"
	"strings"
)

// Weighting selects how term weights are assigned during vectorization.
type Weighting string

const (
	// WeightingCount uses raw term frequency.
	WeightingCount Weighting = "count"
	// WeightingBinary uses term presence, giving set-intersection cosine.
	WeightingBinary Weighting = "binary"
	// WeightingTFIDF uses term frequency scaled by corpus IDF.
	WeightingTFIDF Weighting = "tfidf"
)

// ParseWeighting validates a user-supplied weighting name.
func ParseWeighting(value string) (Weighting, error) {
	switch Weighting(strings.ToLower(strings.TrimSpace(value))) {
	case WeightingCount, "":
		return WeightingCount, nil
	case WeightingBinary:
		return WeightingBinary, nil
	case WeightingTFIDF:
		return WeightingTFIDF, nil
	default:
		return "", fmt.Errorf("unknown weighting %q (expected count, binary, or tfidf)", value)
	}
}

// Vector is a sparse term-weight map with a precomputed squared norm.
// Keeping the square, not the root, lets Cosine divide by
// sqrt(norm2A*norm2B), which is exact for integer count vectors and makes
// identical names score exactly 1.0.
type Vector struct {
	terms map[string]float64
	norm2 float64
}

// NewVector builds a vector from terms using the given weighting.
// Returns nil when no terms are provided; nil vectors score 0 everywhere.
// TFIDF weights are applied separately via WithIDF once the corpus is known.
func NewVector(terms []string, weighting Weighting) *Vector {
	if len(terms) == 0 {
		return nil
	}
	weights := make(map[string]float64, len(terms))
	for _, term := range terms {
		if weighting == WeightingBinary {
			weights[term] = 1
		} else {
			weights[term]++
		}
	}
	var norm2 float64
	for _, w := range weights {
		norm2 += w * w
	}
	return &Vector{
		terms: weights,
		norm2: norm2,
	}
}

// TermCount returns the number of unique terms in the vector.
func (v *Vector) TermCount() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// WithIDF returns a new Vector with each term weight multiplied by its IDF
// value. Terms absent from the IDF map keep their original weight; terms
// whose weight collapses to zero are dropped. The norm is recomputed.
func (v *Vector) WithIDF(idf map[string]float64) *Vector {
	if v == nil || len(idf) == 0 {
		return v
	}
	weighted := make(map[string]float64, len(v.terms))
	var norm2 float64
	for term, weight := range v.terms {
		w := weight
		if idfVal, ok := idf[term]; ok {
			w *= idfVal
		}
		if w == 0 {
			continue
		}
		weighted[term] = w
		norm2 += w * w
	}
	if len(weighted) == 0 {
		return nil
	}
	return &Vector{
		terms: weighted,
		norm2: norm2,
	}
}
