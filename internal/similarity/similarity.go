package similarity

import "math"

// Cosine computes the cosine similarity between two vectors.
// Returns 0 if either vector is nil or has zero norm. The result is
// clamped to [0, 1] so rounding in the dot product never leaks out.
func Cosine(a, b *Vector) float64 {
	if a == nil || b == nil || a.norm2 == 0 || b.norm2 == 0 {
		return 0
	}
	var dot float64
	for term, weight := range a.terms {
		if other, ok := b.terms[term]; ok {
			dot += weight * other
		}
	}
	if dot == 0 {
		return 0
	}
	score := dot / math.Sqrt(a.norm2*b.norm2)
	if score > 1 {
		return 1
	}
	return score
}
