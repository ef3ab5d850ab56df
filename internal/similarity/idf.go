package similarity

import "math"

// IDFWeights derives inverse document frequency weights across a batch of
// name vectors. The ranker sees every name before any pair is scored, so
// frequencies are counted in a single pass over the finished batch instead
// of through an incremental corpus. The smoothed form log((N+1)/(1+df))
// sends terms present in every name, extensions most often, to zero so
// WithIDF drops them entirely. Nil vectors are skipped; a batch with no
// usable vectors yields nil.
func IDFWeights(vectors []*Vector) map[string]float64 {
	docFreq := make(map[string]int)
	var docs int
	for _, v := range vectors {
		if v == nil {
			continue
		}
		docs++
		for term := range v.terms {
			docFreq[term]++
		}
	}
	if docs == 0 {
		return nil
	}
	idf := make(map[string]float64, len(docFreq))
	n := float64(docs)
	for term, df := range docFreq {
		idf[term] = math.Log((n + 1) / (1 + float64(df)))
	}
	return idf
}
