// Package ranker scores every unordered pair of scanned entries by the
// cosine similarity of their file-name vectors and returns the pairs above
// a threshold, ranked for deterministic output.
//
// The comparison is all-pairs, O(n²) in the number of entries. Scoring is
// side-effect-free, so it can optionally fan out across a bounded worker
// pool; worker count never changes the result, only the wall time.
package ranker
