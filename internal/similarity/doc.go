// Package similarity provides the tokenization and vector-space primitives
// behind file-name matching.
//
// File names are normalized (NFC), lowercased, and split on runs of
// non-alphanumeric characters. Tokens can optionally be combined into word
// n-gram shingles before vectorization. Vectors are sparse term-weight maps
// with a precomputed squared norm; three weighting schemes are supported:
//   - count: raw term frequency
//   - binary: term presence (set semantics)
//   - tfidf: term frequency reweighted by corpus inverse document frequency
//
// Cosine scores are symmetric, range over [0, 1], and degrade to 0 rather
// than erroring when a name produces no tokens.
package similarity
