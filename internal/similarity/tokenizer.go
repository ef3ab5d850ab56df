package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxShingleSize bounds the word n-gram length accepted by Shingles.
const MaxShingleSize = 4

// Tokenize splits a file name into normalized tokens. The name is NFC
// normalized, lowercased, and split on runs of non-alphanumeric runes.
// Empty tokens are discarded; token order is preserved for shingling.
func Tokenize(name string) []string {
	lowered := strings.ToLower(norm.NFC.String(name))
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Shingles combines consecutive tokens into n-grams joined with ".".
// n=1 returns the tokens unchanged. Fewer than n tokens yields nil: a
// two-token name has no trigrams, and scores 0 against everything at n=3.
func Shingles(tokens []string, n int) []string {
	if n <= 1 {
		return tokens
	}
	if len(tokens) < n {
		return nil
	}
	out := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+n], "."))
	}
	return out
}
