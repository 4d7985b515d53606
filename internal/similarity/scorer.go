// Package similarity scores a spoken answer against its target sentence.
//
// The metric is a normalized Levenshtein distance over Unicode code points:
// 1 means the strings are identical after case folding and trimming, 0 means
// every character had to change.
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// Score returns the similarity of actual to expected in [0, 1].
// Both inputs are case-folded and trimmed first, so "Hello world" and
// "  hello WORLD " score 1.
func Score(expected, actual string) float64 {
	e := normalize(expected)
	a := normalize(actual)

	longest := max(utf8.RuneCountInString(e), utf8.RuneCountInString(a))
	if longest == 0 {
		return 1
	}

	d := matchr.Levenshtein(e, a)
	return 1 - float64(d)/float64(longest)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
