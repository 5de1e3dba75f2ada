// Package match scores free-text answers against gold answers.
//
// Two scoring strategies implement the Scorer interface: a semantic strategy
// backed by a sentence-embedding provider, and a lexical token-overlap
// strategy that needs no external services. The strategy is selected once at
// startup (see NewScorer) and fixed for the process lifetime; the semantic
// strategy additionally degrades to lexical scoring for any single comparison
// whose embedding call fails.
package match

import (
	"context"
	"strings"
)

// Scorer computes a similarity score between two texts. Higher means more
// similar. The lexical strategy yields scores in [0, 1]; the semantic
// strategy yields cosine similarity in [-1, 1], typically [0, 1] for related
// natural-language text. Score never fails: strategy-internal errors are
// absorbed by falling back to lexical scoring.
type Scorer interface {
	Score(ctx context.Context, a, b string) float64

	// Name identifies the active strategy, e.g. "lexical" or "embedding/openai".
	Name() string
}

// Lexical scores by Jaccard overlap of lowercased whitespace tokens.
// It is the always-available fallback strategy.
type Lexical struct{}

var _ Scorer = Lexical{}

func (Lexical) Name() string { return "lexical" }

// Score returns |A∩B| / |A∪B| over the deduplicated token sets of a and b.
// If either token set is empty the score is 0.
func (Lexical) Score(_ context.Context, a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(strings.ToLower(s)) {
		tokens[t] = struct{}{}
	}
	return tokens
}
