package match

import (
	"context"
	"math"
	"strings"
)

// Verdict is the outcome of checking one answer against a question's golds.
type Verdict struct {
	// Correct is true when the best similarity met the threshold.
	Correct bool

	// Score is the best similarity found, 0 for empty input.
	Score float64

	// Gold is the gold answer achieving the best score, or "" when no
	// comparison happened (empty input or no golds).
	Gold string
}

// Checker decides answer correctness via best-match similarity against a
// threshold. It is built once per session and reused for every question;
// the underlying scorer may hold an expensive embedding backend.
type Checker struct {
	scorer    Scorer
	threshold float64
}

// NewChecker creates a Checker over the given scorer and threshold.
func NewChecker(scorer Scorer, threshold float64) *Checker {
	return &Checker{scorer: scorer, threshold: threshold}
}

// Scorer returns the active scoring strategy.
func (c *Checker) Scorer() Scorer { return c.scorer }

// Evaluate scores user against every gold in order and keeps the first
// maximum. Empty or whitespace-only input short-circuits to an incorrect
// verdict without any scoring. With no golds, the verdict is incorrect and
// the score stays at zero. Evaluate never fails: scoring errors are already
// absorbed inside the strategy.
func (c *Checker) Evaluate(ctx context.Context, user string, golds []string) Verdict {
	user = strings.TrimSpace(user)
	if user == "" || len(golds) == 0 {
		return Verdict{}
	}

	best := math.Inf(-1)
	bestGold := ""
	for _, g := range golds {
		if s := c.scorer.Score(ctx, user, g); s > best {
			best = s
			bestGold = g
		}
	}

	return Verdict{
		Correct: best >= c.threshold,
		Score:   best,
		Gold:    bestGold,
	}
}
