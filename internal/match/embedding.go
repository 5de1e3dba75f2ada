package match

import (
	"context"
	"fmt"
	"math"
)

// Embedder encodes texts into fixed-size numeric vectors.
// Implementations wrap a remote embedding API; construction may fail
// (missing key, unreachable service) and individual calls may fail
// transiently. Both cases are handled by the caller, never surfaced
// to the player.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Provider returns the backend name, e.g. "openai" or "gemini".
	Provider() string
}

// Embedding is the semantic strategy: both texts are encoded, L2-normalized,
// and scored by dot product (cosine similarity). Any embedding failure for a
// comparison silently downgrades that single call to lexical scoring.
type Embedding struct {
	embedder Embedder
	fallback Lexical
}

var _ Scorer = (*Embedding)(nil)

// NewEmbedding creates the semantic scorer over the given embedder.
func NewEmbedding(embedder Embedder) *Embedding {
	return &Embedding{embedder: embedder}
}

func (e *Embedding) Name() string {
	return fmt.Sprintf("embedding/%s", e.embedder.Provider())
}

func (e *Embedding) Score(ctx context.Context, a, b string) float64 {
	vecs, err := e.embedder.Embed(ctx, []string{a, b})
	if err != nil || len(vecs) < 2 {
		return e.fallback.Score(ctx, a, b)
	}
	return cosine(vecs[0], vecs[1])
}

// cosine returns the cosine similarity of two vectors, 0 when either has
// zero magnitude or the dimensions disagree.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		fa := float64(a[i])
		fb := float64(b[i])
		dot += fa * fb
		normA += fa * fa
		normB += fb * fb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
