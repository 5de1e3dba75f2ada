package match

import (
	"context"
	"fmt"
)

// NewScorer selects the scoring strategy for the process lifetime.
//
// The probe runs once at startup: it tries to build the configured embedding
// backend (or, with no explicit provider, the first backend whose standard
// API key env var is set) and returns the semantic scorer on success. Any
// construction failure returns the lexical scorer along with the non-fatal
// cause, so callers can note the downgrade without aborting.
func NewScorer(ctx context.Context, cfg Config) (Scorer, error) {
	switch cfg.Provider {
	case "lexical":
		return Lexical{}, nil
	case "":
		if !cfg.discoverProvider() {
			return Lexical{}, nil
		}
	}

	var embedder Embedder
	var err error
	switch cfg.Provider {
	case "openai":
		embedder, err = NewOpenAIEmbedder(cfg.OpenAI)
	case "gemini":
		embedder, err = NewGeminiEmbedder(ctx, cfg.Gemini)
	default:
		err = &ErrBackendUnavailable{
			Provider: cfg.Provider,
			Err:      fmt.Errorf("unknown embeddings provider"),
		}
	}
	if err != nil {
		return Lexical{}, err
	}

	return NewEmbedding(embedder), nil
}
