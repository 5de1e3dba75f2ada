package match

import (
	"context"
	"errors"
	"testing"
)

func TestNewScorer_ExplicitLexical(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "lexical"

	scorer, err := NewScorer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scorer.Name() != "lexical" {
		t.Errorf("Name = %q, want %q", scorer.Name(), "lexical")
	}
}

func TestNewScorer_NoCredentialsFallsBackSilently(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := DefaultConfig()
	scorer, err := NewScorer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := scorer.(Lexical); !ok {
		t.Errorf("scorer = %T, want Lexical", scorer)
	}
}

func TestNewScorer_DiscoversOpenAIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg := DefaultConfig()
	scorer, err := NewScorer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scorer.Name() != "embedding/openai" {
		t.Errorf("Name = %q, want %q", scorer.Name(), "embedding/openai")
	}
}

func TestNewScorer_MissingKeyDowngradesWithCause(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""

	scorer, err := NewScorer(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected a downgrade cause")
	}
	var unavail *ErrBackendUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want ErrBackendUnavailable", err)
	}
	if _, ok := scorer.(Lexical); !ok {
		t.Errorf("scorer = %T, want Lexical fallback", scorer)
	}
}

func TestNewScorer_UnknownProviderDowngrades(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "acme"

	scorer, err := NewScorer(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected a downgrade cause")
	}
	if _, ok := scorer.(Lexical); !ok {
		t.Errorf("scorer = %T, want Lexical fallback", scorer)
	}
}

func TestConfig_ThresholdFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SemanticThreshold = 0.75
	cfg.LexicalThreshold = 0.62

	if got := cfg.ThresholdFor(Lexical{}); got != 0.62 {
		t.Errorf("lexical threshold = %v, want 0.62", got)
	}
	if got := cfg.ThresholdFor(NewEmbedding(NewMockEmbedder(nil))); got != 0.75 {
		t.Errorf("semantic threshold = %v, want 0.75", got)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUIZCHAT_EMBEDDINGS_PROVIDER", "gemini")
	t.Setenv("QUIZCHAT_GEMINI_API_KEY", "k")
	t.Setenv("QUIZCHAT_GEMINI_EMBEDDING_MODEL", "text-embedding")
	t.Setenv("QUIZCHAT_SEMANTIC_THRESHOLD", "0.8")
	t.Setenv("QUIZCHAT_LEXICAL_THRESHOLD", "0.5")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "k" {
		t.Errorf("Gemini.APIKey = %q, want k", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "text-embedding" {
		t.Errorf("Gemini.Model = %q", cfg.Gemini.Model)
	}
	if cfg.SemanticThreshold != 0.8 {
		t.Errorf("SemanticThreshold = %v, want 0.8", cfg.SemanticThreshold)
	}
	if cfg.LexicalThreshold != 0.5 {
		t.Errorf("LexicalThreshold = %v, want 0.5", cfg.LexicalThreshold)
	}
}
