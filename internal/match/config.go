package match

import (
	"os"
	"strconv"
)

// DefaultThreshold is the similarity score at or above which an answer is
// judged correct. It applies to both strategies by default; the scales differ
// (Jaccard is [0,1], cosine is [-1,1]), so each strategy's threshold can be
// tuned independently via config.
const DefaultThreshold = 0.62

// Config holds scoring configuration.
type Config struct {
	// Provider selects which embedding backend to use for the semantic
	// strategy. Values: "openai", "gemini", "lexical" (skip embeddings),
	// "" (auto-discover from standard API key env vars).
	Provider string

	OpenAI OpenAIConfig
	Gemini GeminiConfig

	// SemanticThreshold is the correctness cutoff when the semantic
	// strategy is active.
	SemanticThreshold float64

	// LexicalThreshold is the correctness cutoff when the lexical
	// strategy is active.
	LexicalThreshold float64
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Friendly name or model ID. Default: "small" (text-embedding-3-small)
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Friendly name or model ID. Default: "gemini-embedding" (gemini-embedding-001)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OpenAI: OpenAIConfig{
			Model: "small",
		},
		Gemini: GeminiConfig{
			Model: "gemini-embedding",
		},
		SemanticThreshold: DefaultThreshold,
		LexicalThreshold:  DefaultThreshold,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("QUIZCHAT_EMBEDDINGS_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("QUIZCHAT_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("QUIZCHAT_OPENAI_EMBEDDING_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("QUIZCHAT_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("QUIZCHAT_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("QUIZCHAT_GEMINI_EMBEDDING_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if v := os.Getenv("QUIZCHAT_SEMANTIC_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SemanticThreshold = f
		}
	}
	if v := os.Getenv("QUIZCHAT_LEXICAL_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LexicalThreshold = f
		}
	}

	return cfg
}

// discoverProvider probes standard API key env vars in priority order
// (Gemini → OpenAI) and fills in the first provider whose key is found.
// Returns false if none is found.
func (c *Config) discoverProvider() bool {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		c.Provider = "gemini"
		c.Gemini.APIKey = k
		return true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		c.Provider = "openai"
		c.OpenAI.APIKey = k
		return true
	}
	return false
}

// ThresholdFor returns the correctness threshold matching the scorer's
// strategy.
func (c Config) ThresholdFor(s Scorer) float64 {
	if _, ok := s.(*Embedding); ok {
		return c.SemanticThreshold
	}
	return c.LexicalThreshold
}
