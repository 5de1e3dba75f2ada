package match

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiEmbeddingModels maps friendly names to Gemini embedding model IDs.
var geminiEmbeddingModels = map[string]string{
	"gemini-embedding": "gemini-embedding-001",
	"text-embedding":   "text-embedding-004",
}

// GeminiEmbedder implements Embedder using the Google Gemini SDK.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

var _ Embedder = (*GeminiEmbedder)(nil)

// NewGeminiEmbedder creates a new Gemini embedder.
func NewGeminiEmbedder(ctx context.Context, cfg GeminiConfig) (*GeminiEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, &ErrBackendUnavailable{
			Provider: "gemini",
			Err:      fmt.Errorf("API key is required"),
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &ErrBackendUnavailable{
			Provider: "gemini",
			Err:      fmt.Errorf("create client: %w", err),
		}
	}

	model := "gemini-embedding-001"
	if m, ok := geminiEmbeddingModels[cfg.Model]; ok {
		model = m
	} else if cfg.Model != "" {
		model = cfg.Model
	}

	return &GeminiEmbedder{
		client: client,
		model:  model,
	}, nil
}

func (e *GeminiEmbedder) Provider() string { return "gemini" }

func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = &genai.Content{
			Parts: []*genai.Part{{Text: t}},
		}
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, &ErrEncodeFailed{Provider: "gemini", Err: err}
	}
	if len(result.Embeddings) != len(texts) {
		return nil, &ErrEncodeFailed{
			Provider: "gemini",
			Err:      fmt.Errorf("expected %d embeddings, got %d", len(texts), len(result.Embeddings)),
		}
	}

	vecs := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		if emb == nil {
			return nil, &ErrEncodeFailed{
				Provider: "gemini",
				Err:      fmt.Errorf("missing embedding at index %d", i),
			}
		}
		vecs[i] = emb.Values
	}
	return vecs, nil
}
