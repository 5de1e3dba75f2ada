package match

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiEmbeddingModels maps friendly names to OpenAI embedding model IDs.
var openaiEmbeddingModels = map[string]openai.EmbeddingModel{
	"small": openai.SmallEmbedding3,
	"large": openai.LargeEmbedding3,
	"ada":   openai.AdaEmbeddingV2,
}

// OpenAIEmbedder implements Embedder using the OpenAI embeddings API.
// It also supports OpenAI-compatible APIs via BaseURL.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

var _ Embedder = (*OpenAIEmbedder)(nil)

// NewOpenAIEmbedder creates a new OpenAI embedder.
func NewOpenAIEmbedder(cfg OpenAIConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, &ErrBackendUnavailable{
			Provider: "openai",
			Err:      fmt.Errorf("API key is required"),
		}
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := openai.SmallEmbedding3
	if m, ok := openaiEmbeddingModels[cfg.Model]; ok {
		model = m
	} else if cfg.Model != "" {
		model = openai.EmbeddingModel(cfg.Model)
	}

	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (e *OpenAIEmbedder) Provider() string { return "openai" }

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, &ErrEncodeFailed{Provider: "openai", Err: err}
	}
	if len(resp.Data) != len(texts) {
		return nil, &ErrEncodeFailed{
			Provider: "openai",
			Err:      fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data)),
		}
	}

	vecs := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vecs[i] = d.Embedding
	}
	return vecs, nil
}
