package match

import (
	"context"
	"fmt"
	"sync"
)

// MockEmbedder is a deterministic Embedder for testing.
// Vectors come from a fixed table keyed by text; unknown texts produce an
// error, which exercises the per-call lexical fallback. FailAll forces every
// call to fail regardless of the table.
type MockEmbedder struct {
	mu      sync.Mutex
	Vectors map[string][]float32
	FailAll bool
	Calls   [][]string
}

var _ Embedder = (*MockEmbedder)(nil)

// NewMockEmbedder creates a MockEmbedder with the given vector table.
func NewMockEmbedder(vectors map[string][]float32) *MockEmbedder {
	return &MockEmbedder{Vectors: vectors}
}

func (m *MockEmbedder) Provider() string { return "mock" }

func (m *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, texts)

	if m.FailAll {
		return nil, &ErrEncodeFailed{Provider: "mock", Err: fmt.Errorf("forced failure")}
	}

	vecs := make([][]float32, len(texts))
	for i, t := range texts {
		v, ok := m.Vectors[t]
		if !ok {
			return nil, &ErrEncodeFailed{Provider: "mock", Err: fmt.Errorf("no vector for %q", t)}
		}
		vecs[i] = v
	}
	return vecs, nil
}

// CallCount returns the number of Embed calls made.
func (m *MockEmbedder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
