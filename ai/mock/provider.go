package mock

import "github.com/vietphone/phonerec/ai"

// MockProvider is a test double for ai.Provider bundling the mock services.
type MockProvider struct {
	MockEmbedder  *MockEmbedder
	MockGenerator *MockAnswerGenerator

	// CloseFunc is called by Close if set.
	CloseFunc func() error

	closed bool
}

// NewMockProvider creates a provider with default mock services.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		MockEmbedder:  NewMockEmbedder(),
		MockGenerator: NewMockAnswerGenerator(),
	}
}

// Embedder returns the mock embedding service.
func (m *MockProvider) Embedder() ai.Embedder {
	return m.MockEmbedder
}

// AnswerGenerator returns the mock answer generation service.
func (m *MockProvider) AnswerGenerator() ai.AnswerGenerator {
	return m.MockGenerator
}

// Close marks the provider closed.
func (m *MockProvider) Close() error {
	m.closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Closed reports whether Close was called.
func (m *MockProvider) Closed() bool {
	return m.closed
}
