package mock

import (
	"context"
	"fmt"
)

// MockAnswerGenerator is a test double for ai.AnswerGenerator.
type MockAnswerGenerator struct {
	// GenerateAnswerFunc is called by GenerateAnswer if set.
	// If nil, a canned answer naming the context size is returned.
	GenerateAnswerFunc func(ctx context.Context, question string, contextDocs []string) (string, error)

	callCount int
}

// NewMockAnswerGenerator creates a mock generator with a canned default.
func NewMockAnswerGenerator() *MockAnswerGenerator {
	return &MockAnswerGenerator{}
}

// GenerateAnswer returns an injected or canned answer.
func (m *MockAnswerGenerator) GenerateAnswer(ctx context.Context, question string, contextDocs []string) (string, error) {
	m.callCount++

	if m.GenerateAnswerFunc != nil {
		return m.GenerateAnswerFunc(ctx, question, contextDocs)
	}
	return fmt.Sprintf("mock answer (%d context docs)", len(contextDocs)), nil
}

// CallCount returns the number of times GenerateAnswer was called.
func (m *MockAnswerGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockAnswerGenerator) Reset() {
	m.callCount = 0
	m.GenerateAnswerFunc = nil
}
