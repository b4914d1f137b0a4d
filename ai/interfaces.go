package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates embeddings for multiple texts in a batch.
	// The returned slice matches the input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// AnswerGenerator produces a natural-language answer to a question given
// retrieved catalog context. Implementations must be safe for concurrent use.
type AnswerGenerator interface {
	// GenerateAnswer answers the question using the provided context
	// documents. The context is pre-selected by the caller; the generator
	// must not invent facts beyond it.
	GenerateAnswer(ctx context.Context, question string, contextDocs []string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// AnswerGenerator returns the answer generation service.
	AnswerGenerator() AnswerGenerator

	// Close releases resources held by the provider and its services.
	Close() error
}
