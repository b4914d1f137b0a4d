package chatbot

import (
	"context"
	"log/slog"

	"github.com/vietphone/phonerec/ai"
	"github.com/vietphone/phonerec/storage"
)

// GenerativeEngine is a retrieval engine that delegates answer rendering to
// an AI text generator instead of the built-in templates. Retrieval still
// bounds what the model sees, so answers stay grounded in the catalog.
//
// On generation failure it falls back to the template answer rather than
// surfacing an error to the user.
type GenerativeEngine struct {
	*RetrievalEngine
	generator ai.AnswerGenerator
	logger    *slog.Logger
}

var _ Chatbot = (*GenerativeEngine)(nil)

// NewGenerativeEngine creates a generative engine from an AI provider's
// embedder and answer generator.
func NewGenerativeEngine(repository storage.PhoneRepository, provider ai.Provider, opts ...RetrievalOption) *GenerativeEngine {
	return &GenerativeEngine{
		RetrievalEngine: NewRetrievalEngine(repository, provider.Embedder(), opts...),
		generator:       provider.AnswerGenerator(),
		logger:          slog.Default().With("component", "generative-engine"),
	}
}

// ProcessQuestion retrieves the closest documents and asks the generator to
// answer from them.
func (e *GenerativeEngine) ProcessQuestion(ctx context.Context, question string) string {
	snap := e.current.Load()
	if snap == nil {
		return notReadyMessage
	}

	vector, err := e.embedder.EmbedText(ctx, question)
	if err != nil {
		e.logger.Error("failed to embed question", "err", err)
		return errorMessage
	}

	relevant := retrieveRelevant(snap.docs, vector)
	if len(relevant) == 0 {
		return noMatchMessage
	}

	contextDocs := make([]string, len(relevant))
	for i, doc := range relevant {
		contextDocs[i] = doc.Content
	}

	answer, err := e.generator.GenerateAnswer(ctx, question, contextDocs)
	if err != nil {
		e.logger.Warn("answer generation failed, using template fallback", "err", err)
		return e.generateAnswer(question, relevant)
	}
	return answer
}
