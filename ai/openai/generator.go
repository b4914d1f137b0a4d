package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/vietphone/phonerec/ai"
)

const answerPromptTemplate = `Bạn là trợ lý tư vấn điện thoại của một cửa hàng Việt Nam.
Chỉ sử dụng thông tin trong phần DỮ LIỆU dưới đây để trả lời. Nếu dữ liệu
không đủ, hãy nói rằng bạn chưa có thông tin, đừng bịa ra thông số.
Trả lời ngắn gọn bằng tiếng Việt.

DỮ LIỆU:
%DATA%

CÂU HỎI: %QUESTION%`

// AnswerGenerator implements ai.AnswerGenerator using an OpenAI-compatible
// chat completion API.
type AnswerGenerator struct {
	llm    llms.Model
	logger *slog.Logger
}

func newAnswerGenerator(config *ai.Config) (*AnswerGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &AnswerGenerator{
		llm:    client,
		logger: slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewAnswerGenerator creates a generator for the configured API.
func NewAnswerGenerator(config *ai.Config) (ai.AnswerGenerator, error) {
	return newAnswerGenerator(config)
}

// GenerateAnswer answers the question grounded on the given context
// documents, joined into a single prompt.
func (g *AnswerGenerator) GenerateAnswer(ctx context.Context, question string, contextDocs []string) (string, error) {
	g.logger.Debug("generating answer", "question_length", len(question), "context_docs", len(contextDocs))

	prompt := strings.NewReplacer(
		"%DATA%", strings.Join(contextDocs, "\n---\n"),
		"%QUESTION%", question,
	).Replace(answerPromptTemplate)

	completion, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(0.2),
	)
	if err != nil {
		g.logger.Error("answer generation failed", "err", err)
		return "", err
	}

	return strings.TrimSpace(completion), nil
}
