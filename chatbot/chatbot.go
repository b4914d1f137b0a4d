package chatbot

import "context"

// Chatbot answers free-form Vietnamese questions about the phone catalog.
// Implementations must be safe for concurrent use: ProcessQuestion may be
// called while UpdateData rebuilds the underlying data.
type Chatbot interface {
	// Initialize loads catalog data and prepares the engine. It must be
	// called before ProcessQuestion; until it succeeds Ready reports
	// false and ProcessQuestion returns a not-ready message.
	Initialize(ctx context.Context) error

	// ProcessQuestion answers a question. It never returns an error to
	// the caller: failures surface as an apology message, so a UI can
	// always display the result directly.
	ProcessQuestion(ctx context.Context, question string) string

	// UpdateData rebuilds the engine's data from the repository. Answers
	// served concurrently keep using the previous data until the rebuild
	// completes.
	UpdateData(ctx context.Context) error

	// Ready reports whether the engine has been initialized.
	Ready() bool

	// SuggestedQuestions returns example questions for the UI to offer.
	SuggestedQuestions() []string
}

// User-facing messages shared by the engines.
const (
	notReadyMessage = "Chatbot chưa được khởi tạo. Vui lòng thử lại sau."

	emptyQuestionMessage = "Vui lòng nhập câu hỏi của bạn."

	errorMessage = "Xin lỗi, đã xảy ra lỗi khi xử lý câu hỏi của bạn. Vui lòng thử lại."

	noMatchMessage = "Xin lỗi, tôi không tìm thấy thông tin phù hợp để trả lời câu hỏi của bạn. " +
		"Vui lòng thử lại với câu hỏi khác hoặc tìm kiếm trực tiếp trên danh sách sản phẩm."
)
