// Copyright 2025 Vietphone Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chatbot

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/vietphone/phonerec/ai"
	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/storage"
)

const (
	// maxSearchResults caps the number of documents retrieved per question.
	maxSearchResults = 5

	// minSimilarity is the similarity floor; weaker matches are discarded
	// and an apology is returned if nothing clears it.
	minSimilarity = 0.2
)

// snapshot is an immutable document set. ProcessQuestion reads whichever
// snapshot is current; UpdateData builds a new one and swaps the pointer,
// so readers never observe a half-built set.
type snapshot struct {
	docs []*Document
}

// RetrievalEngine answers questions by embedding the catalog, retrieving
// the most similar documents and rendering an answer from them.
type RetrievalEngine struct {
	repository storage.PhoneRepository
	embedder   ai.Embedder
	poolSize   int
	logger     *slog.Logger

	current atomic.Pointer[snapshot]
}

var _ Chatbot = (*RetrievalEngine)(nil)

// RetrievalOption configures a RetrievalEngine.
type RetrievalOption func(*RetrievalEngine)

// WithPoolSize sets the number of workers used to embed the catalog during
// Initialize and UpdateData. Default is half the CPUs, minimum 1.
func WithPoolSize(size int) RetrievalOption {
	return func(e *RetrievalEngine) {
		if size > 0 {
			e.poolSize = size
		}
	}
}

// WithRetrievalLogger sets a custom logger. Default is slog.Default().
func WithRetrievalLogger(logger *slog.Logger) RetrievalOption {
	return func(e *RetrievalEngine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewRetrievalEngine creates a retrieval engine over the given repository
// and embedder. Initialize must be called before asking questions.
func NewRetrievalEngine(repository storage.PhoneRepository, embedder ai.Embedder, opts ...RetrievalOption) *RetrievalEngine {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	e := &RetrievalEngine{
		repository: repository,
		embedder:   embedder,
		poolSize:   poolSize,
		logger:     slog.Default().With("component", "retrieval-engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize embeds the whole catalog and installs the document snapshot.
func (e *RetrievalEngine) Initialize(ctx context.Context) error {
	snap, err := e.buildSnapshot(ctx)
	if err != nil {
		return err
	}
	e.current.Store(snap)
	e.logger.Info("retrieval engine initialized", "documents", len(snap.docs))
	return nil
}

// UpdateData re-embeds the catalog. The previous snapshot keeps serving
// questions until the new one is fully built; on error the old snapshot
// stays in place.
func (e *RetrievalEngine) UpdateData(ctx context.Context) error {
	snap, err := e.buildSnapshot(ctx)
	if err != nil {
		return err
	}
	e.current.Store(snap)
	e.logger.Info("retrieval engine data updated", "documents", len(snap.docs))
	return nil
}

// Ready reports whether a snapshot has been installed.
func (e *RetrievalEngine) Ready() bool {
	return e.current.Load() != nil
}

// SuggestedQuestions returns example questions the engine answers well.
func (e *RetrievalEngine) SuggestedQuestions() []string {
	return []string{
		"Điện thoại nào pin trâu nhất?",
		"Điện thoại nào phù hợp để chơi game?",
		"Điện thoại nào có camera tốt nhất?",
		"iPhone mới nhất có gì đặc biệt?",
		"Điện thoại nào hỗ trợ 5G với giá dưới 10 triệu?",
	}
}

// ProcessQuestion embeds the question, retrieves the closest documents and
// renders an answer. Failures come back as user-facing messages.
func (e *RetrievalEngine) ProcessQuestion(ctx context.Context, question string) string {
	snap := e.current.Load()
	if snap == nil {
		return notReadyMessage
	}
	if strings.TrimSpace(question) == "" {
		return emptyQuestionMessage
	}

	vector, err := e.embedder.EmbedText(ctx, question)
	if err != nil {
		e.logger.Error("failed to embed question", "err", err)
		return errorMessage
	}

	relevant := retrieveRelevant(snap.docs, vector)
	return e.generateAnswer(question, relevant)
}

// buildSnapshot loads the catalog and embeds every phone concurrently on a
// worker pool.
func (e *RetrievalEngine) buildSnapshot(ctx context.Context) (*snapshot, error) {
	phones, err := e.repository.GetAllPhones(ctx)
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(e.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	docs := make([]*Document, len(phones))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, phone := range phones {
		i, phone := i, phone
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			content := buildContent(phone)
			vector, err := e.embedder.EmbedText(ctx, content)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			docs[i] = &Document{
				Link:     phone.Link,
				Content:  content,
				Vector:   vector,
				Metadata: documentMetadata(phone),
				Phone:    phone,
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	// Drop slots for phones that failed validation upstream.
	compact := docs[:0]
	for _, doc := range docs {
		if doc != nil {
			compact = append(compact, doc)
		}
	}
	return &snapshot{docs: compact}, nil
}

// retrieveRelevant ranks documents by cosine similarity to the question
// vector, keeps the top matches and drops anything below the similarity
// floor.
func retrieveRelevant(docs []*Document, questionVector []float32) []*Document {
	type scored struct {
		doc   *Document
		score float64
	}

	ranked := make([]scored, 0, len(docs))
	for _, doc := range docs {
		ranked = append(ranked, scored{doc: doc, score: CosineSimilarity(questionVector, doc.Vector)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > maxSearchResults {
		ranked = ranked[:maxSearchResults]
	}

	result := make([]*Document, 0, len(ranked))
	for _, entry := range ranked {
		if entry.score >= minSimilarity {
			result = append(result, entry.doc)
		}
	}
	return result
}

// generateAnswer dispatches to a topic template based on question keywords.
func (e *RetrievalEngine) generateAnswer(question string, relevant []*Document) string {
	if len(relevant) == 0 {
		return noMatchMessage
	}

	q := strings.ToLower(question)
	phones := make([]*catalog.Phone, len(relevant))
	for i, doc := range relevant {
		phones[i] = doc.Phone
	}

	switch {
	case strings.Contains(q, "pin trâu") || strings.Contains(q, "pin khỏe") || strings.Contains(q, "pin lâu"):
		return batteryAnswer(phones)
	case strings.Contains(q, "chơi game") || strings.Contains(q, "gaming"):
		return gamingAnswer(phones)
	case strings.Contains(q, "camera") || strings.Contains(q, "chụp ảnh") || strings.Contains(q, "quay phim"):
		return cameraAnswer(phones)
	case strings.Contains(q, "giá") || strings.Contains(q, "rẻ") || strings.Contains(q, "mắc") || strings.Contains(q, "đắt"):
		return priceAnswer(q, phones)
	case strings.Contains(q, "so sánh"):
		return comparisonAnswer(phones)
	default:
		return genericAnswer(phones)
	}
}
