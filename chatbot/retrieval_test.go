package chatbot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietphone/phonerec/ai/mock"
	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/storage"
)

// fakeRepo is an in-memory storage.PhoneRepository serving a fixed list.
type fakeRepo struct {
	phones []*catalog.Phone
	err    error
}

func (f *fakeRepo) GetAllPhones(context.Context) ([]*catalog.Phone, error) {
	return f.phones, f.err
}
func (f *fakeRepo) FindByLink(_ context.Context, link string) (*catalog.Phone, error) {
	for _, p := range f.phones {
		if p.Link == link {
			return p, nil
		}
	}
	return nil, storage.ErrNotFound
}
func (f *fakeRepo) FindByName(context.Context, string) (*catalog.Phone, error) {
	return nil, storage.ErrNotFound
}
func (f *fakeRepo) SearchPhones(context.Context, string) ([]*catalog.Phone, error) {
	return f.phones, nil
}
func (f *fakeRepo) SavePhone(context.Context, *catalog.Phone) error    { return nil }
func (f *fakeRepo) SavePhones(context.Context, []*catalog.Phone) error { return nil }
func (f *fakeRepo) DeletePhone(context.Context, string) error          { return nil }
func (f *fakeRepo) UpdateViewCount(context.Context, string) (int, error) {
	return 0, storage.ErrNotFound
}
func (f *fakeRepo) Close() error { return nil }

func galaxyPhone() *catalog.Phone {
	return catalog.NewPhone("Samsung Galaxy S24 Ultra", "link-s24u", 29_000_000,
		catalog.DescriptionFromMap(map[string]string{
			catalog.AttrBattery:    "5000 mAh",
			catalog.AttrRAM:        "12 GB",
			catalog.AttrChipset:    "Snapdragon 8 Gen 3",
			catalog.AttrRearCamera: "200MP + 50MP",
		}))
}

func iphonePhone() *catalog.Phone {
	return catalog.NewPhone("iPhone 15 Pro", "link-ip15p", 28_000_000,
		catalog.DescriptionFromMap(map[string]string{
			catalog.AttrBattery:    "3274 mAh",
			catalog.AttrRAM:        "8 GB",
			catalog.AttrChipset:    "Apple A17 Pro",
			catalog.AttrRearCamera: "48MP + 12MP",
		}))
}

// routingEmbedder maps texts onto fixed axes so retrieval is controllable:
// any text mentioning Samsung lands on one axis, iPhone on another, and
// everything else on a configurable query vector.
func routingEmbedder(queryVector []float32) *mock.MockEmbedder {
	m := mock.NewMockEmbedder()
	m.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		switch {
		case strings.Contains(text, "Samsung"):
			return []float32{1, 0, 0}, nil
		case strings.Contains(text, "iPhone"):
			return []float32{0, 1, 0}, nil
		default:
			return queryVector, nil
		}
	}
	return m
}

func TestRetrievalEngineNotReady(t *testing.T) {
	engine := NewRetrievalEngine(&fakeRepo{}, mock.NewMockEmbedder())

	assert.False(t, engine.Ready())
	assert.Equal(t, notReadyMessage, engine.ProcessQuestion(context.Background(), "pin trâu?"))
}

func TestRetrievalEngineInitialize(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{galaxyPhone(), iphonePhone()}}
	engine := NewRetrievalEngine(repo, mock.NewMockEmbedder(), WithPoolSize(2))

	require.NoError(t, engine.Initialize(context.Background()))
	assert.True(t, engine.Ready())
}

func TestRetrievalEngineEmptyQuestion(t *testing.T) {
	engine := NewRetrievalEngine(&fakeRepo{phones: []*catalog.Phone{galaxyPhone()}}, mock.NewMockEmbedder())
	require.NoError(t, engine.Initialize(context.Background()))

	assert.Equal(t, emptyQuestionMessage, engine.ProcessQuestion(context.Background(), "   "))
}

func TestRetrievalEngineNoMatchApologizes(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{galaxyPhone(), iphonePhone()}}
	// Query vector orthogonal to every document: nothing clears the floor.
	engine := NewRetrievalEngine(repo, routingEmbedder([]float32{0, 0, 1}))
	require.NoError(t, engine.Initialize(context.Background()))

	answer := engine.ProcessQuestion(context.Background(), "câu hỏi không liên quan")
	assert.Equal(t, noMatchMessage, answer)
}

func TestRetrievalEngineBatteryAnswerSortsByCapacity(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{iphonePhone(), galaxyPhone()}}
	// Both documents match the query, the iPhone slightly closer.
	engine := NewRetrievalEngine(repo, routingEmbedder([]float32{0.6, 0.8, 0}))
	require.NoError(t, engine.Initialize(context.Background()))

	answer := engine.ProcessQuestion(context.Background(), "điện thoại nào pin trâu nhất?")

	require.Contains(t, answer, "pin trâu nhất")
	galaxyPos := strings.Index(answer, "Samsung Galaxy S24 Ultra")
	iphonePos := strings.Index(answer, "iPhone 15 Pro")
	require.GreaterOrEqual(t, galaxyPos, 0)
	require.GreaterOrEqual(t, iphonePos, 0)
	assert.Less(t, galaxyPos, iphonePos, "5000 mAh must rank above 3274 mAh regardless of similarity order")
}

func TestRetrievalEngineComparisonAnswer(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{galaxyPhone(), iphonePhone()}}
	engine := NewRetrievalEngine(repo, routingEmbedder([]float32{0.8, 0.6, 0}))
	require.NoError(t, engine.Initialize(context.Background()))

	answer := engine.ProcessQuestion(context.Background(), "so sánh hai máy này")
	assert.Contains(t, answer, "So sánh giữa")
	assert.Contains(t, answer, "1. Giá bán:")
	assert.Contains(t, answer, "5. Pin và sạc:")
}

func TestRetrievalEngineUpdateDataSwapsSnapshot(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{galaxyPhone()}}
	engine := NewRetrievalEngine(repo, routingEmbedder([]float32{1, 0, 0}))
	require.NoError(t, engine.Initialize(context.Background()))

	answer := engine.ProcessQuestion(context.Background(), "điện thoại nào tốt?")
	assert.Contains(t, answer, "Samsung Galaxy S24 Ultra")

	// Catalog replaced; after UpdateData only the new phone is served.
	repo.phones = []*catalog.Phone{iphonePhone()}
	require.NoError(t, engine.UpdateData(context.Background()))

	answer = engine.ProcessQuestion(context.Background(), "điện thoại nào tốt?")
	assert.Equal(t, noMatchMessage, answer, "old snapshot must be gone and the query axis no longer matches")
}

func TestRetrievalEngineUpdateDataKeepsOldSnapshotOnError(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{galaxyPhone()}}
	engine := NewRetrievalEngine(repo, routingEmbedder([]float32{1, 0, 0}))
	require.NoError(t, engine.Initialize(context.Background()))

	repo.err = assert.AnError
	require.Error(t, engine.UpdateData(context.Background()))

	repo.err = nil
	answer := engine.ProcessQuestion(context.Background(), "điện thoại nào tốt?")
	assert.Contains(t, answer, "Samsung Galaxy S24 Ultra", "failed update must not clear served data")
}

func TestRetrievalEngineSuggestedQuestions(t *testing.T) {
	engine := NewRetrievalEngine(&fakeRepo{}, mock.NewMockEmbedder())
	questions := engine.SuggestedQuestions()
	require.NotEmpty(t, questions)
	assert.Contains(t, questions, "Điện thoại nào pin trâu nhất?")
}

func TestGenerativeEngineDelegatesToGenerator(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{galaxyPhone()}}

	provider := mock.NewMockProvider()
	provider.MockEmbedder.EmbedTextFunc = routingEmbedder([]float32{1, 0, 0}).EmbedTextFunc
	provider.MockGenerator.GenerateAnswerFunc = func(_ context.Context, _ string, docs []string) (string, error) {
		require.Len(t, docs, 1)
		assert.Contains(t, docs[0], "Samsung Galaxy S24 Ultra")
		return "generated answer", nil
	}

	engine := NewGenerativeEngine(repo, provider)
	require.NoError(t, engine.Initialize(context.Background()))

	assert.Equal(t, "generated answer", engine.ProcessQuestion(context.Background(), "máy nào tốt?"))
}

func TestGenerativeEngineFallsBackOnGeneratorError(t *testing.T) {
	repo := &fakeRepo{phones: []*catalog.Phone{galaxyPhone()}}

	provider := mock.NewMockProvider()
	provider.MockEmbedder.EmbedTextFunc = routingEmbedder([]float32{1, 0, 0}).EmbedTextFunc
	provider.MockGenerator.GenerateAnswerFunc = func(context.Context, string, []string) (string, error) {
		return "", assert.AnError
	}

	engine := NewGenerativeEngine(repo, provider)
	require.NoError(t, engine.Initialize(context.Background()))

	answer := engine.ProcessQuestion(context.Background(), "máy nào tốt?")
	assert.Contains(t, answer, "Samsung Galaxy S24 Ultra", "template fallback must still answer")
}
