package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.6, 0.8}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	})

	t.Run("zero norm yields zero", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
		assert.Zero(t, CosineSimilarity([]float32{1, 1}, []float32{0, 0}))
	})

	t.Run("length mismatch yields zero", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity([]float32{1, 0, 0}, []float32{1, 0}))
	})
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{22_000_000, "22,000,000"},
		{5_490_000, "5,490,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.in), "formatPrice(%v)", tt.in)
	}
}

func TestDocumentMetadata(t *testing.T) {
	meta := documentMetadata(galaxyPhone())
	assert.Equal(t, "Samsung Galaxy S24 Ultra", meta["name"])
	assert.Equal(t, "29,000,000", meta["price"])
	assert.Equal(t, "Samsung", meta["brand"])
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"xin chào", IntentGreeting},
		{"so sánh iphone và samsung", IntentCompare},
		{"điện thoại nào pin trâu nhất?", IntentBattery},
		{"pin lâu dưới 10 triệu", IntentBattery},
		{"điện thoại chụp ảnh đẹp", IntentCamera},
		{"điện thoại gaming tốt nhất", IntentGaming},
		{"điện thoại giá rẻ", IntentBudget},
		{"flagship đáng mua", IntentPremium},
		{"điện thoại 5g", IntentNetwork},
		{"tư vấn điện thoại cho tôi", IntentRecommend},
		{"màn hình đẹp không", IntentGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectIntent(tt.question), "detectIntent(%q)", tt.question)
	}
}

func TestDetectIntentOrdering(t *testing.T) {
	// Greeting outranks every other intent, comparison outranks battery.
	assert.Equal(t, IntentGreeting, detectIntent("xin chào, pin trâu không?"))
	assert.Equal(t, IntentCompare, detectIntent("so sánh pin trâu của hai máy"))
}

func TestExtractPriceRange(t *testing.T) {
	tests := []struct {
		question string
		wantMin  float64
		wantMax  float64
	}{
		{"dưới 5 triệu", 0, 5_000_000},
		{"từ 5 đến 10 triệu", 5_000_000, 10_000_000},
		{"khoảng 10-15 triệu", 10_000_000, 15_000_000},
		{"15 đến 20 triệu", 15_000_000, 20_000_000},
		{"dưới 10 triệu", 0, 10_000_000},
		{"pin trâu dưới 15 triệu", 0, 15_000_000},
	}
	for _, tt := range tests {
		got := extractPriceRange(tt.question)
		if assert.NotNil(t, got, "extractPriceRange(%q)", tt.question) {
			assert.Equal(t, tt.wantMin, got.Min)
			assert.Equal(t, tt.wantMax, got.Max)
		}
	}

	assert.Nil(t, extractPriceRange("điện thoại nào tốt"), "no budget phrasing")

	unbounded := extractPriceRange("trên 20 triệu")
	if assert.NotNil(t, unbounded) {
		assert.Equal(t, 20_000_000.0, unbounded.Min)
	}
}

func TestExtractBrands(t *testing.T) {
	assert.Equal(t, []string{"Apple", "Samsung"}, extractBrands("so sánh iphone và samsung"))
	assert.Equal(t, []string{"Xiaomi"}, extractBrands("redmi note có tốt không"))
	assert.Empty(t, extractBrands("điện thoại pin trâu"))
}

func TestExtractFeatures(t *testing.T) {
	got := extractFeatures("có sạc nhanh và kháng nước không")
	assert.Equal(t, []string{"fast_charging", "waterproof"}, got)

	assert.Empty(t, extractFeatures("pin trâu"))
}
