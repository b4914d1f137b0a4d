package chatbot

import (
	"math"
	"strings"
)

// Intent classifies what a question is asking for. Detection is ordered:
// the first matching rule wins, so a question mentioning both a greeting
// and a battery need is treated as a greeting.
type Intent int

const (
	IntentGreeting Intent = iota
	IntentCompare
	IntentBattery
	IntentCamera
	IntentGaming
	IntentBudget
	IntentPremium
	IntentNetwork
	IntentRecommend
	IntentGeneral
)

// detectIntent classifies a lower-cased question by keyword rules.
func detectIntent(question string) Intent {
	has := func(kw string) bool { return strings.Contains(question, kw) }

	switch {
	case has("chào") || has("hello"):
		return IntentGreeting
	case has("so sánh") || has("khác nhau") || has("vs"):
		return IntentCompare
	case has("pin") && (has("trâu") || has("lâu") || has("khỏe")):
		return IntentBattery
	case has("camera") || has("chụp ảnh") || has("quay phim"):
		return IntentCamera
	case has("game") || has("gaming") || has("chơi game"):
		return IntentGaming
	case has("giá rẻ") || has("tiết kiệm") || has("rẻ"):
		return IntentBudget
	case has("cao cấp") || has("flagship") || has("đắt tiền"):
		return IntentPremium
	case has("5g") || has("mạng"):
		return IntentNetwork
	case has("tư vấn") || has("gợi ý") || has("nên mua"):
		return IntentRecommend
	default:
		return IntentGeneral
	}
}

// PriceRange is an inclusive VND budget extracted from a question.
type PriceRange struct {
	Min, Max float64
}

// extractPriceRange maps budget phrasing to fixed VND buckets. Amounts are
// spoken in "triệu" (millions), so bare numbers like "15" mean 15,000,000.
// Returns nil when the question names no budget.
func extractPriceRange(question string) *PriceRange {
	has := func(kw string) bool { return strings.Contains(question, kw) }

	switch {
	case has("dưới 5") || has("< 5"):
		return &PriceRange{0, 5_000_000}
	case has("5") && has("10"):
		return &PriceRange{5_000_000, 10_000_000}
	case has("10") && has("15"):
		return &PriceRange{10_000_000, 15_000_000}
	case has("15") && has("20"):
		return &PriceRange{15_000_000, 20_000_000}
	case has("trên 20") || has("> 20"):
		return &PriceRange{20_000_000, math.MaxFloat64}
	case has("dưới 10"):
		return &PriceRange{0, 10_000_000}
	case has("dưới 15"):
		return &PriceRange{0, 15_000_000}
	case has("dưới 20"):
		return &PriceRange{0, 20_000_000}
	}
	return nil
}

// extractBrands lists the brand names mentioned in a lower-cased question,
// in a fixed canonical order.
func extractBrands(question string) []string {
	has := func(kw string) bool { return strings.Contains(question, kw) }

	var brands []string
	if has("iphone") || has("apple") {
		brands = append(brands, "Apple")
	}
	if has("samsung") || has("galaxy") {
		brands = append(brands, "Samsung")
	}
	if has("xiaomi") || has("redmi") {
		brands = append(brands, "Xiaomi")
	}
	if has("oppo") {
		brands = append(brands, "Oppo")
	}
	if has("vivo") {
		brands = append(brands, "Vivo")
	}
	if has("huawei") {
		brands = append(brands, "Huawei")
	}
	if has("realme") {
		brands = append(brands, "Realme")
	}
	return brands
}

// extractFeatures lists feature tags mentioned in a lower-cased question.
func extractFeatures(question string) []string {
	has := func(kw string) bool { return strings.Contains(question, kw) }

	var features []string
	if has("sạc nhanh") {
		features = append(features, "fast_charging")
	}
	if has("kháng nước") {
		features = append(features, "waterproof")
	}
	if has("vân tay") {
		features = append(features, "fingerprint")
	}
	if has("face id") || has("nhận diện khuôn mặt") {
		features = append(features, "face_recognition")
	}
	if has("wireless") || has("không dây") {
		features = append(features, "wireless_charging")
	}
	return features
}
