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
	"strings"
	"sync/atomic"

	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/storage"
)

// HeuristicEngine answers questions by rule-based intent detection over the
// loaded catalog. It needs no embeddings or external services, which makes
// it the fastest engine and the fallback when no AI backend is configured.
type HeuristicEngine struct {
	repository storage.PhoneRepository
	logger     *slog.Logger

	phones atomic.Pointer[[]*catalog.Phone]
}

var _ Chatbot = (*HeuristicEngine)(nil)

// NewHeuristicEngine creates a heuristic engine over the given repository.
func NewHeuristicEngine(repository storage.PhoneRepository) *HeuristicEngine {
	return &HeuristicEngine{
		repository: repository,
		logger:     slog.Default().With("component", "heuristic-engine"),
	}
}

// Initialize loads the catalog snapshot. An empty catalog is an error: the
// engine would have nothing to recommend.
func (e *HeuristicEngine) Initialize(ctx context.Context) error {
	phones, err := e.repository.GetAllPhones(ctx)
	if err != nil {
		return err
	}
	if len(phones) == 0 {
		return ErrNoData
	}

	e.phones.Store(&phones)
	e.logger.Info("heuristic engine initialized", "phones", len(phones))
	return nil
}

// UpdateData reloads the catalog snapshot. Concurrent questions keep using
// the previous snapshot until the reload succeeds.
func (e *HeuristicEngine) UpdateData(ctx context.Context) error {
	return e.Initialize(ctx)
}

// Ready reports whether the catalog has been loaded.
func (e *HeuristicEngine) Ready() bool {
	return e.phones.Load() != nil
}

// SuggestedQuestions returns example questions covering the main intents.
func (e *HeuristicEngine) SuggestedQuestions() []string {
	return []string{
		"Xin chào! Tôi cần tư vấn điện thoại",
		"Điện thoại nào pin trâu nhất dưới 15 triệu?",
		"Tư vấn điện thoại chụp ảnh đẹp khoảng 20 triệu",
		"So sánh iPhone và Samsung",
		"Điện thoại gaming tốt nhất trong tầm giá",
		"Điện thoại giá rẻ dưới 10 triệu",
	}
}

// ProcessQuestion classifies the question's intent, extracts budget, brand
// and feature slots and renders the matching response.
func (e *HeuristicEngine) ProcessQuestion(_ context.Context, question string) string {
	snapPtr := e.phones.Load()
	if snapPtr == nil {
		return notReadyMessage
	}
	if strings.TrimSpace(question) == "" {
		return emptyQuestionMessage
	}
	phones := *snapPtr

	q := strings.ToLower(strings.TrimSpace(question))
	intent := detectIntent(q)
	priceRange := extractPriceRange(q)
	brands := extractBrands(q)
	features := extractFeatures(q)

	e.logger.Debug("question classified",
		"intent", intent, "brands", brands, "features", features, "budget", priceRange != nil)

	switch intent {
	case IntentGreeting:
		return greetingResponse()
	case IntentCompare:
		return e.compareResponse(phones, brands, priceRange)
	case IntentBattery:
		return e.batteryResponse(phones, priceRange, brands)
	case IntentCamera:
		return e.cameraResponse(phones, priceRange, brands)
	case IntentGaming:
		return e.gamingResponse(phones, priceRange, brands)
	case IntentBudget:
		return e.budgetResponse(phones, priceRange)
	case IntentPremium:
		return e.premiumResponse(phones)
	case IntentNetwork:
		return e.networkResponse(phones, priceRange)
	case IntentRecommend:
		return e.recommendResponse(phones, priceRange, brands, features)
	default:
		return e.generalResponse(phones)
	}
}

// filterPhones narrows the snapshot by budget and brand slots. Feature
// slots are advisory only: the underlying data is too inconsistent to
// filter on them reliably, so they just inform the intent ranking.
func filterPhones(phones []*catalog.Phone, priceRange *PriceRange, brands []string) []*catalog.Phone {
	result := make([]*catalog.Phone, 0, len(phones))
	for _, phone := range phones {
		if priceRange != nil && (phone.Price < priceRange.Min || phone.Price > priceRange.Max) {
			continue
		}
		if len(brands) > 0 && !matchesAnyBrand(phone, brands) {
			continue
		}
		result = append(result, phone)
	}
	return result
}

func matchesAnyBrand(phone *catalog.Phone, brands []string) bool {
	name := strings.ToLower(phone.Name)
	for _, brand := range brands {
		if strings.Contains(name, strings.ToLower(brand)) {
			return true
		}
		// Brand labels don't always appear in listing names
		// ("iPhone 15" carries no "Apple").
		if brand == "Apple" && strings.Contains(name, "iphone") {
			return true
		}
		if brand == "Samsung" && strings.Contains(name, "galaxy") {
			return true
		}
		if brand == "Xiaomi" && (strings.Contains(name, "redmi") || strings.Contains(name, "poco")) {
			return true
		}
	}
	return false
}
