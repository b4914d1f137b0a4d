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

package filter

import (
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// SpecialFeature is a hardware or software capability matched against the
// combined feature text of a phone by keyword lists.
type SpecialFeature int

const (
	Support5G SpecialFeature = iota
	Fingerprint
	FaceRecognition
	WaterResistant
	DustResistant
	AIPhone
	WirelessCharging
	StylusPen
)

var specialFeatures = map[SpecialFeature]struct {
	description string
	keywords    []string
}{
	Support5G:        {"Hỗ trợ 5G", []string{"5g"}},
	Fingerprint:      {"Bảo mật vân tay", []string{"vân tay", "fingerprint", "van tay"}},
	FaceRecognition:  {"Nhận diện khuôn mặt", []string{"khuôn mặt", "face id", "face recognition", "khuon mat"}},
	WaterResistant:   {"Kháng nước", []string{"kháng nước", "ip67", "ip68", "chống nước"}},
	DustResistant:    {"Kháng bụi", []string{"kháng bụi", "chống bụi", "ip6"}},
	AIPhone:          {"Điện thoại AI", []string{"ai", "trí tuệ nhân tạo", "galaxy ai", "apple intelligence"}},
	WirelessCharging: {"Sạc không dây", []string{"sạc không dây", "wireless charging", "magsafe"}},
	StylusPen:        {"Bút cảm ứng", []string{"bút cảm ứng", "s pen", "stylus"}},
}

// FeatureDescription returns the Vietnamese display name of the feature.
func (f SpecialFeature) FeatureDescription() string {
	return specialFeatures[f].description
}

// Keywords returns the keyword variants that identify the feature.
func (f SpecialFeature) Keywords() []string {
	return specialFeatures[f].keywords
}

// NewSpecialFeatureFilter keeps phones whose feature text contains ALL of the
// given features. Matching is case-insensitive but diacritic-sensitive, since
// the catalog stores these attributes with full Vietnamese spelling.
func NewSpecialFeatureFilter(features ...SpecialFeature) Filter {
	return newPredicateFilter(
		"special_features",
		specialFeatureDescription(features),
		func(phone *catalog.Phone) bool {
			haystack := specialFeatureText(phone)
			for _, feature := range features {
				if !containsAnyKeyword(haystack, feature.Keywords()) {
					return false
				}
			}
			return true
		},
	)
}

func specialFeatureDescription(features []SpecialFeature) string {
	if len(features) == 0 {
		return "Lọc theo tính năng đặc biệt"
	}
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.FeatureDescription()
	}
	return "Tính năng đặc biệt: " + strings.Join(names, ", ")
}

// specialFeatureText gathers every attribute that may advertise a special
// capability, lower-cased for keyword matching.
func specialFeatureText(phone *catalog.Phone) string {
	var sb strings.Builder
	for _, field := range []string{
		phone.Description.SpecialFeatures(),
		phone.Description.TechUtilities(),
		phone.Description.Attribute(catalog.AttrOtherUtilities),
		phone.Description.Attribute(catalog.AttrWaterDustRating),
		phone.Description.Attribute(catalog.AttrChargingTech),
	} {
		if strings.TrimSpace(field) != "" {
			sb.WriteString(field)
			sb.WriteString(" ")
		}
	}
	return strings.ToLower(sb.String())
}

func containsAnyKeyword(lowerHaystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerHaystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
