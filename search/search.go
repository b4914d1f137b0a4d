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

// Package search provides keyword and price-range search plus result
// ordering over phone lists. Searches never mutate their input and always
// preserve input order; ordering is applied separately via Sort.
package search

import (
	"strings"

	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/filter"
)

// Query bundles the search criteria applied by Search. Zero values mean
// "no constraint": a blank keyword matches everything, a negative price
// bound is unbounded.
type Query struct {
	Keyword  string
	MinPrice float64
	MaxPrice float64
	SortBy   Order
}

// ByKeyword keeps phones whose name or any attribute value contains the
// keyword, matched case-insensitively with Vietnamese diacritics folded.
// A blank or whitespace-only keyword returns the input unchanged.
func ByKeyword(phones []*catalog.Phone, keyword string) []*catalog.Phone {
	needle := filter.Normalize(keyword)
	if needle == "" {
		return phones
	}
	result := make([]*catalog.Phone, 0, len(phones))
	for _, phone := range phones {
		if matchesKeyword(phone, needle) {
			result = append(result, phone)
		}
	}
	return result
}

func matchesKeyword(phone *catalog.Phone, needle string) bool {
	if strings.Contains(filter.Normalize(phone.Name), needle) {
		return true
	}
	for _, value := range phone.Description.Attributes() {
		if strings.Contains(filter.Normalize(value), needle) {
			return true
		}
	}
	return false
}

// ByPriceRange keeps phones with minPrice <= Price <= maxPrice, bounds
// inclusive. A negative bound means unbounded on that side.
func ByPriceRange(phones []*catalog.Phone, minPrice, maxPrice float64) []*catalog.Phone {
	result := make([]*catalog.Phone, 0, len(phones))
	for _, phone := range phones {
		if minPrice >= 0 && phone.Price < minPrice {
			continue
		}
		if maxPrice >= 0 && phone.Price > maxPrice {
			continue
		}
		result = append(result, phone)
	}
	return result
}

// Search applies the query's keyword and price constraints, then orders the
// result. The input list is never reordered; Search sorts a copy.
func Search(phones []*catalog.Phone, q Query) []*catalog.Phone {
	result := ByKeyword(phones, q.Keyword)

	minPrice, maxPrice := q.MinPrice, q.MaxPrice
	if minPrice > 0 || maxPrice > 0 {
		if minPrice <= 0 {
			minPrice = -1
		}
		if maxPrice <= 0 {
			maxPrice = -1
		}
		result = ByPriceRange(result, minPrice, maxPrice)
	}

	return Sort(result, q.SortBy)
}
