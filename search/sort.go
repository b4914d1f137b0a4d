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

package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// Order selects the result ordering applied by Sort.
type Order int

const (
	// Unordered keeps the input order.
	Unordered Order = iota
	// PriceAsc orders by price, cheapest first.
	PriceAsc
	// PriceDesc orders by price, most expensive first.
	PriceDesc
	// MostViewed orders by view count, descending.
	MostViewed
	// Newest orders by launch date, most recent first. Phones without a
	// parseable launch date sort last.
	Newest
)

// Sort returns a sorted copy of phones. The input slice is never reordered.
// All orderings are stable: ties keep their input order.
func Sort(phones []*catalog.Phone, order Order) []*catalog.Phone {
	if order == Unordered {
		return phones
	}

	result := make([]*catalog.Phone, len(phones))
	copy(result, phones)

	switch order {
	case PriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case PriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case MostViewed:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ViewCount > result[j].ViewCount
		})
	case Newest:
		sort.SliceStable(result, func(i, j int) bool {
			return launchRank(result[i]) > launchRank(result[j])
		})
	}
	return result
}

// launchRank converts a launch date attribute ("09/2023", "2024") into a
// comparable year*100+month rank. Unparseable dates rank lowest so they
// sort last under Newest.
func launchRank(phone *catalog.Phone) int {
	raw := strings.TrimSpace(phone.Description.LaunchDate())
	if raw == "" {
		return -1
	}

	if month, year, ok := strings.Cut(raw, "/"); ok {
		m, errM := strconv.Atoi(strings.TrimSpace(month))
		y, errY := strconv.Atoi(strings.TrimSpace(year))
		if errM == nil && errY == nil && m >= 1 && m <= 12 {
			return y*100 + m
		}
		return -1
	}

	if y, err := strconv.Atoi(raw); err == nil {
		return y * 100
	}
	return -1
}
