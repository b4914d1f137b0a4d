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

package scraper

import (
	"context"

	"github.com/vietphone/phonerec/catalog"
)

// Scraper extracts phone listings from a retail website.
type Scraper interface {
	// ScrapePhone fetches a product detail page and extracts the full
	// phone record including the specification table.
	ScrapePhone(ctx context.Context, url string) (*catalog.Phone, error)

	// ScrapePhoneList fetches a product listing page and extracts basic
	// records (name, link, price, image). maxItems <= 0 means no limit.
	ScrapePhoneList(ctx context.Context, url string, maxItems int) ([]*catalog.Phone, error)

	// ScrapePrice fetches a product detail page and extracts the price.
	ScrapePrice(ctx context.Context, url string) (float64, error)

	// ScrapeImage fetches a product detail page and extracts the main
	// product image URL.
	ScrapeImage(ctx context.Context, url string) (string, error)
}
