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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/vietphone/phonerec/catalog"
)

const (
	defaultBaseURL = "https://cellphones.com.vn"
	defaultTimeout = 10 * time.Second

	// Some storefronts refuse requests without a browser user agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// CellphonesScraper extracts phone records from cellphones.com.vn pages.
type CellphonesScraper struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

var _ Scraper = (*CellphonesScraper)(nil)

// CellphonesOption configures a CellphonesScraper.
type CellphonesOption func(*CellphonesScraper)

// WithHTTPClient sets the HTTP client used to fetch pages. Default is a
// client with a 10 second timeout.
func WithHTTPClient(client *http.Client) CellphonesOption {
	return func(s *CellphonesScraper) {
		if client != nil {
			s.client = client
		}
	}
}

// WithBaseURL sets the base URL that relative product links are resolved
// against. Useful for pointing the scraper at a test server.
func WithBaseURL(baseURL string) CellphonesOption {
	return func(s *CellphonesScraper) {
		if baseURL != "" {
			s.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithScraperLogger sets a custom logger. Default is slog.Default().
func WithScraperLogger(logger *slog.Logger) CellphonesOption {
	return func(s *CellphonesScraper) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewCellphonesScraper creates a scraper for cellphones.com.vn.
func NewCellphonesScraper(opts ...CellphonesOption) *CellphonesScraper {
	s := &CellphonesScraper{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
		logger:  slog.Default().With("component", "cellphones-scraper"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScrapePhone fetches a product detail page and builds the full record.
func (s *CellphonesScraper) ScrapePhone(ctx context.Context, url string) (*catalog.Phone, error) {
	doc, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.parsePhone(doc, url)
}

// ScrapePrice fetches a product detail page and extracts the price.
func (s *CellphonesScraper) ScrapePrice(ctx context.Context, url string) (float64, error) {
	doc, err := s.fetch(ctx, url)
	if err != nil {
		return 0, err
	}
	return parsePrice(doc)
}

// ScrapeImage fetches a product detail page and extracts the main image.
func (s *CellphonesScraper) ScrapeImage(ctx context.Context, url string) (string, error) {
	doc, err := s.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return parseImage(doc)
}

// ScrapePhoneList fetches a listing page and extracts basic records.
func (s *CellphonesScraper) ScrapePhoneList(ctx context.Context, url string, maxItems int) ([]*catalog.Phone, error) {
	doc, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.parseList(doc, maxItems), nil
}

func (s *CellphonesScraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d fetching %s", ErrBadStatus, resp.StatusCode, url)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func (s *CellphonesScraper) parsePhone(doc *goquery.Document, url string) (*catalog.Phone, error) {
	name := strings.TrimSpace(doc.Find("h1.product-title").First().Text())
	if name == "" {
		return nil, fmt.Errorf("%w: %s", ErrNameNotFound, url)
	}

	price, err := parsePrice(doc)
	if err != nil {
		s.logger.Warn("price missing on product page", "url", url)
		price = 0
	}

	phone := catalog.NewPhone(name, url, price, parseDescription(doc))

	if image, err := parseImage(doc); err == nil {
		phone.SetImageURL(image)
	}
	return phone, nil
}

func parsePrice(doc *goquery.Document) (float64, error) {
	text := doc.Find("div.product-price span.price").First().Text()
	price, ok := parsePriceText(text)
	if !ok {
		return 0, ErrPriceNotFound
	}
	return price, nil
}

// parsePriceText strips everything but digits from a displayed price such
// as "22.990.000đ" and parses the remainder.
func parsePriceText(text string) (float64, bool) {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	price, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func parseImage(doc *goquery.Document) (string, error) {
	for _, selector := range []string{"div.featured-image img", "div.product-image img"} {
		if src, ok := doc.Find(selector).First().Attr("src"); ok && src != "" {
			return src, nil
		}
	}
	return "", ErrImageNotFound
}

func parseDescription(doc *goquery.Document) catalog.Description {
	description := catalog.NewDescription()
	doc.Find("div.product-specifications table tr").Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find("td.name").First().Text())
		value := strings.TrimSpace(row.Find("td.value").First().Text())
		if name != "" && value != "" {
			description.SetAttribute(name, value)
		}
	})
	return description
}

func (s *CellphonesScraper) parseList(doc *goquery.Document, maxItems int) []*catalog.Phone {
	var phones []*catalog.Phone

	doc.Find("div.product-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if maxItems > 0 && len(phones) >= maxItems {
			return false
		}

		link := item.Find("a.product-name").First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}
		if !strings.HasPrefix(href, "http") {
			href = s.baseURL + href
		}

		name := strings.TrimSpace(link.Text())
		if name == "" {
			return true
		}

		price, _ := parsePriceText(item.Find("span.price").First().Text())

		phone := catalog.NewPhone(name, href, price, catalog.NewDescription())
		if src, ok := item.Find("img.product-image").First().Attr("src"); ok && src != "" {
			phone.SetImageURL(src)
		}
		phones = append(phones, phone)
		return true
	})

	return phones
}
