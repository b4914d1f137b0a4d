package scraper

import "errors"

var (
	// ErrBadStatus is returned when the website answers with a non-200
	// status code.
	ErrBadStatus = errors.New("scraper: unexpected response status")

	// ErrNameNotFound is returned when a detail page carries no product
	// title, which usually means the URL is not a product page.
	ErrNameNotFound = errors.New("scraper: product name not found")

	// ErrPriceNotFound is returned when no price could be extracted.
	ErrPriceNotFound = errors.New("scraper: product price not found")

	// ErrImageNotFound is returned when no product image could be found.
	ErrImageNotFound = errors.New("scraper: product image not found")
)
