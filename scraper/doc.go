// Package scraper collects phone records from retail websites.
//
// CellphonesScraper targets cellphones.com.vn: product detail pages yield
// full records including the specification table, listing pages yield basic
// records suitable for a later detail pass.
package scraper
