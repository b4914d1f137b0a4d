package catalog

import (
	"strconv"
	"strings"
)

// ExtractInt strips every non-digit character from free-text attribute values
// like "5000 mAh", "8 GB" or "5,000 mAh" and parses the residual as an
// integer. Returns (0, false) when nothing numeric remains or the residual
// does not parse; extraction never fails loudly.
func ExtractInt(text string) (int, bool) {
	var sb strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractFloat keeps digits and decimal points from values like
// "6.1 inches" and parses the residual as a float. Returns (0, false) on
// empty or malformed residuals such as "..".
func ExtractFloat(text string) (float64, bool) {
	var sb strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
