package chatbot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// Document pairs a phone with the text rendered for embedding and the
// resulting vector. Documents are immutable once built; UpdateData replaces
// the whole set instead of mutating it.
type Document struct {
	Link     string
	Content  string
	Vector   []float32
	Metadata map[string]string
	Phone    *catalog.Phone
}

// documentMetadata summarizes the fields answer templates key on without
// reaching into the full attribute set.
func documentMetadata(phone *catalog.Phone) map[string]string {
	return map[string]string{
		"name":  phone.Name,
		"price": formatPrice(phone.Price),
		"brand": catalog.Brand(phone.Name),
	}
}

// buildContent renders a phone as the text that gets embedded: name, price
// and every description attribute, one per line. Attributes are emitted in
// sorted key order so the same phone always produces the same content, and
// therefore the same vector.
func buildContent(phone *catalog.Phone) string {
	var sb strings.Builder
	sb.WriteString("Tên: ")
	sb.WriteString(phone.Name)
	sb.WriteString("\n")
	sb.WriteString("Giá: ")
	sb.WriteString(formatPrice(phone.Price))
	sb.WriteString(" VNĐ\n")

	attrs := phone.Description.Attributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(attrs[k])
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatPrice renders a VND amount with thousands separators, e.g.
// 22000000 -> "22,000,000".
func formatPrice(price float64) string {
	raw := fmt.Sprintf("%.0f", price)

	negative := strings.HasPrefix(raw, "-")
	digits := strings.TrimPrefix(raw, "-")

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteString(",")
		}
		sb.WriteRune(d)
	}
	return sb.String()
}
