package catalog

import "strings"

// BrandUnknown is returned when a phone name matches no known brand keyword.
const BrandUnknown = "Khác"

// brandKeywords maps brand labels to the name keywords that identify them.
// Order matters: the first matching entry wins.
var brandKeywords = []struct {
	label    string
	keywords []string
}{
	{"Apple", []string{"iphone", "apple"}},
	{"Samsung", []string{"samsung", "galaxy"}},
	{"Xiaomi", []string{"xiaomi", "redmi", "poco"}},
	{"Oppo", []string{"oppo"}},
	{"Vivo", []string{"vivo"}},
	{"Huawei", []string{"huawei"}},
	{"Realme", []string{"realme"}},
	{"Nokia", []string{"nokia"}},
	{"Sony", []string{"sony"}},
	{"Asus", []string{"asus", "rog"}},
}

// Brand classifies a phone name into a brand label by keyword lookup.
// Returns BrandUnknown when no keyword matches.
func Brand(phoneName string) string {
	name := strings.ToLower(phoneName)
	for _, b := range brandKeywords {
		for _, kw := range b.keywords {
			if strings.Contains(name, kw) {
				return b.label
			}
		}
	}
	return BrandUnknown
}
