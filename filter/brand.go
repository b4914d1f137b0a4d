package filter

import (
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// NewBrandFilter keeps phones whose name contains any of the given brand
// keywords, case-insensitively. A phone with an empty name never matches.
func NewBrandFilter(brandNames ...string) Filter {
	keywords := make([]string, len(brandNames))
	for i, b := range brandNames {
		keywords[i] = strings.ToLower(b)
	}

	return newPredicateFilter(
		"brand",
		"Lọc theo hãng: "+strings.Join(brandNames, ", "),
		func(phone *catalog.Phone) bool {
			name := strings.ToLower(phone.Name)
			if name == "" {
				return false
			}
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					return true
				}
			}
			return false
		},
	)
}

// NewSamsungFilter matches Samsung phones by name.
func NewSamsungFilter() Filter { return NewBrandFilter("samsung", "galaxy") }

// NewAppleFilter matches Apple phones by name. "iphone" is the primary
// keyword since most listings omit "Apple".
func NewAppleFilter() Filter { return NewBrandFilter("iphone", "apple") }

// NewOppoFilter matches Oppo phones by name.
func NewOppoFilter() Filter { return NewBrandFilter("oppo") }

// NewXiaomiFilter matches Xiaomi phones by name, including the Redmi and
// Poco sub-brands.
func NewXiaomiFilter() Filter { return NewBrandFilter("xiaomi", "redmi", "poco") }

// NewVivoFilter matches Vivo phones by name.
func NewVivoFilter() Filter { return NewBrandFilter("vivo") }
