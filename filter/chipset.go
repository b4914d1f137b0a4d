package filter

import (
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// ChipsetFamily identifies a chipset product line matched by keyword.
type ChipsetFamily int

const (
	Snapdragon ChipsetFamily = iota
	AppleA
	Exynos
	MediaTekHelio
	MediaTekDimensity
)

var chipsetFamilies = map[ChipsetFamily]struct {
	displayName string
	keywords    []string
}{
	Snapdragon:        {"Snapdragon", []string{"snapdragon"}},
	AppleA:            {"Apple A Series", []string{"a14", "a15", "a16", "a17", "a18", "apple"}},
	Exynos:            {"Exynos", []string{"exynos"}},
	MediaTekHelio:     {"MediaTek Helio", []string{"helio"}},
	MediaTekDimensity: {"MediaTek Dimensity", []string{"dimensity"}},
}

// DisplayName returns the family's marketing name.
func (f ChipsetFamily) DisplayName() string {
	return chipsetFamilies[f].displayName
}

// Keywords returns the lower-case substrings that identify the family in a
// chipset attribute value.
func (f ChipsetFamily) Keywords() []string {
	return chipsetFamilies[f].keywords
}

// NewChipsetFilter keeps phones whose chipset attribute matches any of the
// given families by keyword. Phones without a chipset attribute are excluded.
func NewChipsetFilter(families ...ChipsetFamily) Filter {
	return newPredicateFilter(
		"chipset",
		chipsetDescription(families),
		func(phone *catalog.Phone) bool {
			chipset := strings.ToLower(phone.Description.Chipset())
			if chipset == "" {
				return false
			}
			for _, family := range families {
				for _, kw := range family.Keywords() {
					if strings.Contains(chipset, kw) {
						return true
					}
				}
			}
			return false
		},
	)
}

func chipsetDescription(families []ChipsetFamily) string {
	if len(families) == 0 {
		return "Lọc theo chipset"
	}
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.DisplayName()
	}
	return "Chipset: " + strings.Join(names, ", ")
}
