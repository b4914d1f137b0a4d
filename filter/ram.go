package filter

import (
	"fmt"

	"github.com/vietphone/phonerec/catalog"
)

// NewRAMFilter keeps phones whose RAM capacity (GB) falls within
// [minGB, maxGB]. A maxGB <= 0 means no upper bound. Phones with a missing
// or non-numeric RAM attribute are excluded.
func NewRAMFilter(minGB, maxGB int) Filter {
	return newPredicateFilter(
		"ram_capacity",
		ramDescription(minGB, maxGB),
		func(phone *catalog.Phone) bool {
			ram, ok := catalog.ExtractInt(phone.Description.RAM())
			if !ok {
				return false
			}
			if ram < minGB {
				return false
			}
			return maxGB <= 0 || ram <= maxGB
		},
	)
}

func ramDescription(minGB, maxGB int) string {
	switch {
	case maxGB <= 0:
		return fmt.Sprintf("RAM từ %dGB trở lên", minGB)
	case minGB == maxGB:
		return fmt.Sprintf("RAM %dGB", minGB)
	default:
		return fmt.Sprintf("RAM %dGB-%dGB", minGB, maxGB)
	}
}

// NewRAM4To6Filter keeps phones with 4-6 GB of RAM.
func NewRAM4To6Filter() Filter { return NewRAMFilter(4, 6) }

// NewRAM8Filter keeps phones with exactly 8 GB of RAM.
func NewRAM8Filter() Filter { return NewRAMFilter(8, 8) }

// NewRAM8To12Filter keeps phones with 8-12 GB of RAM.
func NewRAM8To12Filter() Filter { return NewRAMFilter(8, 12) }

// NewRAM12PlusFilter keeps phones with at least 12 GB of RAM.
func NewRAM12PlusFilter() Filter { return NewRAMFilter(12, 0) }
