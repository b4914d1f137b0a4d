package filter

import (
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// Threshold constants for the fixed-criteria filters.
const (
	minLongBatteryCapacity = 4000 // mAh

	minHighSpecRAM = 8 // GB

	maxCompactScreenSize = 6.0 // inch
	maxCompactWeight     = 200 // gram

	minLivestreamRearCamera  = 12   // MP
	minLivestreamFrontCamera = 10   // MP
	minLivestreamBattery     = 4000 // mAh
	minLivestreamRAM         = 8    // GB
)

// highEndChipsets lists chipset keywords treated as high-end for the
// high-spec criterion.
var highEndChipsets = []string{
	"snapdragon 8", "snapdragon 888", "snapdragon 865",
	"a14 bionic", "a15 bionic", "a16 bionic", "a17 pro", "a18 pro",
	"dimensity 9000", "helio g99", "exynos 2200", "exynos 2400",
}

// NewLongBatteryFilter keeps phones with a battery capacity of at least
// 4000 mAh. Missing or non-numeric battery attributes exclude the phone.
func NewLongBatteryFilter() Filter {
	return newPredicateFilter(
		"long_battery",
		"Pin trâu (>= 4000mAh)",
		func(phone *catalog.Phone) bool {
			capacity, ok := catalog.ExtractInt(phone.Description.Battery())
			return ok && capacity >= minLongBatteryCapacity
		},
	)
}

// NewHighSpecFilter keeps phones with a high-end chipset and at least 8 GB
// of RAM.
func NewHighSpecFilter() Filter {
	return newPredicateFilter(
		"high_spec",
		"Điện thoại cấu hình cao",
		func(phone *catalog.Phone) bool {
			return hasHighEndChipset(phone) && hasMinRAM(phone, minHighSpecRAM)
		},
	)
}

func hasHighEndChipset(phone *catalog.Phone) bool {
	chipset := strings.ToLower(phone.Description.Chipset())
	if chipset == "" {
		return false
	}
	for _, chip := range highEndChipsets {
		if strings.Contains(chipset, chip) {
			return true
		}
	}
	return false
}

func hasMinRAM(phone *catalog.Phone, minGB int) bool {
	ram, ok := catalog.ExtractInt(phone.Description.RAM())
	return ok && ram >= minGB
}

// NewCompactSizeFilter keeps phones that are comfortable to hold: screen
// size at most 6.0 inches and weight at most 200 grams. Both attributes
// must be present and numeric.
func NewCompactSizeFilter() Filter {
	return newPredicateFilter(
		"compact_size",
		"Điện thoại nhỏ gọn, dễ cầm",
		func(phone *catalog.Phone) bool {
			screen, ok := catalog.ExtractFloat(phone.Description.ScreenSize())
			if !ok || screen > maxCompactScreenSize {
				return false
			}
			weight, ok := catalog.ExtractInt(phone.Description.Attribute(catalog.AttrWeight))
			return ok && weight <= maxCompactWeight
		},
	)
}

// NewGamingFilter keeps phones advertising a game optimization feature in
// their technology/utility attribute.
func NewGamingFilter() Filter {
	return newPredicateFilter(
		"gaming",
		"Điện thoại phù hợp chơi game",
		func(phone *catalog.Phone) bool {
			tech := phone.Description.TechUtilities()
			return strings.Contains(tech, "Tối ưu game") || strings.Contains(tech, "Game Booster")
		},
	)
}

// NewLivestreamFilter keeps phones suitable for livestreaming: a good
// camera, a 4000+ mAh battery, 8+ GB of RAM and 4K video recording.
func NewLivestreamFilter() Filter {
	return newPredicateFilter(
		"livestream",
		"Điện thoại phù hợp livestream",
		func(phone *catalog.Phone) bool {
			return hasLivestreamCamera(phone) &&
				hasLivestreamBattery(phone) &&
				hasMinRAM(phone, minLivestreamRAM) &&
				has4KVideo(phone)
		},
	)
}

// hasLivestreamCamera accepts a rear camera with any 12+ MP sensor, falling
// back to a 10+ MP front camera. Rear camera values list several sensors
// ("48MP + 12MP ..."), so each MP-delimited segment is scanned separately.
func hasLivestreamCamera(phone *catalog.Phone) bool {
	rear := phone.Description.RearCamera()
	if rear != "" {
		for _, part := range strings.Split(rear, "MP") {
			if resolution, ok := catalog.ExtractInt(part); ok && resolution >= minLivestreamRearCamera {
				return true
			}
		}
	}

	front := phone.Description.FrontCamera()
	if front != "" {
		if resolution, ok := catalog.ExtractInt(front); ok {
			return resolution >= minLivestreamFrontCamera
		}
	}

	return false
}

func hasLivestreamBattery(phone *catalog.Phone) bool {
	capacity, ok := catalog.ExtractInt(phone.Description.Battery())
	return ok && capacity >= minLivestreamBattery
}

func has4KVideo(phone *catalog.Phone) bool {
	return strings.Contains(phone.Description.Attribute(catalog.AttrVideoRecording), "4K")
}
