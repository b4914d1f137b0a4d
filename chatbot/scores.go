package chatbot

import (
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// cameraScore estimates camera quality from sensor resolution keywords and
// price tier. Only the relative ordering matters, not the absolute value.
func cameraScore(phone *catalog.Phone) int {
	score := 0
	camera := phone.Description.RearCamera()
	if camera != "" {
		if strings.Contains(camera, "48") || strings.Contains(camera, "50") {
			score += 30
		}
		if strings.Contains(camera, "64") {
			score += 35
		}
		if strings.Contains(camera, "108") || strings.Contains(camera, "200") {
			score += 50
		}
		lower := strings.ToLower(camera)
		if strings.Contains(lower, "leica") {
			score += 20
		}
		if strings.Contains(lower, "ultra") {
			score += 15
		}
	}

	switch {
	case phone.Price > 20_000_000:
		score += 25
	case phone.Price > 15_000_000:
		score += 15
	case phone.Price > 10_000_000:
		score += 10
	}
	return score
}

// gamingScore estimates gaming performance from RAM size and chipset tier.
func gamingScore(phone *catalog.Phone) int {
	score := 0

	ram := phone.Description.RAM()
	switch {
	case strings.Contains(ram, "12") || strings.Contains(ram, "16"):
		score += 40
	case strings.Contains(ram, "8"):
		score += 30
	case strings.Contains(ram, "6"):
		score += 20
	}

	chip := strings.ToLower(phone.Description.Chipset())
	switch {
	case strings.Contains(chip, "snapdragon 8") || strings.Contains(chip, "a17") || strings.Contains(chip, "a18"):
		score += 50
	case strings.Contains(chip, "snapdragon 7") || strings.Contains(chip, "a15") || strings.Contains(chip, "a16"):
		score += 40
	case strings.Contains(chip, "dimensity 9") || strings.Contains(chip, "snapdragon 888"):
		score += 35
	}
	return score
}

// overallScore balances price tier against camera and gaming quality for
// general recommendations. Mid-range phones get the highest price weight.
func overallScore(phone *catalog.Phone) int {
	score := 0
	switch {
	case phone.Price < 10_000_000:
		score += 20
	case phone.Price < 15_000_000:
		score += 25
	case phone.Price < 20_000_000:
		score += 30
	default:
		score += 15
	}

	score += cameraScore(phone) / 2
	score += gamingScore(phone) / 2
	return score
}
