package filter

import "strings"

// diacriticFolder maps Vietnamese accented vowels and "đ" to their unaccented
// Latin equivalents. Applied after lower-casing, so only lower-case runes
// need entries.
var diacriticFolder = strings.NewReplacer(
	"á", "a", "à", "a", "ả", "a", "ã", "a", "ạ", "a",
	"ă", "a", "ắ", "a", "ằ", "a", "ẳ", "a", "ẵ", "a", "ặ", "a",
	"â", "a", "ấ", "a", "ầ", "a", "ẩ", "a", "ẫ", "a", "ậ", "a",
	"é", "e", "è", "e", "ẻ", "e", "ẽ", "e", "ẹ", "e",
	"ê", "e", "ế", "e", "ề", "e", "ể", "e", "ễ", "e", "ệ", "e",
	"í", "i", "ì", "i", "ỉ", "i", "ĩ", "i", "ị", "i",
	"ó", "o", "ò", "o", "ỏ", "o", "õ", "o", "ọ", "o",
	"ô", "o", "ố", "o", "ồ", "o", "ổ", "o", "ỗ", "o", "ộ", "o",
	"ơ", "o", "ớ", "o", "ờ", "o", "ở", "o", "ỡ", "o", "ợ", "o",
	"ú", "u", "ù", "u", "ủ", "u", "ũ", "u", "ụ", "u",
	"ư", "u", "ứ", "u", "ừ", "u", "ử", "u", "ữ", "u", "ự", "u",
	"ý", "y", "ỳ", "y", "ỷ", "y", "ỹ", "y", "ỵ", "y",
	"đ", "d",
)

// Normalize lower-cases text and folds Vietnamese diacritics so that
// "chụp đêm" and "CHUP DEM" compare equal. The same normalization must be
// applied to both the haystack and every keyword before substring matching.
func Normalize(text string) string {
	return strings.TrimSpace(diacriticFolder.Replace(strings.ToLower(text)))
}

// containsNormalized reports whether the normalized haystack contains the
// normalized keyword. The haystack is expected to be pre-normalized by the
// caller when matching many keywords against the same text.
func containsNormalized(normalizedHaystack, keyword string) bool {
	return strings.Contains(normalizedHaystack, Normalize(keyword))
}
