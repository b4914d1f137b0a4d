package badger

import (
	"fmt"

	"github.com/vietphone/phonerec/catalog"
)

// Key prefixes for the stored record types.
const (
	phoneRecordPrefix = "phorec"
	phoneNamePrefix   = "phoname"
)

// makePhoneKey generates the record key for a phone, derived from its link
// hash so the same link always maps to the same key.
func makePhoneKey(link string) []byte {
	return []byte(fmt.Sprintf("%s:%d", phoneRecordPrefix, catalog.IDFromLink(link)))
}

// makeNameKey generates the exact-name index key. The name is stored
// lower-cased so FindByName is case-insensitive.
func makeNameKey(loweredName string) []byte {
	return []byte(phoneNamePrefix + ":" + loweredName)
}
