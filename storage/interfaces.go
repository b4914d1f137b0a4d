package storage

import (
	"context"

	"github.com/vietphone/phonerec/catalog"
)

// PhoneRepository provides persistence for the phone catalog.
// Implementations must be safe for concurrent use and must return defensive
// copies: mutating a returned phone never affects stored state, and stored
// state only changes through Save/Delete/UpdateViewCount.
type PhoneRepository interface {
	// GetAllPhones returns every phone in the catalog. Order is the
	// insertion order where the backend preserves one.
	GetAllPhones(ctx context.Context) ([]*catalog.Phone, error)

	// FindByLink retrieves the phone with the given product link.
	// Returns ErrNotFound if no such phone exists.
	FindByLink(ctx context.Context, link string) (*catalog.Phone, error)

	// FindByName retrieves the first phone whose name matches exactly.
	// Returns ErrNotFound if no such phone exists.
	FindByName(ctx context.Context, name string) (*catalog.Phone, error)

	// SearchPhones returns phones whose name contains the keyword,
	// case-insensitively with diacritics folded. A blank keyword returns
	// the whole catalog.
	SearchPhones(ctx context.Context, keyword string) ([]*catalog.Phone, error)

	// SavePhone inserts or replaces a phone, keyed by its link.
	// The phone is validated before writing.
	SavePhone(ctx context.Context, phone *catalog.Phone) error

	// SavePhones saves a batch of phones, keyed by link. Later entries
	// with a duplicate link replace earlier ones.
	SavePhones(ctx context.Context, phones []*catalog.Phone) error

	// DeletePhone removes the phone with the given link.
	// Returns ErrNotFound if no such phone exists.
	DeletePhone(ctx context.Context, link string) error

	// UpdateViewCount increments the view counter of the phone with the
	// given link and returns the new count.
	// Returns ErrNotFound if no such phone exists.
	UpdateViewCount(ctx context.Context, link string) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
