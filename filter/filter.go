package filter

import "github.com/vietphone/phonerec/catalog"

// Filter selects a subset of catalog entries. Implementations are pure with
// respect to the catalog: applying a filter never mutates the input phones,
// and an entry with missing or malformed attribute data is excluded rather
// than causing an error.
type Filter interface {
	// ID identifies the filter kind, used for add/remove bookkeeping
	// in composites.
	ID() string

	// Description returns a human-readable summary of the criterion.
	Description() string

	// Apply returns the entries that satisfy the criterion, preserving
	// input order.
	Apply(phones []*catalog.Phone) []*catalog.Phone
}

// predicateFilter adapts a per-phone predicate into a Filter.
// All concrete single-criterion filters are built on it.
type predicateFilter struct {
	id          string
	description string
	match       func(*catalog.Phone) bool
}

func newPredicateFilter(id, description string, match func(*catalog.Phone) bool) *predicateFilter {
	return &predicateFilter{id: id, description: description, match: match}
}

func (f *predicateFilter) ID() string          { return f.id }
func (f *predicateFilter) Description() string { return f.description }

func (f *predicateFilter) Apply(phones []*catalog.Phone) []*catalog.Phone {
	result := make([]*catalog.Phone, 0, len(phones))
	for _, phone := range phones {
		if f.match(phone) {
			result = append(result, phone)
		}
	}
	return result
}

// Matches reports whether a single phone satisfies the filter, by applying
// it to a singleton list.
func Matches(f Filter, phone *catalog.Phone) bool {
	return len(f.Apply([]*catalog.Phone{phone})) > 0
}
