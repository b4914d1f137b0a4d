// Copyright 2025 Vietphone Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filter

import (
	"strings"

	"github.com/vietphone/phonerec/catalog"
)

// Mode selects how a composite combines its child filters.
type Mode int

const (
	// ModeAll keeps phones satisfying every child filter.
	ModeAll Mode = iota
	// ModeAny keeps phones satisfying at least one child filter.
	ModeAny
)

// Composite combines several filters under AND or OR semantics. A composite
// with no children is the identity: it returns its input unchanged.
//
// Composite is itself a Filter, so composites nest. It is not safe for
// concurrent mutation; build the filter set first, then Apply.
type Composite struct {
	mode    Mode
	filters []Filter
}

// NewComposite creates an empty composite with the given combination mode.
func NewComposite(mode Mode) *Composite {
	return &Composite{mode: mode}
}

// NewAllOf creates a composite requiring every listed filter to match.
func NewAllOf(filters ...Filter) *Composite {
	return &Composite{mode: ModeAll, filters: filters}
}

// NewAnyOf creates a composite requiring at least one listed filter to match.
func NewAnyOf(filters ...Filter) *Composite {
	return &Composite{mode: ModeAny, filters: filters}
}

// Mode returns the combination mode.
func (c *Composite) Mode() Mode { return c.mode }

// Add appends a child filter. Nil filters are ignored.
func (c *Composite) Add(f Filter) *Composite {
	if f != nil {
		c.filters = append(c.filters, f)
	}
	return c
}

// RemoveByID removes every child filter with the given ID and reports
// whether any was removed.
func (c *Composite) RemoveByID(id string) bool {
	kept := c.filters[:0]
	removed := false
	for _, f := range c.filters {
		if f.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	c.filters = kept
	return removed
}

// Clear removes all child filters.
func (c *Composite) Clear() {
	c.filters = nil
}

// Filters returns a copy of the child filter list.
func (c *Composite) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// Len returns the number of child filters.
func (c *Composite) Len() int { return len(c.filters) }

func (c *Composite) ID() string { return "composite" }

func (c *Composite) Description() string {
	var mode string
	switch c.mode {
	case ModeAny:
		mode = "thỏa mãn ít nhất một"
	default:
		mode = "thỏa mãn tất cả"
	}
	if len(c.filters) == 0 {
		return "Bộ lọc tổng hợp (" + mode + "): (chưa có điều kiện)"
	}
	descs := make([]string, len(c.filters))
	for i, f := range c.filters {
		descs[i] = f.Description()
	}
	return "Bộ lọc tổng hợp (" + mode + "): " + strings.Join(descs, "; ")
}

func (c *Composite) Apply(phones []*catalog.Phone) []*catalog.Phone {
	if len(c.filters) == 0 {
		return phones
	}
	if c.mode == ModeAny {
		return c.applyAny(phones)
	}
	return c.applyAll(phones)
}

// applyAll folds the child filters left to right, so each filter only sees
// what the previous ones kept.
func (c *Composite) applyAll(phones []*catalog.Phone) []*catalog.Phone {
	result := phones
	for _, f := range c.filters {
		result = f.Apply(result)
		if len(result) == 0 {
			break
		}
	}
	return result
}

// applyAny keeps phones matching at least one child. Input order is
// preserved and each phone appears at most once, keyed by its link.
func (c *Composite) applyAny(phones []*catalog.Phone) []*catalog.Phone {
	seen := make(map[string]struct{}, len(phones))
	result := make([]*catalog.Phone, 0, len(phones))
	for _, phone := range phones {
		if _, dup := seen[phone.Link]; dup {
			continue
		}
		for _, f := range c.filters {
			if Matches(f, phone) {
				seen[phone.Link] = struct{}{}
				result = append(result, phone)
				break
			}
		}
	}
	return result
}

// AsComposite reports whether a filter is a composite, returning it typed.
// Callers use this instead of inspecting filter internals when they need to
// extend an existing filter chain.
func AsComposite(f Filter) (*Composite, bool) {
	c, ok := f.(*Composite)
	return c, ok
}
