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

// Package jsonfile implements storage.PhoneRepository on a single JSON
// array file. The whole catalog is held in memory; every write persists the
// full snapshot.
package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/filter"
	"github.com/vietphone/phonerec/storage"
)

// Repository is a file-backed phone repository.
type Repository struct {
	path   string
	logger *slog.Logger

	mu     sync.RWMutex
	phones []*catalog.Phone
	closed bool
}

var _ storage.PhoneRepository = (*Repository)(nil)

// Open loads the catalog from path. A missing file is created holding an
// empty array, so a fresh deployment starts with an empty catalog instead
// of an error.
func Open(path string) (*Repository, error) {
	logger := slog.Default().With("component", "jsonfile-repository")

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create catalog directory: %w", err)
			}
		}
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("create catalog file: %w", err)
		}
		logger.Info("created empty catalog file", "path", path)
		data = []byte("[]")
	}

	phones, err := storage.UnmarshalPhoneList(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	logger.Info("catalog loaded", "path", path, "phones", len(phones))
	return &Repository{
		path:   path,
		logger: logger,
		phones: phones,
	}, nil
}

// GetAllPhones returns a snapshot of the catalog in file order.
func (r *Repository) GetAllPhones(_ context.Context) ([]*catalog.Phone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}
	return clonePhones(r.phones), nil
}

// FindByLink retrieves a phone by its product link.
func (r *Repository) FindByLink(_ context.Context, link string) (*catalog.Phone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}
	for _, phone := range r.phones {
		if phone.Link == link {
			return phone.Clone(), nil
		}
	}
	return nil, storage.ErrNotFound
}

// FindByName retrieves the first phone with an exact name match.
func (r *Repository) FindByName(_ context.Context, name string) (*catalog.Phone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}
	for _, phone := range r.phones {
		if strings.EqualFold(phone.Name, name) {
			return phone.Clone(), nil
		}
	}
	return nil, storage.ErrNotFound
}

// SearchPhones returns phones whose name contains the keyword, with
// Vietnamese diacritics folded. A blank keyword returns everything.
func (r *Repository) SearchPhones(_ context.Context, keyword string) ([]*catalog.Phone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}

	needle := filter.Normalize(keyword)
	if needle == "" {
		return clonePhones(r.phones), nil
	}

	var result []*catalog.Phone
	for _, phone := range r.phones {
		if strings.Contains(filter.Normalize(phone.Name), needle) {
			result = append(result, phone.Clone())
		}
	}
	return result, nil
}

// SavePhone inserts or replaces a phone, keyed by link, and persists the
// snapshot.
func (r *Repository) SavePhone(ctx context.Context, phone *catalog.Phone) error {
	return r.SavePhones(ctx, []*catalog.Phone{phone})
}

// SavePhones saves a batch of phones in one persisted snapshot.
func (r *Repository) SavePhones(_ context.Context, phones []*catalog.Phone) error {
	for _, phone := range phones {
		if err := catalog.ValidatePhone(phone); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return storage.ErrStorageClosed
	}

	for _, phone := range phones {
		r.upsertLocked(phone.Clone())
	}
	return r.persistLocked()
}

func (r *Repository) upsertLocked(phone *catalog.Phone) {
	for i, existing := range r.phones {
		if existing.Link == phone.Link {
			r.phones[i] = phone
			return
		}
	}
	r.phones = append(r.phones, phone)
}

// DeletePhone removes a phone by link and persists the snapshot.
func (r *Repository) DeletePhone(_ context.Context, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return storage.ErrStorageClosed
	}

	for i, phone := range r.phones {
		if phone.Link == link {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return r.persistLocked()
		}
	}
	return storage.ErrNotFound
}

// UpdateViewCount increments a phone's view counter and persists it.
func (r *Repository) UpdateViewCount(_ context.Context, link string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, storage.ErrStorageClosed
	}

	for _, phone := range r.phones {
		if phone.Link == link {
			phone.IncrementViewCount()
			if err := r.persistLocked(); err != nil {
				return 0, err
			}
			return phone.ViewCount, nil
		}
	}
	return 0, storage.ErrNotFound
}

// Close persists the final snapshot and rejects further calls.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	err := r.persistLocked()
	r.closed = true
	return err
}

// persistLocked writes the snapshot through a temp file so a crash mid-write
// cannot corrupt the catalog. Callers must hold the write lock.
func (r *Repository) persistLocked() error {
	data, err := storage.MarshalPhoneList(r.phones)
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	r.logger.Debug("catalog persisted", "path", r.path, "phones", len(r.phones))
	return nil
}

func clonePhones(phones []*catalog.Phone) []*catalog.Phone {
	out := make([]*catalog.Phone, len(phones))
	for i, phone := range phones {
		out[i] = phone.Clone()
	}
	return out
}
