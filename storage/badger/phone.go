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

// Package badger implements storage.PhoneRepository on an embedded
// BadgerDB key-value store. Records are stored as JSON under link-hash
// keys, with an exact-name index for FindByName.
package badger

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/filter"
	"github.com/vietphone/phonerec/storage"
)

// Repository is a BadgerDB-backed phone repository.
type Repository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.PhoneRepository = (*Repository)(nil)

// NewRepository creates a repository on an already-open backend. The
// repository takes ownership: Close closes the backend.
func NewRepository(backend *Backend) *Repository {
	return &Repository{
		backend: backend,
		logger:  slog.Default().With("component", "badger-repository"),
	}
}

// Open opens a BadgerDB catalog at path.
func Open(path string) (*Repository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return NewRepository(backend), nil
}

// GetAllPhones returns every stored phone, in key order.
func (r *Repository) GetAllPhones(_ context.Context) ([]*catalog.Phone, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var phones []*catalog.Phone
	err := r.backend.WithTx(func(tx *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = []byte(phoneRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				phone, err := storage.UnmarshalPhone(val)
				if err != nil {
					return err
				}
				phones = append(phones, phone)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return phones, nil
}

// FindByLink retrieves a phone by its product link.
func (r *Repository) FindByLink(_ context.Context, link string) (*catalog.Phone, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var phone *catalog.Phone
	err := r.backend.WithTx(func(tx *badgerdb.Txn) error {
		var err error
		phone, err = getPhone(tx, makePhoneKey(link))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return phone, nil
}

// FindByName retrieves a phone by exact name, case-insensitively, via the
// name index.
func (r *Repository) FindByName(_ context.Context, name string) (*catalog.Phone, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var phone *catalog.Phone
	err := r.backend.WithTx(func(tx *badgerdb.Txn) error {
		item, err := tx.Get(makeNameKey(strings.ToLower(name)))
		if err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var link string
		if err := item.Value(func(val []byte) error {
			link = string(val)
			return nil
		}); err != nil {
			return err
		}

		phone, err = getPhone(tx, makePhoneKey(link))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return phone, nil
}

// SearchPhones scans all records for a normalized name substring match.
// A blank keyword returns everything.
func (r *Repository) SearchPhones(ctx context.Context, keyword string) ([]*catalog.Phone, error) {
	phones, err := r.GetAllPhones(ctx)
	if err != nil {
		return nil, err
	}

	needle := filter.Normalize(keyword)
	if needle == "" {
		return phones, nil
	}

	result := phones[:0]
	for _, phone := range phones {
		if strings.Contains(filter.Normalize(phone.Name), needle) {
			result = append(result, phone)
		}
	}
	return result, nil
}

// SavePhone inserts or replaces a phone, keyed by link.
func (r *Repository) SavePhone(ctx context.Context, phone *catalog.Phone) error {
	return r.SavePhones(ctx, []*catalog.Phone{phone})
}

// SavePhones saves a batch of phones in one transaction.
func (r *Repository) SavePhones(_ context.Context, phones []*catalog.Phone) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	for _, phone := range phones {
		if err := catalog.ValidatePhone(phone); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badgerdb.Txn) error {
		for _, phone := range phones {
			if err := putPhone(tx, phone); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeletePhone removes a phone and its name index entry.
func (r *Repository) DeletePhone(_ context.Context, link string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badgerdb.Txn) error {
		key := makePhoneKey(link)
		phone, err := getPhone(tx, key)
		if err != nil {
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		if err := tx.Delete(makeNameKey(strings.ToLower(phone.Name))); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// UpdateViewCount increments a phone's view counter and returns the new
// count.
func (r *Repository) UpdateViewCount(_ context.Context, link string) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := r.backend.WithTx(func(tx *badgerdb.Txn) error {
		phone, err := getPhone(tx, makePhoneKey(link))
		if err != nil {
			return err
		}

		phone.IncrementViewCount()
		count = phone.ViewCount

		if err := putPhone(tx, phone); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close closes the underlying backend.
func (r *Repository) Close() error {
	return r.backend.Close()
}

func getPhone(tx *badgerdb.Txn, key []byte) (*catalog.Phone, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var phone *catalog.Phone
	err = item.Value(func(val []byte) error {
		phone, err = storage.UnmarshalPhone(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return phone, nil
}

// putPhone writes the record and refreshes the name index. When a save
// renames an existing phone, the stale index entry is removed so lookups
// by the old name miss.
func putPhone(tx *badgerdb.Txn, phone *catalog.Phone) error {
	key := makePhoneKey(phone.Link)

	if existing, err := getPhone(tx, key); err == nil {
		if !strings.EqualFold(existing.Name, phone.Name) {
			if err := tx.Delete(makeNameKey(strings.ToLower(existing.Name))); err != nil {
				return err
			}
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	data, err := storage.MarshalPhone(phone)
	if err != nil {
		return err
	}
	if err := tx.Set(key, data); err != nil {
		return err
	}
	return tx.Set(makeNameKey(strings.ToLower(phone.Name)), []byte(phone.Link))
}
