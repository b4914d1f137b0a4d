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

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/vietphone/phonerec/catalog"
)

// phoneRecord is the JSON wire form of a catalog entry. The key names match
// the data files produced by earlier catalog exports, so existing files load
// without migration. Unknown description keys round-trip untouched because
// the description is a free-form map.
type phoneRecord struct {
	Name        string            `json:"name"`
	Link        string            `json:"link"`
	Price       float64           `json:"price"`
	ViewCount   int               `json:"viewCount"`
	ImgURL      string            `json:"imgURL,omitempty"`
	Description map[string]string `json:"description,omitempty"`
}

// MarshalPhone serializes a phone to its JSON record form.
func MarshalPhone(phone *catalog.Phone) ([]byte, error) {
	data, err := json.Marshal(recordFromPhone(phone))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalPhone deserializes a phone from its JSON record form.
func UnmarshalPhone(data []byte) (*catalog.Phone, error) {
	var rec phoneRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return rec.toPhone(), nil
}

// MarshalPhoneList serializes a catalog snapshot to a JSON array.
func MarshalPhoneList(phones []*catalog.Phone) ([]byte, error) {
	records := make([]phoneRecord, len(phones))
	for i, phone := range phones {
		records[i] = recordFromPhone(phone)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalPhoneList deserializes a catalog snapshot from a JSON array.
func UnmarshalPhoneList(data []byte) ([]*catalog.Phone, error) {
	var records []phoneRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	phones := make([]*catalog.Phone, len(records))
	for i := range records {
		phones[i] = records[i].toPhone()
	}
	return phones, nil
}

func recordFromPhone(phone *catalog.Phone) phoneRecord {
	return phoneRecord{
		Name:        phone.Name,
		Link:        phone.Link,
		Price:       phone.Price,
		ViewCount:   phone.ViewCount,
		ImgURL:      phone.RawImageURL(),
		Description: phone.Description.Attributes(),
	}
}

func (r *phoneRecord) toPhone() *catalog.Phone {
	phone := catalog.NewPhone(r.Name, r.Link, r.Price, catalog.DescriptionFromMap(r.Description))
	phone.ViewCount = r.ViewCount
	if r.ImgURL != "" {
		phone.SetImageURL(r.ImgURL)
	}
	return phone
}
