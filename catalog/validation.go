// Copyright 2025 Vietphone Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import "fmt"

// ValidatePhone validates a Phone according to domain rules.
//
// Validation rules:
//   - Link must not be empty (it is the identity key)
//   - Name must not be empty
//   - Price must not be negative (0 means unknown and is valid)
//   - ViewCount must not be negative
//
// NOT validated:
//   - Description (any attribute set, including an empty one, is valid)
//   - ImageURL (derivable from Link on demand)
func ValidatePhone(phone *Phone) error {
	if phone == nil {
		return fmt.Errorf("%w: phone is nil", ErrInvalidPhone)
	}

	if phone.Link == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPhone, ErrEmptyLink)
	}

	if phone.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPhone, ErrEmptyName)
	}

	if phone.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPhone, ErrNegativePrice)
	}

	if phone.ViewCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPhone, ErrNegativeViewCount)
	}

	return nil
}
