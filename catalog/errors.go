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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPhone indicates a Phone failed validation.
	ErrInvalidPhone = errors.New("invalid phone")

	// ErrEmptyLink indicates the Link field is empty.
	ErrEmptyLink = errors.New("link cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNegativePrice indicates a negative price value.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNegativeViewCount indicates a negative view count value.
	ErrNegativeViewCount = errors.New("view count cannot be negative")
)
