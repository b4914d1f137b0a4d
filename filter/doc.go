// Package filter provides composable selection criteria over the phone
// catalog.
//
// Each criterion implements the Filter interface; Composite combines
// criteria under AND (ModeAll) or OR (ModeAny) semantics. Filters never
// mutate input phones, and a phone with missing or malformed attribute data
// fails the criterion rather than producing an error.
//
// Vietnamese text matching is diacritic-insensitive where the underlying
// data mixes accented and unaccented spellings; see Normalize.
package filter
