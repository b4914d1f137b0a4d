// Package storage defines the catalog persistence interface and the JSON
// wire form shared by its backends.
//
// Two backends implement PhoneRepository:
//   - storage/jsonfile: a single JSON array file, matching the export
//     format of the upstream catalog tooling. Suited to small catalogs and
//     easy hand-editing.
//   - storage/badger: an embedded BadgerDB key-value store with a name
//     index, suited to larger catalogs and concurrent access.
//
// Both backends hand out defensive copies; callers never share phone
// instances with the store.
package storage
