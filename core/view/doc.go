// Package view provides the type-erased attribute model the inspector is
// built on: strided views over raw bytes and ordered attribute tables
// keyed by builtin-or-custom identities.
//
// A View describes a run of N elements of one declared element type
// (scalar, vector, matrix, or fixed-size array of scalars) over a byte
// buffer, together with a byte stride and an ownership tag. Nothing is
// interpreted up front; every typed read is kind- and bounds-checked at
// the access site and fails with ErrTypeMismatch or ErrOutOfBounds.
//
// A Table is an ordered bag of (identity, mapping, data) entries sharing
// one index domain. The mapping view assigns each data value to a row of
// that domain; rows may be hit multiple times, by multiple entries, or
// not at all. The domain size itself is supplied out of band, so a table
// with no entries still spans a meaningful range.
//
// # Identities
//
// An Identity is either one of the closed builtin Field values or a
// Custom(n) id from the open importer-specific space. Custom ids resolve
// to display names through a NameResolver; an empty answer means the
// field is unnamed and renders as its numeric placeholder.
//
// # Ownership
//
// Views either own their packed storage (the Pack and Broadcast
// constructors) or borrow caller memory (Borrow). Ownership governs
// mutation and release policy only; reads behave identically for all
// three tags.
//
// # Usage Example
//
//	mapping, _ := view.PackUints(view.Scalar(view.Uint32), 2, 0, 2, 1)
//	data, _ := view.PackUints(view.Scalar(view.Uint32), 1, 1, 0, 2)
//
//	table := view.NewTable(8)
//	err := table.Add(view.Entry{
//	    Identity: view.Builtin(view.FieldMesh),
//	    Mapping:  mapping,
//	    Data:     data,
//	})
package view
