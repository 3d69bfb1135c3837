package view

import "fmt"

// Entry is one attribute of a Table: an identity, the mapping view that
// assigns each value to a row of the table's index domain, and the data
// view holding the values themselves.
type Entry struct {
	// Identity names the attribute.
	Identity Identity

	// Mapping holds the index-domain rows the data applies to. It must
	// be an unsigned-integer scalar view. A zero-stride broadcast
	// mapping is legal and assigns every value to one row.
	Mapping View

	// Data holds one value per mapping element.
	Data View

	// Ordered marks the mapping as monotonically non-decreasing, letting
	// consumers binary-search it. The flag is trusted, not verified.
	Ordered bool
}

// Table is an ordered bag of attribute entries sharing one index domain.
// Entry order is insertion order and is report-significant. The same
// identity may occur more than once; duplicates carry independent data.
// The index domain size is owned by the table, independent of any single
// entry's count.
type Table struct {
	rows    int
	entries []Entry
}

// NewTable returns an empty table over an index domain of rows entries.
func NewTable(rows int) *Table {
	if rows < 0 {
		rows = 0
	}
	return &Table{rows: rows}
}

// Rows returns the size of the table's index domain.
func (t *Table) Rows() int {
	return t.rows
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in insertion order. The slice is shared
// with the table, not copied.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Add appends an entry. The mapping and data counts must match, the
// mapping must be an unsigned-integer scalar view, and only the mapping
// side may broadcast.
func (t *Table) Add(e Entry) error {
	if e.Mapping.Count() != e.Data.Count() {
		return fmt.Errorf("failed to add %s: mapping count %d does not match data count %d",
			e.Identity, e.Mapping.Count(), e.Data.Count())
	}
	mt := e.Mapping.Type()
	if mt.Shape() != ShapeScalar || !mt.ScalarType().IsUnsigned() {
		return fmt.Errorf("failed to add %s: mapping must be an unsigned scalar view, got %s",
			e.Identity, mt)
	}
	if e.Data.Broadcast() {
		return fmt.Errorf("failed to add %s: data views must not broadcast", e.Identity)
	}
	t.entries = append(t.entries, e)
	return nil
}

// Duplicate returns entry i's ordinal among entries sharing its
// identity, zero for the first occurrence.
func (t *Table) Duplicate(i int) int {
	n := 0
	for j := 0; j < i && j < len(t.entries); j++ {
		if t.entries[j].Identity == t.entries[i].Identity {
			n++
		}
	}
	return n
}
