// Package table holds the in-memory, column-oriented representation of a
// delimited dataset.
package table

import (
	"fmt"
	"slices"
)

type Table struct {
	schema  Schema
	columns [][]Value
}

func New(schema Schema) *Table {
	return &Table{
		schema:  schema,
		columns: make([][]Value, schema.Len()),
	}
}

func (t *Table) Schema() Schema { return t.schema }

func (t *Table) Columns() []string { return t.schema.Names() }

func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0])
}

// AppendRow adds one row. The row must carry exactly one value per field.
func (t *Table) AppendRow(row []Value) error {
	if len(row) != t.schema.Len() {
		return fmt.Errorf("row has %d values, schema has %d fields", len(row), t.schema.Len())
	}
	for i, v := range row {
		t.columns[i] = append(t.columns[i], v)
	}
	return nil
}

// Column returns a copy of the named column's values.
func (t *Table) Column(name string) ([]Value, bool) {
	i, ok := t.schema.Index(name)
	if !ok {
		return nil, false
	}
	return slices.Clone(t.columns[i]), true
}

func (t *Table) Cell(row int, name string) (Value, bool) {
	i, ok := t.schema.Index(name)
	if !ok || row < 0 || row >= t.Len() {
		return Value{}, false
	}
	return t.columns[i][row], true
}

// Set replaces a single cell in place.
func (t *Table) Set(row int, name string, v Value) error {
	i, ok := t.schema.Index(name)
	if !ok {
		return fmt.Errorf("unknown column %q", name)
	}
	if row < 0 || row >= t.Len() {
		return fmt.Errorf("row %d out of range [0,%d)", row, t.Len())
	}
	t.columns[i][row] = v
	return nil
}

func (t *Table) CountMissing(name string) int {
	i, ok := t.schema.Index(name)
	if !ok {
		return 0
	}
	n := 0
	for _, v := range t.columns[i] {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy; mutating the copy never affects t.
func (t *Table) Clone() *Table {
	c := &Table{
		schema:  t.schema,
		columns: make([][]Value, len(t.columns)),
	}
	for i, col := range t.columns {
		c.columns[i] = slices.Clone(col)
	}
	return c
}

func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !slices.Equal(t.schema.Names(), o.schema.Names()) {
		return false
	}
	for i := range t.columns {
		if !slices.Equal(t.columns[i], o.columns[i]) {
			return false
		}
	}
	return true
}

// Records returns the table row by row as strings. Missing cells become
// the given placeholder.
func (t *Table) Records(missing string) [][]string {
	records := make([][]string, t.Len())
	for r := range records {
		rec := make([]string, len(t.columns))
		for c, col := range t.columns {
			if col[r].IsMissing() {
				rec[c] = missing
			} else {
				rec[c] = col[r].String()
			}
		}
		records[r] = rec
	}
	return records
}
