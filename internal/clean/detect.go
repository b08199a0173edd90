// Package clean finds missing values in a table and fills them with each
// column's mode.
package clean

import "github.com/alexanderjulianmartinez/censusclean/internal/table"

// MissingColumns returns, in schema order, the columns of t that hold at
// least one missing marker. It is recomputed on every call.
func MissingColumns(t *table.Table) []string {
	var cols []string
	for _, name := range t.Columns() {
		if t.CountMissing(name) > 0 {
			cols = append(cols, name)
		}
	}
	return cols
}

// MissingCounts returns the number of missing markers per column, for
// every column that has at least one.
func MissingCounts(t *table.Table) map[string]int {
	counts := map[string]int{}
	for _, name := range t.Columns() {
		if n := t.CountMissing(name); n > 0 {
			counts[name] = n
		}
	}
	return counts
}
