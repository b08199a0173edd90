package clean

import (
	"cmp"
	"slices"

	"github.com/alexanderjulianmartinez/censusclean/internal/table"
)

// Count is one entry of a frequency table.
type Count struct {
	Value table.Value
	N     int
}

// Frequencies counts the non-missing values of col, most frequent first.
// Equal counts are ordered by ascending value so the result is stable.
func Frequencies(col []table.Value) []Count {
	idx := map[table.Value]int{}
	var counts []Count
	for _, v := range col {
		if v.IsMissing() {
			continue
		}
		if i, ok := idx[v]; ok {
			counts[i].N++
			continue
		}
		idx[v] = len(counts)
		counts = append(counts, Count{Value: v, N: 1})
	}

	slices.SortFunc(counts, func(a, b Count) int {
		if c := cmp.Compare(b.N, a.N); c != 0 {
			return c
		}
		switch {
		case a.Value.Less(b.Value):
			return -1
		case b.Value.Less(a.Value):
			return 1
		}
		return 0
	})
	return counts
}

// Mode returns the most frequent non-missing value in col. Ties go to the
// smallest value: numeric order for numbers, byte order for text. ok is
// false when col has no non-missing values.
func Mode(col []table.Value) (table.Value, bool) {
	counts := Frequencies(col)
	if len(counts) == 0 {
		return table.Value{}, false
	}
	return counts[0].Value, true
}
