// Package report summarises a cleaning run by comparing the original
// table with its cleaned copy.
package report

import (
	"github.com/alexanderjulianmartinez/censusclean/internal/clean"
	"github.com/alexanderjulianmartinez/censusclean/internal/table"
)

// DefaultTopN matches the number of values shown per column when no
// limit is configured.
const DefaultTopN = 5

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Distribution is the observed value breakdown of a column that had
// missing values before cleaning.
type Distribution struct {
	Column   string       `json:"column"`
	Missing  int          `json:"missing"`
	Distinct int          `json:"distinct"`
	Top      []ValueCount `json:"top"`
}

type Residual struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
}

type Issue struct {
	Column   string `json:"column"`
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type Report struct {
	TotalRows     int            `json:"total_rows"`
	Distributions []Distribution `json:"distributions"`
	Remaining     []Residual     `json:"remaining"`
	Issues        []Issue        `json:"issues"`
}

// Clean reports whether no missing values are left after cleaning.
func (r *Report) Clean() bool { return len(r.Remaining) == 0 }

// Build derives a report from the original and cleaned tables. Neither
// table is modified. topN <= 0 selects DefaultTopN.
func Build(original, cleaned *table.Table, topN int) *Report {
	if topN <= 0 {
		topN = DefaultTopN
	}
	r := &Report{TotalRows: original.Len()}

	for _, name := range clean.MissingColumns(original) {
		col, _ := original.Column(name)
		counts := clean.Frequencies(col)

		d := Distribution{
			Column:   name,
			Missing:  original.CountMissing(name),
			Distinct: len(counts),
			Top:      make([]ValueCount, 0, min(topN, len(counts))),
		}
		for _, c := range counts[:min(topN, len(counts))] {
			d.Top = append(d.Top, ValueCount{Value: c.Value.String(), Count: c.N})
		}
		r.Distributions = append(r.Distributions, d)

		switch {
		case len(counts) == 0:
			r.addIssue(name, KindNoObservedValues)
		case cleaned.CountMissing(name) == 0:
			r.addIssue(name, KindImputed)
		}
	}

	for _, name := range clean.MissingColumns(cleaned) {
		r.Remaining = append(r.Remaining, Residual{Column: name, Missing: cleaned.CountMissing(name)})
		r.addIssue(name, KindResidualMissing)
	}
	return r
}

func (r *Report) addIssue(column, kind string) {
	r.Issues = append(r.Issues, Issue{
		Column:   column,
		Kind:     kind,
		Severity: SeverityForKind(kind),
		Message:  MessageForKind(kind),
	})
}
