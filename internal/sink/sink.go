// Package sink delivers a cleaned table and its report to their
// destinations.
package sink

import (
	"context"

	"github.com/alexanderjulianmartinez/censusclean/internal/report"
	"github.com/alexanderjulianmartinez/censusclean/internal/table"
	"github.com/alexanderjulianmartinez/censusclean/pkg/types"
)

// Output is everything a sink may need from a finished run.
type Output struct {
	Summary types.RunSummary
	Table   *table.Table
	Report  *report.Report
}

type Sink interface {
	Name() string
	Write(ctx context.Context, out Output) error
}
