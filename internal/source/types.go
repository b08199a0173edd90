package source

import (
	"fmt"

	"github.com/alexanderjulianmartinez/censusclean/internal/failure"
)

// DefaultSentinel is the raw token that marks an absent value.
const DefaultSentinel = "?"

// Options controls how delimited text is turned into a table.
type Options struct {
	Delimiter rune
	Sentinel  string
}

func DefaultOptions() Options {
	return Options{Delimiter: ',', Sentinel: DefaultSentinel}
}

// SchemaError reports input that does not fit the expected schema. Row is
// 1-based; Column is empty when the whole row is at fault.
type SchemaError struct {
	Row    int
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Column, e.Reason)
}

func (e *SchemaError) Unwrap() error { return failure.ErrSchema }
