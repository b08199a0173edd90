package clean

import (
	"fmt"
	"log/slog"

	"github.com/alexanderjulianmartinez/censusclean/internal/failure"
	"github.com/alexanderjulianmartinez/censusclean/internal/table"
)

// ImputationError is returned when a flagged column has no observed
// value to take a mode from.
type ImputationError struct {
	Column string
}

func (e *ImputationError) Error() string {
	return fmt.Sprintf("column %s has no non-missing values to compute a mode from", e.Column)
}

func (e *ImputationError) Unwrap() error { return failure.ErrImputation }

// Imputation records what was done to one column.
type Imputation struct {
	Column   string
	Replaced int
	Mode     table.Value
}

type Result struct {
	Table       *table.Table
	Imputations []Imputation
}

type Imputer struct {
	logger *slog.Logger
}

func NewImputer(logger *slog.Logger) *Imputer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Imputer{logger: logger}
}

// Impute returns a copy of t where every missing marker in a flagged
// column is replaced by the column's mode. t is never modified. If any
// flagged column has no mode, nothing is returned.
func (im *Imputer) Impute(t *table.Table) (*Result, error) {
	cleaned := t.Clone()
	res := &Result{Table: cleaned}

	for _, name := range MissingColumns(t) {
		col, _ := t.Column(name)
		mode, ok := Mode(col)
		if !ok {
			return nil, &ImputationError{Column: name}
		}

		replaced := 0
		for row, v := range col {
			if !v.IsMissing() {
				continue
			}
			if err := cleaned.Set(row, name, mode); err != nil {
				return nil, fmt.Errorf("impute %s: %w", name, err)
			}
			replaced++
		}

		im.logger.Info("Replaced missing values with mode",
			slog.String("column", name),
			slog.Int("replaced", replaced),
			slog.String("mode", mode.String()))
		res.Imputations = append(res.Imputations, Imputation{Column: name, Replaced: replaced, Mode: mode})
	}
	return res, nil
}
