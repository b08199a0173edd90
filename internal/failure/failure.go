// Package failure classifies run errors into the categories the CLI
// reports through its exit status.
package failure

import (
	"errors"
	"io/fs"
)

var (
	ErrIO         = errors.New("i/o failure")
	ErrSchema     = errors.New("schema mismatch")
	ErrImputation = errors.New("imputation impossible")
)

const (
	ExitOK         = 0
	ExitGeneric    = 1
	ExitIO         = 2
	ExitSchema     = 3
	ExitImputation = 4
)

// IO wraps err so that errors.Is(err, ErrIO) holds while the original
// cause stays reachable.
func IO(err error) error {
	if err == nil {
		return nil
	}
	return &ioError{cause: err}
}

type ioError struct {
	cause error
}

func (e *ioError) Error() string { return e.cause.Error() }

func (e *ioError) Unwrap() []error { return []error{ErrIO, e.cause} }

// ExitCode maps an error returned by a run to a process exit status.
func ExitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrImputation):
		return ExitImputation
	case errors.Is(err, ErrSchema):
		return ExitSchema
	case errors.Is(err, ErrIO), errors.As(err, &pathErr):
		return ExitIO
	default:
		return ExitGeneric
	}
}

// Kind returns a short label for the error category, used in log output.
func Kind(err error) string {
	switch ExitCode(err) {
	case ExitOK:
		return "none"
	case ExitIO:
		return "io"
	case ExitSchema:
		return "schema"
	case ExitImputation:
		return "imputation"
	default:
		return "internal"
	}
}
