package failure

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here.data")

	tests := []struct {
		name string
		err  error
		want int
		kind string
	}{
		{name: "nil", err: nil, want: ExitOK, kind: "none"},
		{name: "wrapped io", err: fmt.Errorf("open input: %w", IO(errors.New("boom"))), want: ExitIO, kind: "io"},
		{name: "path error", err: statErr, want: ExitIO, kind: "io"},
		{name: "schema", err: fmt.Errorf("row 3: %w", ErrSchema), want: ExitSchema, kind: "schema"},
		{name: "imputation", err: fmt.Errorf("column x: %w", ErrImputation), want: ExitImputation, kind: "imputation"},
		{name: "other", err: errors.New("something else"), want: ExitGeneric, kind: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
			assert.Equal(t, tt.kind, Kind(tt.err))
		})
	}
}

func TestIO_KeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := IO(cause)

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "disk full", err.Error())
	assert.Nil(t, IO(nil))
}
