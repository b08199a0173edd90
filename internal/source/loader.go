// Package source reads delimited census text into a table.
package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/alexanderjulianmartinez/censusclean/internal/failure"
	"github.com/alexanderjulianmartinez/censusclean/internal/table"
)

type Loader struct {
	schema table.Schema
	opts   Options
	logger *slog.Logger
}

func NewLoader(schema table.Schema, opts Options, logger *slog.Logger) *Loader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.Sentinel == "" {
		opts.Sentinel = DefaultSentinel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{schema: schema, opts: opts, logger: logger}
}

// LoadFile opens path and parses it. The file is closed before returning.
func (l *Loader) LoadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", failure.IO(err))
	}
	defer f.Close()

	t, err := l.Load(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.Info("Successfully loaded data",
		slog.String("path", path),
		slog.Int("rows", t.Len()),
		slog.Int("columns", t.Schema().Len()))
	return t, nil
}

// Load parses headerless delimited text. Every field is trimmed, the
// sentinel becomes the missing marker and numeric fields are parsed.
func (l *Loader) Load(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.opts.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	t := table.New(l.schema)
	row := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &SchemaError{Row: parseErr.Line, Reason: parseErr.Err.Error()}
			}
			return nil, failure.IO(err)
		}
		row++

		values, err := l.parseRecord(row, rec)
		if err != nil {
			return nil, err
		}
		if err := t.AppendRow(values); err != nil {
			return nil, &SchemaError{Row: row, Reason: err.Error()}
		}
	}
	return t, nil
}

func (l *Loader) parseRecord(row int, rec []string) ([]table.Value, error) {
	if len(rec) != l.schema.Len() {
		return nil, &SchemaError{
			Row:    row,
			Reason: fmt.Sprintf("expected %d fields, got %d", l.schema.Len(), len(rec)),
		}
	}

	values := make([]table.Value, len(rec))
	for i, raw := range rec {
		field := l.schema.Field(i)
		s := strings.TrimSpace(raw)
		if s == l.opts.Sentinel {
			values[i] = table.Missing()
			continue
		}
		if field.Kind != table.Numeric {
			values[i] = table.Text(s)
			continue
		}
		if s == "" {
			return nil, &SchemaError{Row: row, Column: field.Name, Reason: "empty numeric field"}
		}
		f, err := cast.ToFloat64E(s)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &SchemaError{Row: row, Column: field.Name, Reason: fmt.Sprintf("%q is not a number", s)}
		}
		values[i] = table.Number(f)
	}
	return values, nil
}
