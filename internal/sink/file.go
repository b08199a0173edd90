package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderjulianmartinez/censusclean/internal/failure"
	"github.com/alexanderjulianmartinez/censusclean/internal/table"
)

// CSVFile writes the cleaned table as comma-separated text with a header
// row of column names.
type CSVFile struct {
	Path string
}

func (f *CSVFile) Name() string { return "csv" }

func (f *CSVFile) Write(_ context.Context, out Output) error {
	if err := ensureDir(f.Path); err != nil {
		return err
	}

	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("create output: %w", failure.IO(err))
	}

	if err := WriteCSV(file, out.Table); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", f.Path, failure.IO(err))
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.Path, failure.IO(err))
	}

	slog.Info("Cleaned dataset saved", slog.String("path", f.Path), slog.Int("rows", out.Table.Len()))
	return nil
}

// WriteCSV writes header and records of t to w.
func WriteCSV(w io.Writer, t *table.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, record := range t.Records("") {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// XLSXFile writes the cleaned table to a single worksheet. Numeric cells
// are stored as numbers.
type XLSXFile struct {
	Path  string
	Sheet string
}

func (f *XLSXFile) Name() string { return "xlsx" }

func (f *XLSXFile) Write(_ context.Context, out Output) error {
	if err := ensureDir(f.Path); err != nil {
		return err
	}
	sheet := f.Sheet
	if sheet == "" {
		sheet = "cleaned"
	}

	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName(book.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	sw, err := book.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := make([]any, 0, out.Table.Schema().Len())
	for _, name := range out.Table.Columns() {
		header = append(header, name)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	names := out.Table.Columns()
	for r := 0; r < out.Table.Len(); r++ {
		row := make([]any, len(names))
		for c, name := range names {
			v, _ := out.Table.Cell(r, name)
			switch {
			case v.IsMissing():
				row[c] = ""
			case v.IsNumeric():
				row[c] = v.Float()
			default:
				row[c] = v.String()
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	if err := book.SaveAs(f.Path); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, failure.IO(err))
	}
	slog.Info("Cleaned dataset saved", slog.String("path", f.Path), slog.String("sheet", sheet), slog.Int("rows", out.Table.Len()))
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", failure.IO(err))
	}
	return nil
}
