// Package mysql stores cleaned rows in a MySQL table, one batch of
// multi-row INSERTs per run inside a single transaction.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/alexanderjulianmartinez/censusclean/internal/sink"
	"github.com/alexanderjulianmartinez/censusclean/internal/table"
)

const defaultBatchSize = 500

type Sink struct {
	db        *sql.DB
	table     string
	batchSize int
	timeout   time.Duration
}

func New(dsn, tableName string, batchSize int) (*Sink, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql ping failed: %w", err)
	}

	return NewWithDB(db, tableName, batchSize), nil
}

func NewWithDB(db *sql.DB, tableName string, batchSize int) *Sink {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Sink{
		db:        db,
		table:     tableName,
		batchSize: batchSize,
		timeout:   30 * time.Second,
	}
}

func (s *Sink) Name() string { return "mysql" }

func (s *Sink) Close() error { return s.db.Close() }

func (s *Sink) Write(ctx context.Context, out sink.Output) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	schema := out.Table.Schema()
	if _, err := s.db.ExecContext(ctx, CreateTableStatement(s.table, schema)); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	records := out.Table.Records("")
	for start := 0; start < len(records); start += s.batchSize {
		end := min(start+s.batchSize, len(records))
		query := InsertStatement(s.table, schema, end-start)
		args := make([]any, 0, (end-start)*(schema.Len()+1))
		for _, rec := range records[start:end] {
			args = append(args, RowArgs(out.Summary.RunID, schema, rec)...)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start+1, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	slog.Info("Cleaned dataset stored in MySQL",
		slog.String("table", s.table),
		slog.Int("rows", len(records)),
		slog.String("run_id", out.Summary.RunID))
	return nil
}

// CreateTableStatement returns DDL for a table holding rows of schema,
// tagged with the run that produced them.
func CreateTableStatement(tableName string, schema table.Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS `%s` (\n", tableName)
	b.WriteString("  `id` BIGINT AUTO_INCREMENT PRIMARY KEY,\n")
	b.WriteString("  `run_id` CHAR(36) NOT NULL")
	for i := 0; i < schema.Len(); i++ {
		f := schema.Field(i)
		colType := "VARCHAR(255)"
		if f.Kind == table.Numeric {
			colType = "DOUBLE"
		}
		fmt.Fprintf(&b, ",\n  `%s` %s NULL", f.Name, colType)
	}
	b.WriteString(",\n  KEY `idx_run_id` (`run_id`)\n)")
	return b.String()
}

func InsertStatement(tableName string, schema table.Schema, rows int) string {
	cols := make([]string, 0, schema.Len()+1)
	cols = append(cols, "`run_id`")
	for _, name := range schema.Names() {
		cols = append(cols, "`"+name+"`")
	}
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"

	values := make([]string, rows)
	for i := range values {
		values[i] = placeholder
	}
	return fmt.Sprintf("INSERT INTO `%s` (%s) VALUES %s", tableName, strings.Join(cols, ", "), strings.Join(values, ", "))
}

// RowArgs converts one record into statement arguments. Empty cells are
// stored as NULL.
func RowArgs(runID string, schema table.Schema, rec []string) []any {
	args := make([]any, 0, len(rec)+1)
	args = append(args, runID)
	for i, v := range rec {
		if v == "" && schema.Field(i).Kind == table.Numeric {
			args = append(args, nil)
			continue
		}
		args = append(args, v)
	}
	return args
}
