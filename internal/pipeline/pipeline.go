// Package pipeline runs the load, detect, impute and report stages in
// order and hands the result to the configured sinks.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderjulianmartinez/censusclean/internal/census"
	"github.com/alexanderjulianmartinez/censusclean/internal/clean"
	"github.com/alexanderjulianmartinez/censusclean/internal/config"
	"github.com/alexanderjulianmartinez/censusclean/internal/report"
	"github.com/alexanderjulianmartinez/censusclean/internal/sink"
	"github.com/alexanderjulianmartinez/censusclean/internal/source"
	"github.com/alexanderjulianmartinez/censusclean/internal/table"
	"github.com/alexanderjulianmartinez/censusclean/pkg/types"
)

type Pipeline struct {
	cfg    *config.Config
	sinks  []sink.Sink
	out    io.Writer
	logger *slog.Logger
	now    func() time.Time
}

func New(cfg *config.Config, sinks []sink.Sink, out io.Writer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, sinks: sinks, out: out, logger: logger, now: time.Now}
}

func (p *Pipeline) load() (*table.Table, error) {
	loader := source.NewLoader(census.Schema(), source.Options{
		Delimiter: p.cfg.DelimiterRune(),
		Sentinel:  p.cfg.Input.Sentinel,
	}, p.logger)

	p.logger.Info("Loading data...", slog.String("path", p.cfg.Input.Path))
	return loader.LoadFile(p.cfg.Input.Path)
}

// Detect loads the input and reports missing values without cleaning.
func (p *Pipeline) Detect() (map[string]int, error) {
	t, err := p.load()
	if err != nil {
		return nil, err
	}
	counts := clean.MissingCounts(t)
	for _, name := range clean.MissingColumns(t) {
		fmt.Fprintf(p.out, "%s\t%d\n", name, counts[name])
	}
	if len(counts) == 0 {
		fmt.Fprintln(p.out, "No missing values found.")
	}
	return counts, nil
}

// Run executes the full cleaning run. Nothing is written to any sink
// unless every stage succeeds.
func (p *Pipeline) Run(ctx context.Context) (*types.RunSummary, error) {
	summary := &types.RunSummary{
		RunID:     uuid.New().String(),
		Input:     p.cfg.Input.Path,
		Output:    p.cfg.Output.Path,
		StartedAt: p.now(),
		Status:    types.StatusFailed,
	}

	original, err := p.load()
	if err != nil {
		return summary, err
	}
	summary.Rows = original.Len()

	missing := clean.MissingColumns(original)
	p.logger.Info("Detected columns with missing values", slog.Any("columns", missing))

	p.logger.Info("Cleaning data...")
	res, err := clean.NewImputer(p.logger).Impute(original)
	if err != nil {
		return summary, fmt.Errorf("clean: %w", err)
	}

	summary.ImputedColumns = map[string]int{}
	summary.ImputedValues = map[string]string{}
	for _, imp := range res.Imputations {
		summary.ImputedColumns[imp.Column] = imp.Replaced
		summary.ImputedValues[imp.Column] = imp.Mode.String()
	}

	rep := report.Build(original, res.Table, p.cfg.Report.TopN)
	if err := report.Render(p.out, rep, p.cfg.Language()); err != nil {
		return summary, err
	}
	for _, r := range rep.Remaining {
		summary.RemainingColumns = append(summary.RemainingColumns, r.Column)
	}
	summary.Status = types.StatusClean
	if !rep.Clean() {
		summary.Status = types.StatusResidual
	}
	summary.Duration = p.now().Sub(summary.StartedAt)

	out := sink.Output{Summary: *summary, Table: res.Table, Report: rep}
	for _, s := range p.sinks {
		if err := s.Write(ctx, out); err != nil {
			return summary, fmt.Errorf("%s sink: %w", s.Name(), err)
		}
	}
	return summary, nil
}
