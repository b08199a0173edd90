package pipeline

import (
	"errors"

	"github.com/alexanderjulianmartinez/censusclean/internal/config"
	"github.com/alexanderjulianmartinez/censusclean/internal/sink"
	"github.com/alexanderjulianmartinez/censusclean/internal/sink/kafka"
	"github.com/alexanderjulianmartinez/censusclean/internal/sink/mysql"
)

// BuildSinks returns the file sink for the configured output format
// followed by any enabled optional sinks. The returned close function
// releases their connections.
func BuildSinks(cfg *config.Config) ([]sink.Sink, func() error, error) {
	var (
		sinks   []sink.Sink
		closers []func() error
	)
	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}

	switch cfg.Output.Format {
	case config.FormatXLSX:
		sinks = append(sinks, &sink.XLSXFile{Path: cfg.Output.Path, Sheet: cfg.Output.Sheet})
	default:
		sinks = append(sinks, &sink.CSVFile{Path: cfg.Output.Path})
	}

	if m := cfg.Sinks.MySQL; m.Enabled {
		s, err := mysql.New(m.DSN, m.Table, m.BatchSize)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, s)
		closers = append(closers, s.Close)
	}

	if k := cfg.Sinks.Kafka; k.Enabled {
		p, err := kafka.New(k.Brokers, k.Topic)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, p)
		closers = append(closers, p.Close)
	}

	return sinks, closeAll, nil
}
