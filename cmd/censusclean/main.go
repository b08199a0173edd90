package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderjulianmartinez/censusclean/internal/config"
	"github.com/alexanderjulianmartinez/censusclean/internal/failure"
	"github.com/alexanderjulianmartinez/censusclean/internal/pipeline"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "censusclean error: %v\n", err)
		os.Exit(failure.ExitCode(err))
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 2 {
		printUsage(stdout)
		return nil
	}

	switch args[1] {
	case "clean":
		return runClean(args[2:], stdout, stderr)
	case "detect":
		return runDetect(args[2:], stdout, stderr)
	case "help", "--help", "-h":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

type commonFlags struct {
	configPath *string
	input      *string
	verbose    *bool
	logFormat  *string
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", "", "Path to config.yaml"),
		input:      fs.String("input", "", "Input data file (overrides config)"),
		verbose:    fs.Bool("verbose", false, "Enable debug logging"),
		logFormat:  fs.String("log-format", "text", "Log format: text or json"),
	}
}

func (c commonFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if *c.configPath != "" {
		loaded, err := config.LoadConfig(*c.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *c.input != "" {
		cfg.Input.Path = *c.input
	}
	return cfg, nil
}

func (c commonFlags) logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if *c.verbose {
		opts.Level = slog.LevelDebug
	}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if *c.logFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

func runClean(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	fs.SetOutput(stderr)
	common := registerCommon(fs)
	output := fs.String("output", "", "Output file (overrides config)")
	format := fs.String("format", "", "Output format: csv or xlsx (overrides config)")
	top := fs.Int("top", 0, "Values shown per column in the report (overrides config)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *top > 0 {
		cfg.Report.TopN = *top
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := common.logger(stderr)
	slog.SetDefault(logger)
	logger.Info("Starting data cleaning process...")

	sinks, closeSinks, err := pipeline.BuildSinks(cfg)
	if err != nil {
		return err
	}
	defer closeSinks()

	summary, err := pipeline.New(cfg, sinks, stdout, logger).Run(context.Background())
	if err != nil {
		logger.Error("Error during data cleaning",
			slog.String("run_id", summary.RunID),
			slog.String("kind", failure.Kind(err)),
			slog.Any("error", err))
		return err
	}

	logger.Info("Data cleaning finished",
		slog.String("run_id", summary.RunID),
		slog.String("status", summary.Status),
		slog.Int("rows", summary.Rows),
		slog.Duration("duration", summary.Duration))
	return nil
}

func runDetect(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	common := registerCommon(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}

	logger := common.logger(stderr)
	_, err = pipeline.New(cfg, nil, stdout, logger).Detect()
	return err
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `censusclean - census dataset cleaning tool

Usage:
  censusclean clean  [--config <path>] [--input <path>] [--output <path>] [--format csv|xlsx] [--top N]
  censusclean detect [--config <path>] [--input <path>]

Commands:
  clean     Impute missing values with each column's mode and write the result
  detect    List columns that contain missing values
  help      Show this help message

Exit status:
  0 success, 1 other error, 2 I/O error, 3 schema error, 4 imputation impossible
`)
}
