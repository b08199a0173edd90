package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderjulianmartinez/censusclean/internal/config"
	"github.com/alexanderjulianmartinez/censusclean/internal/failure"
	"github.com/alexanderjulianmartinez/censusclean/internal/sink"
	"github.com/alexanderjulianmartinez/censusclean/pkg/types"
)

const adult = `25, Private, 226802, 11th, 7, Never-married, ?, Own-child, Black, Male, 0, 0, 40, United-States, <=50K
38, ?, 89814, HS-grad, 9, Married-civ-spouse, Clerical, Husband, White, Male, 0, 0, 50, United-States, >50K
38, Private, 89814, HS-grad, 9, Married-civ-spouse, Clerical, Husband, White, Male, 0, 0, 50, United-States, >50K
`

type recordingSink struct {
	got []sink.Output
	err error
}

func (r *recordingSink) Name() string { return "recording" }

func (r *recordingSink) Write(_ context.Context, out sink.Output) error {
	r.got = append(r.got, out)
	return r.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setup(t *testing.T, data string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Input.Path = filepath.Join(dir, "adult.data")
	cfg.Output.Path = filepath.Join(dir, "out", "cleaned.csv")
	require.NoError(t, os.WriteFile(cfg.Input.Path, []byte(data), 0o644))
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := setup(t, adult)
	sinks, closeSinks, err := BuildSinks(cfg)
	require.NoError(t, err)
	defer closeSinks()

	rec := &recordingSink{}
	var out bytes.Buffer
	summary, err := New(cfg, append(sinks, rec), &out, quietLogger()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, types.StatusClean, summary.Status)
	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, map[string]int{"workclass": 1, "occupation": 1}, summary.ImputedColumns)
	assert.Equal(t, map[string]string{"workclass": "Private", "occupation": "Clerical"}, summary.ImputedValues)
	assert.Len(t, summary.RunID, 36)
	assert.Contains(t, out.String(), "No missing values remain in the dataset.")

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "age,workclass,fnlwgt"))
	assert.Equal(t, "38,Private,89814,HS-grad,9,Married-civ-spouse,Clerical,Husband,White,Male,0,0,50,United-States,>50K", lines[2])
	assert.Equal(t, "25,Private,226802,11th,7,Never-married,Clerical,Own-child,Black,Male,0,0,40,United-States,<=50K", lines[1])

	require.Len(t, rec.got, 1)
	assert.Equal(t, summary.RunID, rec.got[0].Summary.RunID)
}

func TestRun_AllMissingColumnWritesNothing(t *testing.T) {
	data := `25, Private, 1, 11th, 7, Never-married, ?, Own-child, Black, Male, 0, 0, 40, Cuba, <=50K
30, Private, 1, 11th, 7, Never-married, ?, Own-child, Black, Male, 0, 0, 40, Cuba, <=50K
`
	cfg := setup(t, data)
	rec := &recordingSink{}

	summary, err := New(cfg, []sink.Sink{rec, &sink.CSVFile{Path: cfg.Output.Path}}, io.Discard, quietLogger()).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, failure.ExitImputation, failure.ExitCode(err))
	assert.Equal(t, types.StatusFailed, summary.Status)
	assert.Empty(t, rec.got)

	_, statErr := os.Stat(cfg.Output.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MissingInput(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Path = filepath.Join(t.TempDir(), "absent.data")

	_, err := New(cfg, nil, io.Discard, quietLogger()).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, failure.ExitIO, failure.ExitCode(err))
}

func TestRun_SchemaMismatch(t *testing.T) {
	cfg := setup(t, "25, Private, 1\n")

	_, err := New(cfg, nil, io.Discard, quietLogger()).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, failure.ExitSchema, failure.ExitCode(err))
}

func TestRun_SinkError(t *testing.T) {
	cfg := setup(t, adult)
	rec := &recordingSink{err: errors.New("unavailable")}

	_, err := New(cfg, []sink.Sink{rec}, io.Discard, quietLogger()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording sink")
}

func TestDetect(t *testing.T) {
	cfg := setup(t, adult)
	var out bytes.Buffer

	counts, err := New(cfg, nil, &out, quietLogger()).Detect()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"workclass": 1, "occupation": 1}, counts)
	assert.Equal(t, "workclass\t1\noccupation\t1\n", out.String())
}

func TestBuildSinks_XLSX(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = config.FormatXLSX

	sinks, closeSinks, err := BuildSinks(cfg)
	require.NoError(t, err)
	require.Len(t, sinks, 1)
	assert.Equal(t, "xlsx", sinks[0].Name())
	assert.NoError(t, closeSinks())
}

func TestBuildSinks_Kafka(t *testing.T) {
	cfg := config.Default()
	cfg.Sinks.Kafka = config.KafkaConfig{Enabled: true, Brokers: []string{"localhost:9092"}, Topic: "census"}

	sinks, closeSinks, err := BuildSinks(cfg)
	require.NoError(t, err)
	require.Len(t, sinks, 2)
	assert.Equal(t, "kafka", sinks[1].Name())
	assert.NoError(t, closeSinks())
}
