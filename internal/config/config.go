package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Report ReportConfig `yaml:"report"`
	Sinks  SinksConfig  `yaml:"sinks"`
}

type InputConfig struct {
	Path      string `yaml:"path" validate:"required"`
	Delimiter string `yaml:"delimiter" validate:"required"`
	Sentinel  string `yaml:"sentinel" validate:"required"`
}

type OutputConfig struct {
	Path   string `yaml:"path" validate:"required"`
	Format string `yaml:"format" validate:"oneof=csv xlsx"`
	Sheet  string `yaml:"sheet"`
}

type ReportConfig struct {
	TopN   int    `yaml:"topN" validate:"gte=1"`
	Locale string `yaml:"locale" validate:"required"`
}

type SinksConfig struct {
	MySQL MySQLConfig `yaml:"mysql"`
	Kafka KafkaConfig `yaml:"kafka"`
}

type MySQLConfig struct {
	Enabled   bool   `yaml:"enabled"`
	DSN       string `yaml:"dsn" validate:"required_if=Enabled true"`
	Table     string `yaml:"table" validate:"required_if=Enabled true"`
	BatchSize int    `yaml:"batchSize" validate:"gte=0"`
}

type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers" validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `yaml:"topic" validate:"required_if=Enabled true"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:      "data/adult.data",
			Delimiter: ",",
			Sentinel:  "?",
		},
		Output: OutputConfig{
			Path:   "data/cleaned_census_data.csv",
			Format: FormatCSV,
			Sheet:  "cleaned",
		},
		Report: ReportConfig{
			TopN:   5,
			Locale: "en",
		},
		Sinks: SinksConfig{
			MySQL: MySQLConfig{Table: "cleaned_census", BatchSize: 500},
		},
	}
}

// LoadConfig reads a YAML file on top of Default and validates the result.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return errors.New("input.delimiter must be a single character")
	}
	if c.Input.Sentinel == c.Input.Delimiter {
		return errors.New("input.sentinel must differ from input.delimiter")
	}
	if _, err := language.Parse(c.Report.Locale); err != nil {
		return fmt.Errorf("report.locale: %w", err)
	}
	if c.Sinks.MySQL.Enabled {
		if _, err := mysql.ParseDSN(c.Sinks.MySQL.DSN); err != nil {
			return fmt.Errorf("sinks.mysql.dsn: %w", err)
		}
		if !identifier.MatchString(c.Sinks.MySQL.Table) {
			return fmt.Errorf("sinks.mysql.table %q is not a valid identifier", c.Sinks.MySQL.Table)
		}
	}
	return nil
}

// DelimiterRune returns the input delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}

func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Report.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
