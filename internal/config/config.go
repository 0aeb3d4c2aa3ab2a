// Package config loads the chaincalc command's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/gophersatwork/chaincalc"
)

// ErrInvalidConfig is returned when a config file parses but holds
// values the command can't use.
var ErrInvalidConfig = errors.New("invalid config")

// Output formats for the final value.
const (
	OutputPlain = "plain"
	OutputJSON  = "json"
)

// Config is the on-disk configuration.
type Config struct {
	// Initial is the starting register value. nil means "use the default".
	Initial      *float64 `yaml:"initial"`
	HistoryLimit int      `yaml:"historyLimit"`
	LogLevel     string   `yaml:"logLevel"`
	Output       string   `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Output:   OutputPlain,
	}
}

// Load reads and validates the config at path. Keys missing from the file
// keep their Default values. An empty path returns Default.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: historyLimit must be >= 0, got %d", ErrInvalidConfig, c.HistoryLimit))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Output != OutputPlain && c.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputPlain, OutputJSON, c.Output))
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: logLevel %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// CalculatorOptions translates the config into chaincalc options.
func (c Config) CalculatorOptions(logger *slog.Logger) []chaincalc.Option {
	options := []chaincalc.Option{
		chaincalc.WithHistoryLimit(c.HistoryLimit),
		chaincalc.WithLogger(logger),
	}
	if c.Initial != nil {
		options = append(options, chaincalc.WithValue(*c.Initial))
	}
	return options
}
