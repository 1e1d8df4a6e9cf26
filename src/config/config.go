package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings of the truth-table program. Every field
// has a default, so running without a config file prints exactly the classic
// report.
//
// Example file:
//
//	strict: true
//	true-symbol: "1"
//	false-symbol: "0"
//	show-summary: true
//	csv-file: table.csv
type Config struct {
	// reject malformed expressions instead of printing a best-effort result
	Strict bool `yaml:"strict"`

	TrueSymbol  string `yaml:"true-symbol"`
	FalseSymbol string `yaml:"false-symbol"`

	ShowEquivalences bool `yaml:"show-equivalences"`
	ShowSummary      bool `yaml:"show-summary"`

	// where to also write the truth table as CSV, if anywhere
	CSVFile string `yaml:"csv-file,omitempty"`

	ParallelThreshold int `yaml:"parallel-threshold"`
	Workers           int `yaml:"workers"`

	LogLevel string `yaml:"log-level"`

	// where the config was read from, and where Write puts it
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Strict:            false,
		TrueSymbol:        "T",
		FalseSymbol:       "F",
		ShowEquivalences:  true,
		ShowSummary:       false,
		ParallelThreshold: 16,
		Workers:           0,
		LogLevel:          "info",
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. Unknown keys
// are an error. If the file doesn't exist the returned error satisfies
// errors.Is(err, fs.ErrNotExist).
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// best effort, the relative path works just as well for reading
		absPath = path
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", absPath, err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}
	config.Path = absPath

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", absPath, err)
	}
	return config, nil
}

// LoadOrCreate is LoadConfig, except that a missing file is created with the
// default settings so there is something to edit.
func LoadOrCreate(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if !errors.Is(err, fs.ErrNotExist) {
		return config, err
	}

	config = Default()
	config.Path = path
	if absPath, err := filepath.Abs(path); err == nil {
		config.Path = absPath
	}
	if err := config.Write(); err != nil {
		return nil, fmt.Errorf("failed to create default config: %w", err)
	}
	slog.Info("created config file with default settings", "path", config.Path)

	return config, nil
}

// Write stores the config as YAML at c.Path.
func (c *Config) Write() error {
	if c.Path == "" {
		return errors.New("config has no path to write to")
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of files that already exist
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on config file %s: %w", c.Path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.TrueSymbol == "" || c.FalseSymbol == "" {
		return errors.New("true-symbol and false-symbol must not be empty")
	}
	if c.TrueSymbol == c.FalseSymbol {
		return fmt.Errorf("true-symbol and false-symbol must differ, both are '%s'", c.TrueSymbol)
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf("parallel-threshold must not be negative, got %d", c.ParallelThreshold)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel, e.g. "debug" or "WARN".
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log-level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}
