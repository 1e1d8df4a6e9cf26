package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/environment"
	"github.com/eriklarko/truth-table/src/tui"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setUpLogging(cfg)

	if err := tui.Run(tui.New(), cfg); err != nil {
		slog.Error("failed to print truth table", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := environment.ConfigPath()
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from $%s: %w", environment.ConfigPathVariable, err)
	}
	return cfg, nil
}

// logs go to stderr so that stdout only holds the report
func setUpLogging(cfg *config.Config) {
	// LoadConfig has already rejected invalid levels
	level, _ := cfg.SlogLevel()

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if environment.IsInteractive() {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	slog.SetDefault(slog.New(handler))
}
