// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Config holds every tunable of a markovctl run.
type Config struct {
	MatrixPath      string  `json:"matrix_path"`
	Steps           int     `json:"steps"`
	ReportPath      string  `json:"report_path"`
	PlotPath        string  `json:"plot_path"`
	LogLevel        string  `json:"log_level"`
	ColumnTolerance float64 `json:"column_tolerance"`
}

// DefaultConfig analyses the tetrahedron walk for ten steps and writes nothing.
func DefaultConfig() *Config {
	return &Config{
		MatrixPath:      "",
		Steps:           10,
		ReportPath:      "",
		PlotPath:        "",
		LogLevel:        "info",
		ColumnTolerance: 0,
	}
}

// LoadConfig reads a JSON config on top of the defaults. A missing file is
// created with the defaults and the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			var data []byte
			if data, err = json.MarshalIndent(config, "", "  "); err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				return nil, fmt.Errorf("failed to write default config file: %w", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, config.Validate()
}

// Validate rejects values the analysis cannot use.
func (c *Config) Validate() error {
	if c.Steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", c.Steps)
	}
	if c.ColumnTolerance < 0 {
		return fmt.Errorf("column_tolerance must be >= 0, got %g", c.ColumnTolerance)
	}

	return nil
}

// parseConfig resolves the run configuration: defaults, then the -config
// file, then any flag given explicitly on the command line.
func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("markovctl", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "path to a JSON config file (created with defaults if missing)")
		matrixPath = fs.String("matrix", "", "path to a JSON [][]float64 transition matrix (default: tetrahedron walk)")
		steps      = fs.Int("steps", 10, "number of steps to evolve and plot")
		reportPath = fs.String("report", "", "write a JSON report to this path")
		plotPath   = fs.String("plot", "", "write a PNG of the tetrahedron return probability to this path")
		level      = fs.String("log-level", "info", "debug, info, warn or error")
		colTol     = fs.Float64("column-tolerance", 0, "allowed deviation of column sums from 1")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = LoadConfig(*configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "matrix":
			config.MatrixPath = *matrixPath
		case "steps":
			config.Steps = *steps
		case "report":
			config.ReportPath = *reportPath
		case "plot":
			config.PlotPath = *plotPath
		case "log-level":
			config.LogLevel = *level
		case "column-tolerance":
			config.ColumnTolerance = *colTol
		}
	})

	return config, config.Validate()
}

// logLevel maps the configured name onto a slog level; unknown names mean info.
func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
