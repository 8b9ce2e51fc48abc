// SPDX-License-Identifier: MIT

// Command markovctl analyses a discrete Markov chain: it validates the
// transition matrix, lists its stationary distributions, checks
// irreducibility, evolves a start distribution and optionally writes a JSON
// report and a plot of the tetrahedron return probability.
//
// Usage:
//
//	markovctl [-config file.json] [-matrix m.json] [-steps n] [-report out.json] [-plot out.png] [-log-level info]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvlalg/markov"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("markovctl failed", "error", err)
		os.Exit(1)
	}
}

// run executes one analysis; results go to stdout, logs to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	config, err := parseConfig(args)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel(config.LogLevel)}))
	logger.Debug("Configuration resolved", "matrix", config.MatrixPath, "steps", config.Steps)

	m, err := readMatrix(config.MatrixPath)
	if err != nil {
		return err
	}
	logger.Info("Matrix loaded", "rows", m.Rows(), "cols", m.Cols())

	var opts []markov.Option
	if config.ColumnTolerance > 0 {
		opts = append(opts, markov.WithColumnTolerance(config.ColumnTolerance))
	}
	report, err := buildReport(m, config.Steps, opts...)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if !report.Stochastic {
		logger.Warn("Matrix is not stochastic", "reason", report.StochasticError)
	}

	fmt.Fprintf(stdout, "states:      %d\n", report.States)
	fmt.Fprintf(stdout, "stochastic:  %t\n", report.Stochastic)
	fmt.Fprintf(stdout, "irreducible: %t\n", report.Irreducible)
	for k, pi := range report.Stationary {
		fmt.Fprintf(stdout, "stationary[%d]: %.6g\n", k, pi)
	}
	fmt.Fprintf(stdout, "adjacency:   %s\n", report.Adjacency)
	fmt.Fprintf(stdout, "after %d steps: %.6g\n", config.Steps, report.Evolution[len(report.Evolution)-1])

	if config.ReportPath != "" {
		if err = writeReport(config.ReportPath, report); err != nil {
			return err
		}
		logger.Info("Report written", "path", config.ReportPath)
	}
	if config.PlotPath != "" {
		if err = plotReturn(config.PlotPath, report.ReturnToStart); err != nil {
			return err
		}
		logger.Info("Plot written", "path", config.PlotPath)
	}

	return nil
}
