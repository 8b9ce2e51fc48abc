// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlalg/markov"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/natefinch/atomic"
)

// Report is the JSON summary of one chain.
type Report struct {
	States          int         `json:"states"`
	Stochastic      bool        `json:"stochastic"`
	StochasticError string      `json:"stochastic_error,omitempty"`
	Irreducible     bool        `json:"irreducible"`
	Stationary      [][]float64 `json:"stationary"`
	Adjacency       string      `json:"adjacency"`
	Evolution       [][]float64 `json:"evolution"`
	ReturnToStart   []float64   `json:"tetrahedron_return"`
}

// readMatrix loads a JSON [][]float64 file. An empty path selects the
// tetrahedron walk.
func readMatrix(path string) (*matrix.Dense, error) {
	if path == "" {
		return markov.Tetrahedron(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}
	var rows [][]float64
	if err = json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse matrix file: %w", err)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("invalid matrix in %s: %w", path, err)
	}

	return m, nil
}

// buildReport runs every analysis on m. Evolution starts from state 0 and
// holds steps+1 distributions.
func buildReport(m *matrix.Dense, steps int, opts ...markov.Option) (*Report, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, err
	}
	r := &Report{States: m.Rows()}

	if err := markov.ValidateStochastic(m, opts...); err != nil {
		r.StochasticError = err.Error()
	} else {
		r.Stochastic = true
	}

	var err error
	if r.Irreducible, err = markov.IsIrreducible(m); err != nil {
		return nil, err
	}
	if r.Stationary, err = markov.StationaryStates(m); err != nil {
		return nil, err
	}
	adj, err := markov.MatrixToAdjacency(m)
	if err != nil {
		return nil, err
	}
	r.Adjacency = adj.String()

	p := make([]float64, m.Rows())
	p[0] = 1
	r.Evolution = append(r.Evolution, p)
	for n := 1; n <= steps; n++ {
		if p, err = markov.Step(m, p); err != nil {
			return nil, err
		}
		r.Evolution = append(r.Evolution, p)
	}

	if r.ReturnToStart, err = returnSeries(steps); err != nil {
		return nil, err
	}

	return r, nil
}

// returnSeries evaluates ProbabilityOfReturn for 0..steps.
func returnSeries(steps int) ([]float64, error) {
	out := make([]float64, 0, steps+1)
	for n := 0; n <= steps; n++ {
		p, err := markov.ProbabilityOfReturn(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// writeReport stores r as indented JSON; readers never see a partial file.
func writeReport(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
