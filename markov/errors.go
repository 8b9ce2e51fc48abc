// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/vector"
)

var (
	// ErrNotStochastic is the umbrella returned by ValidateStochastic.
	ErrNotStochastic = errors.New("markov: matrix is not stochastic")

	// ErrNotSquare is the matrix package sentinel; transition matrices are n×n.
	ErrNotSquare = matrix.ErrNonSquare

	// ErrNegativeEntry marks a transition probability below zero.
	ErrNegativeEntry = errors.New("markov: negative transition probability")

	// ErrColumnSum marks a column whose entries do not add up to 1.
	ErrColumnSum = errors.New("markov: column does not sum to 1")

	// ErrNegativeSteps is returned for a negative step count.
	ErrNegativeSteps = fmt.Errorf("markov: negative number of steps: %w", vector.ErrInvalidInput)
)

// Operation tags.
const (
	opValidate    = "ValidateStochastic"
	opStationary  = "StationaryStates"
	opStep        = "Step"
	opEvolve      = "Evolve"
	opReturn      = "ProbabilityOfReturn"
	opAdjacency   = "MatrixToAdjacency"
	opToMatrix    = "Adjacency.ToMatrix"
	opOutgoing    = "Adjacency.Outgoing"
	opIrreducible = "IsIrreducible"
	opReachable   = "Reachable"
)

// markovErrorf wraps err with an operation tag.
func markovErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// notStochastic ties a precise cause to ErrNotStochastic so both match errors.Is.
func notStochastic(cause error, format string, args ...any) error {
	return fmt.Errorf("%s: %w (%s): %w", opValidate, ErrNotStochastic, fmt.Sprintf(format, args...), cause)
}
