// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// TetrahedronStates is the number of vertices of the tetrahedron walk.
const TetrahedronStates = 4

// Tetrahedron returns the transition matrix of a random walk on the vertices
// of a regular tetrahedron: from each vertex one of the other three is chosen
// uniformly, so M = (J - I) / 3 with zeros on the diagonal.
func Tetrahedron() *matrix.Dense {
	// Fixed 4×4 shapes: none of these calls can fail.
	ones, _ := matrix.NewFilled(TetrahedronStates, TetrahedronStates, 1)
	id, _ := matrix.NewIdentity(TetrahedronStates)
	diff, _ := matrix.Sub(ones, id)
	m, _ := matrix.Scale(diff, 1.0/3)

	return m.(*matrix.Dense)
}

// Step advances distribution p by one transition: M·p.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrDimensionMismatch (len(p) != n).
func Step(m matrix.Matrix, p []float64) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, markovErrorf(opStep, err)
	}
	next, err := matrix.Multiply(m, p)
	if err != nil {
		return nil, markovErrorf(opStep, err)
	}

	return next, nil
}

// Evolve returns the distribution after n steps from start: M^n · start.
// Evolve(m, start, 0) is a copy of start; start is never mutated.
//
// Implementation:
//   - Stage 1: validate n >= 0, m square, len(start) == n.
//   - Stage 2: matrix.Pow (repeated squaring), then one matrix.Multiply.
//
// Errors:
//   - ErrNegativeSteps, ErrNilMatrix, ErrNotSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3 log steps), Space O(n^2).
func Evolve(m matrix.Matrix, start []float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, markovErrorf(opEvolve, fmt.Errorf("n=%d: %w", n, ErrNegativeSteps))
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, markovErrorf(opEvolve, err)
	}
	if err := matrix.ValidateVecLen(start, m.Rows()); err != nil {
		return nil, markovErrorf(opEvolve, err)
	}
	if n == 0 {
		return append([]float64(nil), start...), nil
	}

	p, err := matrix.Pow(m, n)
	if err != nil {
		return nil, markovErrorf(opEvolve, err)
	}
	dist, err := matrix.Multiply(p, start)
	if err != nil {
		return nil, markovErrorf(opEvolve, err)
	}

	return dist, nil
}

// ProbabilityOfReturn is the probability that the tetrahedron walk started at
// vertex 0 is back at vertex 0 after n steps.
//
// The value is 1 for n = 0 and 0 for n = 1, and equals 1/4 + 3/4·(-1/3)^n in
// general: it oscillates around the stationary value 1/4 and converges to it.
//
// Errors:
//   - ErrNegativeSteps for n < 0.
func ProbabilityOfReturn(n int) (float64, error) {
	if n < 0 {
		return 0, markovErrorf(opReturn, fmt.Errorf("n=%d: %w", n, ErrNegativeSteps))
	}
	start := make([]float64, TetrahedronStates)
	start[0] = 1

	dist, err := Evolve(Tetrahedron(), start, n)
	if err != nil {
		return 0, markovErrorf(opReturn, err)
	}

	return dist[0], nil
}
