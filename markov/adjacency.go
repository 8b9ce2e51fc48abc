// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalg/matrix"
)

// Edge is one transition out of a state: the destination row and its weight.
type Edge struct {
	To     int
	Weight float64
}

// Adjacency is a column-keyed view of a transition matrix. Key j holds one
// Edge{To: i, Weight: M[i][j]} for every row i, in row order; keys are the
// column indices 0..cols-1 in ascending order. Zero weights are kept, so the
// view is a lossless reshaping of M.
type Adjacency struct {
	rows int
	out  [][]Edge
}

// MatrixToAdjacency reshapes m into its Adjacency. m may be rectangular.
//
// Errors:
//   - ErrNilMatrix, or an At error from a custom Matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MatrixToAdjacency(m matrix.Matrix) (*Adjacency, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, markovErrorf(opAdjacency, err)
	}
	rows, cols := m.Rows(), m.Cols()
	a := &Adjacency{rows: rows, out: make([][]Edge, cols)}

	var (
		w   float64
		err error
	)
	for j := 0; j < cols; j++ {
		edges := make([]Edge, rows)
		for i := 0; i < rows; i++ {
			if w, err = m.At(i, j); err != nil {
				return nil, markovErrorf(opAdjacency, err)
			}
			edges[i] = Edge{To: i, Weight: w}
		}
		a.out[j] = edges
	}

	return a, nil
}

// Len returns the number of keys (columns).
func (a *Adjacency) Len() int { return len(a.out) }

// Keys returns the keys in ascending order.
func (a *Adjacency) Keys() []int {
	keys := make([]int, len(a.out))
	for j := range keys {
		keys[j] = j
	}

	return keys
}

// Outgoing returns a copy of the edges stored under key j.
// Errors: matrix.ErrOutOfRange for an unknown key.
func (a *Adjacency) Outgoing(j int) ([]Edge, error) {
	if j < 0 || j >= len(a.out) {
		return nil, markovErrorf(opOutgoing, fmt.Errorf("key %d: %w", j, matrix.ErrOutOfRange))
	}

	return append([]Edge(nil), a.out[j]...), nil
}

// ToMatrix rebuilds the matrix the view was taken from.
// The result is independent of a.
func (a *Adjacency) ToMatrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(a.rows, len(a.out))
	if err != nil {
		return nil, markovErrorf(opToMatrix, err)
	}
	for j, edges := range a.out {
		for _, e := range edges {
			if err = m.Set(e.To, j, e.Weight); err != nil {
				return nil, markovErrorf(opToMatrix, err)
			}
		}
	}

	return m, nil
}

// String renders the view as {j: [(i, w), ...], ...}.
func (a *Adjacency) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for j, edges := range a.out {
		if j > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(j))
		sb.WriteString(": [")
		for k, e := range edges {
			if k > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "(%d, %g)", e.To, e.Weight)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')

	return sb.String()
}
