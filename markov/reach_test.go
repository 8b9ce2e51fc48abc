// SPDX-License-Identifier: MIT
package markov_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/markov"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsIrreducible classifies communicating and reducible chains.
func TestIsIrreducible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want bool
	}{
		{"tetrahedron", markov.Tetrahedron(), true},
		{"periodic flip", mustRows(t, [][]float64{{0, 1}, {1, 0}}), true},
		{"single state", mustRows(t, [][]float64{{1}}), true},
		{"cycle of three", mustRows(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}), true},
		{"identity", mustRows(t, [][]float64{{1, 0}, {0, 1}}), false},
		{"absorbing", mustRows(t, [][]float64{{1, 0.5}, {0, 0.5}}), false},
		{"two blocks", mustRows(t, [][]float64{{1, 0, 0}, {0, 0.5, 0.5}, {0, 0.5, 0.5}}), false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := markov.IsIrreducible(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := markov.IsIrreducible(mustRows(t, [][]float64{{1, 0}}))
	require.ErrorIs(t, err, markov.ErrNotSquare)
}

// TestReachable lists states in breadth-first order.
func TestReachable(t *testing.T) {
	t.Parallel()

	absorbing := mustRows(t, [][]float64{{1, 0.5}, {0, 0.5}})

	got, err := markov.Reachable(absorbing, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, got)

	got, err = markov.Reachable(absorbing, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	// 0 → 1 → 2 → 0
	cycle := mustRows(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}})
	got, err = markov.Reachable(cycle, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	_, err = markov.Reachable(cycle, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
