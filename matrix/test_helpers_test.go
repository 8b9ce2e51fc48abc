// SPDX-License-Identifier: MIT
// Package matrix_test - shared helpers for the matrix unit tests.
//
// Purpose:
//   - Keep construction/assertion boilerplate out of the individual tests.
//   - Every helper calls t.Helper() so failures point at the caller.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so kernels cannot see the concrete *Dense and must take
// their interface fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a Dense from row literals or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want element-wise (==) including shape.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "column count")
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "element [%d,%d]", i, j)
		}
	}
}

// CompareClose asserts |m[i,j]-want[i][j]| <= delta everywhere.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "column count")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), delta, "element [%d,%d]", i, j)
		}
	}
}
