// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spectralTol = 1e-9

// TestIsPositiveSemidefinite covers the PSD classifier on canonical inputs.
func TestIsPositiveSemidefinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		opts []matrix.Option
		want bool
	}{
		{"diag with zero", [][]float64{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, nil, true},
		{"identity", [][]float64{{1, 0}, {0, 1}}, nil, true},
		{"indefinite", [][]float64{{2, -3}, {-3, 2}}, nil, false},
		{"asymmetric", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, nil, false},
		{"negative diagonal", [][]float64{{-1, 0}, {0, 1}}, nil, false},
		{"gram", [][]float64{{2, 1}, {1, 2}}, nil, true},
		{"near symmetric with eps", [][]float64{{2, 1}, {1 + 1e-12, 2}}, []matrix.Option{matrix.WithEpsilon(1e-9)}, true},
		{"near symmetric exact", [][]float64{{2, 1}, {1 + 1e-12, 2}}, nil, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.IsPositiveSemidefinite(MustFromRows(t, tc.in), tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestIsPositiveSemidefinite_Errors rejects non-square and nil inputs.
func TestIsPositiveSemidefinite_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.IsPositiveSemidefinite(MustFromRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.IsPositiveSemidefinite(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEigenSym checks ascending order and A·q = λ·q for each column.
func TestEigenSym(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	values, q, err := matrix.EigenSym(a)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.InDelta(t, 1, values[0], spectralTol)
	assert.InDelta(t, 3, values[1], spectralTol)

	for k, lambda := range values {
		col := []float64{MustAt(t, q, 0, k), MustAt(t, q, 1, k)}
		aq, err := matrix.Multiply(a, col)
		require.NoError(t, err)
		for i := range col {
			assert.InDelta(t, lambda*col[i], aq[i], spectralTol)
		}
	}

	_, _, err = matrix.EigenSym(MustFromRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestEigen_Stochastic finds eigenvalue 1 on a column-stochastic matrix.
func TestEigen_Stochastic(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{0.9, 0.5}, {0.1, 0.5}})
	pairs, err := matrix.Eigen(a)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	re := []float64{real(pairs[0].Value), real(pairs[1].Value)}
	sort.Float64s(re)
	assert.InDelta(t, 0.4, re[0], spectralTol)
	assert.InDelta(t, 1.0, re[1], spectralTol)

	for _, p := range pairs {
		assert.InDelta(t, 0, imag(p.Value), spectralTol)
		require.Len(t, p.Vector, 2)
		// A·v = λ·v
		for i := 0; i < 2; i++ {
			var sum complex128
			for j := 0; j < 2; j++ {
				sum += complex(MustAt(t, a, i, j), 0) * p.Vector[j]
			}
			assert.InDelta(t, 0, cmplx.Abs(sum-p.Value*p.Vector[i]), spectralTol)
		}
	}
}

// TestEigen_Rotation yields a complex-conjugate pair for a 90° rotation.
func TestEigen_Rotation(t *testing.T) {
	t.Parallel()

	pairs, err := matrix.Eigen(MustFromRows(t, [][]float64{{0, -1}, {1, 0}}))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.InDelta(t, 0, real(p.Value), spectralTol)
		assert.InDelta(t, 1, math.Abs(imag(p.Value)), spectralTol)
	}

	_, err = matrix.Eigen(MustFromRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestPow covers n=0, n=1, n=3 and the negative exponent guard.
func TestPow(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 1}, {1, 0}}) // Fibonacci matrix

	p0, err := matrix.Pow(a, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, p0)

	p1, err := matrix.Pow(a, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 1}, {1, 0}}, p1)

	p5, err := matrix.Pow(hide{a}, 5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{8, 5}, {5, 3}}, p5)

	_, err = matrix.Pow(a, -1)
	require.ErrorIs(t, err, matrix.ErrNegativePower)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)
	_, err = matrix.Pow(MustDense(t, 2, 3), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
