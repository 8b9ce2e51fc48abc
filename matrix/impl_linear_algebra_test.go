// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Multiply ----------

// TestMultiply covers square, rectangular and single-row products.
func TestMultiply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    [][]float64
		v    []float64
		want []float64
	}{
		{"square", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, []float64{1, 2, 3}, []float64{14, 32, 50}},
		{"rectangular", [][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{1, 2}, []float64{5, 11, 17}},
		{"single row", [][]float64{{1, 2, 3}}, []float64{1, 2, 3}, []float64{14}},
		{"wide", [][]float64{{1, 0, -1, 2}, {0, 1, 1, 0}}, []float64{1, 1, 1, 1}, []float64{2, 2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustFromRows(t, tc.m)
			got, err := matrix.Multiply(m, tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// interface fallback gives the same answer
			got, err = matrix.MatVec(hide{m}, tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMultiply_Errors covers nil and length mismatch.
func TestMultiply_Errors(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.Multiply(m, []float64{1, 2})
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "len 2 vs 3")

	_, err = matrix.Multiply(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Transpose ----------

// TestTranspose covers square, rectangular and column shapes.
func TestTranspose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{"square", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}},
		{"rectangular", [][]float64{{1, 2, 3}, {4, 5, 6}}, [][]float64{{1, 4}, {2, 5}, {3, 6}}},
		{"single row", [][]float64{{1, 2, 3}}, [][]float64{{1}, {2}, {3}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustFromRows(t, tc.in)
			tr, err := matrix.Transpose(m)
			require.NoError(t, err)
			CompareExact(t, tc.want, tr)

			back, err := matrix.Transpose(tr)
			require.NoError(t, err)
			CompareExact(t, tc.in, back)

			viaIface, err := matrix.Transpose(hide{m})
			require.NoError(t, err)
			CompareExact(t, tc.want, viaIface)
		})
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Rotate ----------

// TestRotate checks the counter-clockwise orientation and the period of four.
func TestRotate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{"3x3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, [][]float64{{3, 6, 9}, {2, 5, 8}, {1, 4, 7}}},
		{"4x4",
			[][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}},
			[][]float64{{4, 8, 12, 16}, {3, 7, 11, 15}, {2, 6, 10, 14}, {1, 5, 9, 13}}},
		{"1x1", [][]float64{{5}}, [][]float64{{5}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustFromRows(t, tc.in)
			r, err := matrix.Rotate(m)
			require.NoError(t, err)
			CompareExact(t, tc.want, r)

			var cur matrix.Matrix = m
			for k := 0; k < 4; k++ {
				cur, err = matrix.Rotate(cur)
				require.NoError(t, err)
			}
			CompareExact(t, tc.in, cur)
		})
	}
}

// TestRotate_NonSquare reports an invalid-input error.
func TestRotate_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := matrix.Rotate(MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, vector.ErrInvalidInput)
}

// ---------- Mul / Add / Sub / Scale ----------

// TestMul covers a rectangular product, the fallback path and the inner-dimension guard.
func TestMul(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, c)

	c, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, want, c)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSubScale covers element-wise kernels on both paths.
func TestAddSubScale(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{4, 3}, {2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 5}, {5, 5}}, sum)

	diff, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, -1}, {1, 3}}, diff)

	sc, err := matrix.Scale(hide{a}, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 1}, {1.5, 2}}, sc)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
