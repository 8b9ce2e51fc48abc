// SPDX-License-Identifier: MIT

// Package matrix: spectral kernels backed by gonum.
//
// Purpose:
//   - Bind the eigen-decomposition and matrix-power primitives to
//     gonum.org/v1/gonum/mat (LAPACK-derived, pure Go) instead of hand-rolled
//     solvers. Stochastic matrices are not symmetric, so the general solver is
//     required; symmetric inputs use the dedicated symmetric solver.
//   - Keep the public surface in lvlalg types: Matrix/*Dense in, *Dense and
//     plain slices out. gonum values never escape this file.
//
// Determinism:
//   - gonum is deterministic for a given input; eigen order is gonum's
//     (ascending for EigenSym, LAPACK order for Eigen).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opEigen    = "Eigen"
	opEigenSym = "EigenSym"
	opPow      = "Pow"
	opPSD      = "IsPositiveSemidefinite"
)

// EigenPair is one eigenvalue with its (unit-length) right eigenvector.
// Values and vectors are complex in general; real matrices with real
// spectra have zero imaginary parts.
type EigenPair struct {
	Value  complex128
	Vector []complex128
}

// toGonum copies m into a fresh *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data) // mat.NewDense adopts its slice; never share ours

	return mat.NewDense(d.r, d.c, buf), nil
}

// fromGonum copies a gonum matrix into a *Dense (stride-safe, via At).
func fromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// Eigen computes all eigenvalues and right eigenvectors of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: mat.Eigen.Factorize(·, mat.EigenRight).
//   - Stage 3: pair Values()[k] with column k of VectorsTo().
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenFailed (no convergence).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Eigen(m Matrix) ([]EigenPair, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenRight); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	values := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	n := len(values)
	pairs := make([]EigenPair, n)
	for k := 0; k < n; k++ {
		col := make([]complex128, n)
		for i := 0; i < n; i++ {
			col[i] = vecs.At(i, k)
		}
		pairs[k] = EigenPair{Value: values[k], Vector: col}
	}

	return pairs, nil
}

// EigenSym computes the eigenvalues (ascending) and orthonormal eigenvectors
// (columns of the returned *Dense) of a symmetric matrix.
//
// Symmetry is checked with the configured epsilon (exact by default); within a
// non-zero epsilon the upper triangle is used.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)
	sym := mat.NewSymDense(d.r, buf)

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigenSym, ErrEigenFailed)
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	q, err := fromGonum(&vecs)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	return values, q, nil
}

// IsPositiveSemidefinite reports whether m is symmetric with all eigenvalues >= 0.
//
// Implementation:
//   - Stage 1: ValidateSquare(m) (non-square is an input error, not "false").
//   - Stage 2: not symmetric (exact by default) → false.
//   - Stage 3: EigenSym; any eigenvalue < -eps → false.
//
// With the default eps = 0 both comparisons are exact, so a PSD matrix whose
// smallest eigenvalue rounds to -1e-17 is reported as not PSD. Pass
// WithEpsilon to absorb rounding.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
//
// Complexity:
//   - Time O(n^3).
func IsPositiveSemidefinite(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opPSD, err)
	}
	o := gatherOptions(opts...)
	if ValidateSymmetric(m, o.eps) != nil {
		return false, nil
	}
	values, _, err := EigenSym(m, opts...)
	if err != nil {
		return false, matrixErrorf(opPSD, err)
	}
	for _, v := range values {
		if v < -o.eps {
			return false, nil
		}
	}

	return true, nil
}

// Pow returns m raised to the n-th power (n >= 0); Pow(m, 0) is the identity.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativePower (an ErrInvalidInput).
//
// Complexity:
//   - Time O(n^3 log k) for exponent k (gonum uses repeated squaring).
func Pow(m Matrix, n int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("n=%d: %w", n, ErrNegativePower))
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	var p mat.Dense
	p.Pow(g, n)
	out, err := fromGonum(&p)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	return out, nil
}
