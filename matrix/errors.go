// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/vector"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. DO NOT %w wrap
// these sentinels when returning directly from validators; kernels wrap with
// matrixErrorf("Op", err) so callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> structural violations
// -> numeric failures (eigen).

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	// It is the vector sentinel itself, so one errors.Is check covers both layers.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrInvalidInput is the shared umbrella for violated non-shape preconditions.
	ErrInvalidInput = vector.ErrInvalidInput

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a row literal is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", vector.ErrInvalidInput)

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEigenFailed indicates that the eigen decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNegativePower is returned by Pow for exponents below zero.
	ErrNegativePower = fmt.Errorf("matrix: negative power: %w", vector.ErrInvalidInput)
)
