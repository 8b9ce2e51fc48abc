// SPDX-License-Identifier: MIT

// Package vector provides the leaf layer of lvlalg: plain []float64 vector
// primitives used by the matrix and markov packages.
//
// What is here?
//
//	• Dot, Norm          — inner product and Euclidean length
//	• Normalize          — unit vector (zero and unit inputs pass through)
//	• OrthogonalProjection — split v into parts parallel / perpendicular to w
//	• LargestNorm        — first vector of maximal length
//	• IsScalarMultiple, CountVectors, IsInFirstQuadrant — small predicates
//
// Error policy:
//
//	Operations that require equal lengths return ErrDimensionMismatch wrapped
//	with the operation tag and both lengths. Degenerate inputs (empty list,
//	zero reference vector) return sentinels that wrap ErrInvalidInput, so
//	callers may match either the precise or the generic error via errors.Is.
//	The matrix and markov packages re-use this taxonomy.
//
// Usage:
//
//	import "github.com/katalvlaran/lvlalg/vector"
//
//	par, perp, err := vector.OrthogonalProjection([]float64{1, 2, 3}, []float64{4, 0, 6})
//
// Complexity: every operation is O(n) in the vector length, except
// LargestNorm (O(k·n)) and CountVectors (O(k²·n) worst case).
package vector
