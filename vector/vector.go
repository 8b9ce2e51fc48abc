// SPDX-License-Identifier: MIT

package vector

import "math"

// unitNorm is the norm at which Normalize becomes a pass-through.
const unitNorm = 1.0

// IsInFirstQuadrant reports whether both coordinates of a 2-vector are non-negative.
// Only positions 0 and 1 are read; a shorter slice panics like any index error.
func IsInFirstQuadrant(v []float64) bool {
	return v[0] >= 0 && v[1] >= 0
}

// Dot returns Σ v1[i]*v2[i].
//
// Errors:
//   - ErrDimensionMismatch when len(v1) != len(v2) (message carries both lengths).
//
// Complexity: Time O(n), Space O(1).
func Dot(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, lengthError(opDot, len(v1), len(v2))
	}

	return dot(v1, v2), nil
}

// dot is the unchecked kernel; callers guarantee equal lengths.
func dot(v1, v2 []float64) float64 {
	var acc float64
	for i := range v1 {
		acc += v1[i] * v2[i]
	}

	return acc
}

// Norm returns the Euclidean length sqrt(Dot(v, v)). Always >= 0.
func Norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

// Normalize returns v scaled to unit length.
//
// Behavior highlights:
//   - norm(v) == 0 → v is returned as is (nothing to scale).
//   - norm(v) == 1 → v is returned as is.
//   - otherwise    → a NEW slice v/norm(v); v is not modified.
//
// Callers must not rely on aliasing either way.
// Complexity: Time O(n), Space O(n) in the scaling case.
func Normalize(v []float64) []float64 {
	n := Norm(v)
	if n == 0 || n == unitNorm {
		return v
	}

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}

	return out
}

// NormalizeInPlace has the same three-way split as Normalize but divides v
// by its norm in place and returns v. Treat the call as a write to v.
func NormalizeInPlace(v []float64) []float64 {
	n := Norm(v)
	if n == 0 || n == unitNorm {
		return v
	}
	for i := range v {
		v[i] /= n
	}

	return v
}

// IsZero reports whether every component of v is exactly 0.
func IsZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// Scale returns alpha*v as a new slice.
func Scale(v []float64, alpha float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = alpha * x
	}

	return out
}

// Add returns a+b as a new slice, or ErrDimensionMismatch.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, lengthError(opAdd, len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Sub returns a-b as a new slice, or ErrDimensionMismatch.
func Sub(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, lengthError(opSub, len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Equal reports exact element-wise equality; vectors of different length are unequal.
func Equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
