// SPDX-License-Identifier: MIT

package vector

// OrthogonalProjection decomposes v relative to a nonzero reference w.
//
// Implementation:
//   - Stage 1: validate len(v) == len(w) and w != 0.
//   - Stage 2: ŵ = Normalize(w); parallel = Dot(v, ŵ)·ŵ.
//   - Stage 3: perpendicular = v − parallel.
//
// Guarantees (up to rounding):
//   - parallel + perpendicular == v
//   - parallel is a scalar multiple of w
//   - Dot(perpendicular, w) ≈ 0
//
// Inputs are never mutated.
//
// Errors:
//   - ErrDimensionMismatch for unequal lengths.
//   - ErrZeroVector (an ErrInvalidInput) when w is the zero vector.
//
// Complexity: Time O(n), Space O(n).
func OrthogonalProjection(v, w []float64) (parallel, perpendicular []float64, err error) {
	if len(v) != len(w) {
		return nil, nil, lengthError(opProjection, len(v), len(w))
	}
	if IsZero(w) {
		return nil, nil, vectorErrorf(opProjection, ErrZeroVector)
	}

	unit := Normalize(w)
	parallel = Scale(unit, dot(v, unit))

	perpendicular = make([]float64, len(v))
	for i := range v {
		perpendicular[i] = v[i] - parallel[i]
	}

	return parallel, perpendicular, nil
}
