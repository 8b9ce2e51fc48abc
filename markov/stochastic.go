// SPDX-License-Identifier: MIT

package markov

import (
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
)

// ValidateStochastic checks that m is a left-stochastic matrix: square, every
// entry non-negative, every column summing to 1.
//
// Implementation:
//   - Stage 1: nil and shape checks.
//   - Stage 2: column-major scan; the first negative (or NaN) entry fails.
//   - Stage 3: the column sum, accumulated top to bottom, must equal 1
//     (within WithColumnTolerance, exact by default).
//
// Errors:
//   - ErrNilMatrix (not wrapped in ErrNotStochastic).
//   - ErrNotSquare, ErrNegativeEntry, ErrColumnSum; each also matches
//     ErrNotStochastic and names the offending shape, cell or column.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func ValidateStochastic(m matrix.Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return markovErrorf(opValidate, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return notStochastic(ErrNotSquare, "%dx%d", rows, cols)
	}
	o := gatherOptions(opts...)

	var (
		v, sum float64
		err    error
	)
	for j := 0; j < cols; j++ {
		sum = 0
		for i := 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return markovErrorf(opValidate, err)
			}
			if !(v >= 0) {
				return notStochastic(ErrNegativeEntry, "M[%d,%d]=%g", i, j, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > o.colTol {
			return notStochastic(ErrColumnSum, "column %d sums to %g", j, sum)
		}
	}

	return nil
}

// IsStochastic reports whether m is a left-stochastic matrix.
// A column summing to 0.999999 is rejected unless WithColumnTolerance allows it.
func IsStochastic(m matrix.Matrix, opts ...Option) bool {
	return ValidateStochastic(m, opts...) == nil
}
