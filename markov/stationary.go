// SPDX-License-Identifier: MIT

package markov

import (
	"math/cmplx"

	"github.com/katalvlaran/lvlalg/matrix"
)

// StationaryStates returns the stationary distributions read off the
// eigenvectors of m whose eigenvalue is close to 1.
//
// Implementation:
//   - Stage 1: ValidateSquare(m). Stochasticity is NOT required.
//   - Stage 2: matrix.Eigen (general, right eigenvectors).
//   - Stage 3: keep eigenvalues λ with |λ-1| <= atol + rtol (complex modulus,
//     so a non-negligible imaginary part fails the test).
//   - Stage 4: divide each kept eigenvector by the sum of its components and
//     return the real parts. A vector whose components sum to zero cannot be
//     scaled into a distribution and is skipped.
//
// Order follows the decomposition. When nothing matches the result is an
// empty, non-nil slice and a nil error.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, matrix.ErrEigenFailed.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func StationaryStates(m matrix.Matrix, opts ...Option) ([][]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, markovErrorf(opStationary, err)
	}
	o := gatherOptions(opts...)

	pairs, err := matrix.Eigen(m)
	if err != nil {
		return nil, markovErrorf(opStationary, err)
	}

	states := make([][]float64, 0, 1)
	for _, p := range pairs {
		if cmplx.Abs(p.Value-1) > o.atol+o.rtol {
			continue
		}
		var sum complex128
		for _, c := range p.Vector {
			sum += c
		}
		if sum == 0 {
			continue
		}
		state := make([]float64, len(p.Vector))
		for i, c := range p.Vector {
			state[i] = real(c / sum)
		}
		states = append(states, state)
	}

	return states, nil
}
