// SPDX-License-Identifier: MIT

package vector

// LargestNorm returns the first vector with the maximal Euclidean norm.
// Ties keep the earliest index (strict ">" comparison).
//
// Errors:
//   - ErrEmptyInput (an ErrInvalidInput) when vectors is empty.
//
// Complexity: Time O(k·n), Space O(1). The returned slice aliases the input.
func LargestNorm(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, vectorErrorf(opLargest, ErrEmptyInput)
	}

	best := vectors[0]
	bestNorm := Norm(best)
	for _, v := range vectors[1:] {
		if n := Norm(v); n > bestNorm {
			best, bestNorm = v, n
		}
	}

	return best, nil
}

// IsScalarMultiple reports whether v1 and v2 are linearly dependent.
//
// Rules:
//   - different lengths → false;
//   - either vector all zeros → true;
//   - positions zero in both are skipped, a position zero in only one → false;
//   - all remaining positions must share the ratio v1[i]/v2[i] of the first one.
//
// Ratios are compared exactly.
func IsScalarMultiple(v1, v2 []float64) bool {
	if len(v1) != len(v2) {
		return false
	}
	if IsZero(v1) || IsZero(v2) {
		return true
	}

	var (
		ratio float64
		seen  bool
	)
	for i := range v1 {
		a, b := v1[i], v2[i]
		switch {
		case a == 0 && b == 0:
			continue
		case a == 0 || b == 0:
			return false
		}
		r := a / b
		if !seen {
			ratio, seen = r, true
			continue
		}
		if r != ratio {
			return false
		}
	}

	return true
}

// Count pairs a distinct vector with its number of occurrences.
type Count struct {
	Vector []float64
	N      int
}

// CountVectors returns one Count per distinct vector in first-seen order.
// Vectors may differ in length; equality is exact and element-wise.
// Complexity: O(k·d·n) for k inputs and d distinct vectors.
func CountVectors(vectors [][]float64) []Count {
	counts := make([]Count, 0, len(vectors))
	for _, v := range vectors {
		found := false
		for i := range counts {
			if Equal(counts[i].Vector, v) {
				counts[i].N++
				found = true
				break
			}
		}
		if !found {
			counts = append(counts, Count{Vector: v, N: 1})
		}
	}

	return counts
}
