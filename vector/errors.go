// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "vector:" for grep-ability.
// The dimension and invalid-input sentinels are shared by the upper layers.
var (
	// ErrDimensionMismatch indicates operands of incompatible length or shape.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidInput is the umbrella for violated non-shape preconditions.
	ErrInvalidInput = errors.New("vector: invalid input")

	// ErrEmptyInput is returned when a non-empty sequence was required.
	ErrEmptyInput = fmt.Errorf("vector: empty input: %w", ErrInvalidInput)

	// ErrZeroVector is returned when a nonzero reference vector was required.
	ErrZeroVector = fmt.Errorf("vector: zero vector: %w", ErrInvalidInput)
)

// Operation tags used in wrapped errors.
const (
	opDot        = "Dot"
	opProjection = "OrthogonalProjection"
	opLargest    = "LargestNorm"
	opAdd        = "Add"
	opSub        = "Sub"
)

// vectorErrorf wraps err with an operation tag, keeping the sentinel for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lengthError reports which two lengths disagreed.
func lengthError(tag string, a, b int) error {
	return fmt.Errorf("%s: len %d vs %d: %w", tag, a, b, ErrDimensionMismatch)
}
