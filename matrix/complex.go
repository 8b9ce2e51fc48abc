// SPDX-License-Identifier: MIT

// Package matrix: complex numbers through their real 2×2 embedding.
//
// The map a+bi ↦ [[a, -b], [b, a]] is an injective ring homomorphism from ℂ
// into the real 2×2 matrices, so complex multiplication is exactly the matrix
// product of the embeddings, read back from the first column. The embedding
// is an implementation device: the public contract is field multiplication
// on the Complex value type.

package matrix

import "fmt"

const (
	opComplexColumn = "ComplexFromMatrixColumn"
	complexDim      = 2 // embedding is always 2×2
)

// Complex is a complex number as a (Re, Im) pair of float64.
type Complex struct {
	Re, Im float64
}

// ToMatrix returns the 2×2 real embedding [[Re, -Im], [Im, Re]].
func (z Complex) ToMatrix() *Dense {
	m, _ := NewDense(complexDim, complexDim) // fixed positive shape cannot fail
	m.data[0], m.data[1] = z.Re, -z.Im
	m.data[2], m.data[3] = z.Im, z.Re

	return m
}

// Complex128 converts z to the builtin complex type.
func (z Complex) Complex128() complex128 { return complex(z.Re, z.Im) }

// String renders z as "(re+imi)" in the style of fmt's %v for complex128.
func (z Complex) String() string { return fmt.Sprint(z.Complex128()) }

// ComplexFromMatrixColumn reads (m[0][col], m[1][col]) back as a Complex.
//
// Errors:
//   - ErrNilMatrix for nil m.
//   - ErrDimensionMismatch when m does not have exactly 2 rows.
//   - ErrOutOfRange for an invalid column.
func ComplexFromMatrixColumn(m Matrix, col int) (Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return Complex{}, matrixErrorf(opComplexColumn, err)
	}
	if m.Rows() != complexDim {
		return Complex{}, matrixErrorf(opComplexColumn,
			fmt.Errorf("%d rows, want %d: %w", m.Rows(), complexDim, ErrDimensionMismatch))
	}
	re, err := m.At(0, col)
	if err != nil {
		return Complex{}, matrixErrorf(opComplexColumn, err)
	}
	im, err := m.At(1, col)
	if err != nil {
		return Complex{}, matrixErrorf(opComplexColumn, err)
	}

	return Complex{Re: re, Im: im}, nil
}

// ComplexMultiply returns z1·z2 = (ac−bd) + (ad+bc)i, computed as the matrix
// product of the two embeddings.
// Complexity: O(1) (one 2×2 product).
func ComplexMultiply(z1, z2 Complex) Complex {
	// Both operands are 2×2, so neither Mul nor the column read can fail.
	prod, _ := Mul(z1.ToMatrix(), z2.ToMatrix())
	z, _ := ComplexFromMatrixColumn(prod, 0)

	return z
}
