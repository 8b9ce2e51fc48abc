// Package matrix offers dense matrix primitives for lvlalg.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and a NaN/Inf policy.
//   - Kernels: Add, Sub, Scale, Mul, Transpose, Multiply (matrix·vector) and
//     Rotate (90° counter-clockwise).
//   - Complex, a complex number multiplied through its real 2×2 embedding.
//   - Spectral helpers: Eigen, EigenSym, Pow and IsPositiveSemidefinite, bound
//     to gonum.org/v1/gonum/mat.
//
// Matrix-vector products are row-wise vector.Dot calls, and shape errors share
// the vector package sentinels, so one errors.Is(err, vector.ErrDimensionMismatch)
// check covers both layers.
//
// Exact vs tolerant comparisons:
//
//	IsSymmetric and IsPositiveSemidefinite compare exactly unless WithEpsilon
//	is passed.
//
// See the examples in this package for usage patterns.
package matrix
