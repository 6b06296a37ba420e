// Package matrix provides the small dense linear-algebra core used by the
// Householder QR pipeline.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major r×c matrix with error-returning accessors,
//     and Vector, an immutable float64 sequence with AsColumn/AsRow views.
//   - Factories: NewDense, Zero, Identity, FromRows, FromElements, Ones.
//   - Kernels that always return fresh results: Add, Sub, Mul, Scale,
//     Transpose, MatVec, Outer, Embed, Column, SubColumn.
//   - Inverse and Cond on top of gonum's LU factorization, with ErrSingular
//     reported once the condition estimate passes DefaultConditionLimit.
//   - AllClose and triangularity checks for verifying decompositions.
//
// Every failure is a sentinel from errors.go wrapped as "Op: cause", so
// callers match with errors.Is. Tolerances are set through functional
// options (WithEpsilon, WithConditionLimit, WithNoValidateNaNInf).
package matrix
