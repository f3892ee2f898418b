// Package matrix offers a dense float64 matrix and the three classical
// factorizations used to solve linear systems with it.
//
// The matrix package provides:
//
//   - Dense, a row-major container with bounds-checked At/Set, value-semantics
//     Clone/Transpose and four Submatrix variants (ranges or index lists).
//   - Add, Sub, Negate, Scale, Mul and the Norm1 / InfinityNorm / FrobeniusNorm
//     / Trace queries.
//   - LU (partial pivoting) for square systems and determinants.
//   - QR (Householder) for least-squares solutions of tall systems.
//   - Cholesky for symmetric positive-definite systems.
//
// Factorizations run eagerly in their constructors and never fail on a
// degenerate but well-formed input: singularity, rank deficiency, asymmetry
// and indefiniteness are recorded on the value (IsNonSingular, IsFullRank,
// IsSymmetric, IsPositiveDefinite) and reported by Solve as errors matching
// ErrInvalidOperation. Shape and index problems match ErrInvalidArgument.
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{1}, {2}})
//	x, err := a.Solve(b) // LU, since a is square
//
// All routines are synchronous and allocation-explicit. A factorization owns a
// private copy of its input and is safe for concurrent Solve calls.
package matrix
