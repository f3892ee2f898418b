// SPDX-License-Identifier: MIT
// Package matrix: Cholesky factorization A = L·Lᵀ.
//
// Contract:
//   - Requires a square input (ErrNonSquare otherwise); that is the only
//     construction failure besides a nil matrix.
//   - Asymmetry and indefiniteness do NOT fail construction. They are recorded
//     as IsSymmetric / IsPositiveDefinite and surface from Solve.
//   - Only the diagonal is clamped: a non-positive pivot term becomes zero
//     before the square root. Entries below a zero pivot follow IEEE
//     arithmetic and may be NaN or ±Inf; IsPositiveDefinite is false then.

package matrix

import "math"

const opCholesky = "Cholesky"

// Cholesky holds the lower-triangular factor of a symmetric positive-definite matrix.
type Cholesky struct {
	l                  *Dense
	isSymmetric        bool
	isPositiveDefinite bool
}

// NewCholesky factors a column by column.
//
// Implementation:
//   - For each row j and each k < j: L[j][k] = (A[j][k] − Σ_{i<k} L[k][i]·L[j][i]) / L[k][k],
//     accumulating d += L[j][k]² and checking A[k][j] == A[j][k].
//   - d = A[j][j] − d; positive-definite iff every d > 0; L[j][j] = sqrt(max(d, 0)).
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func NewCholesky(a Matrix) (*Cholesky, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := ad.r
	l := newDenseLike(ad, n, n)
	av, lv := ad.data, l.data
	sym, spd := true, true

	var (
		i, j, k int
		s, dsum float64
	)
	for j = 0; j < n; j++ {
		dsum = ZeroSum
		for k = 0; k < j; k++ {
			s = ZeroSum
			for i = 0; i < k; i++ {
				s += lv[k*n+i] * lv[j*n+i]
			}
			// L[k][k] may be zero for a degenerate prefix; the IEEE result is
			// kept and the flags below already mark the factor as unusable.
			s = (av[j*n+k] - s) / lv[k*n+k]
			lv[j*n+k] = s
			dsum += s * s
			sym = sym && av[k*n+j] == av[j*n+k]
		}
		dsum = av[j*n+j] - dsum
		spd = spd && dsum > 0
		lv[j*n+j] = math.Sqrt(math.Max(dsum, 0))
		// Strict upper part of row j stays zero from allocation.
	}

	return &Cholesky{l: l, isSymmetric: sym, isPositiveDefinite: spd}, nil
}

// IsSymmetric reports whether the factored matrix was exactly symmetric.
func (c *Cholesky) IsSymmetric() bool { return c.isSymmetric }

// IsPositiveDefinite reports whether every pivot term was strictly positive.
func (c *Cholesky) IsPositiveDefinite() bool { return c.isPositiveDefinite }

// LeftTriangularFactor returns a copy of L.
func (c *Cholesky) LeftTriangularFactor() *Dense { return c.l.clone() }

// Solve returns X such that A·X = B, via L·Y = B then Lᵀ·X = Y on a private copy of B.
//
// Errors:
//   - ErrDimensionMismatch when B.Rows != A.Rows.
//   - ErrNotSymmetric, ErrNotPositiveDefinite when the matching flag is false.
func (c *Cholesky) Solve(b Matrix) (*Dense, error) {
	n := c.l.r
	if err := ValidateSameRows(b, n); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if !c.isSymmetric {
		return nil, matrixErrorf(opCholesky, ErrNotSymmetric)
	}
	if !c.isPositiveDefinite {
		return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
	}
	x, err := denseCopy(b)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	count := x.c
	lv, xd := c.l.data, x.data
	var i, j, k int

	// Solve L·Y = B.
	for k = 0; k < n; k++ {
		for j = 0; j < count; j++ {
			xd[k*count+j] /= lv[k*n+k]
		}
		for i = k + 1; i < n; i++ {
			for j = 0; j < count; j++ {
				xd[i*count+j] -= xd[k*count+j] * lv[i*n+k]
			}
		}
	}

	// Solve Lᵀ·X = Y.
	for k = n - 1; k >= 0; k-- {
		for j = 0; j < count; j++ {
			xd[k*count+j] /= lv[k*n+k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < count; j++ {
				xd[i*count+j] -= xd[k*count+j] * lv[k*n+i]
			}
		}
	}

	return x, nil
}
