// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting.
//
// Purpose:
//   - Factor A[piv,:] = L·U for an m×n matrix, L unit lower triangular, U upper
//     triangular, pivoting on the largest-magnitude entry of each column.
//   - Solve square systems A·X = B and expose the determinant.
//
// Contract:
//   - Factorization is eager (NewLU) and never fails on singular input; the only
//     construction error is a nil matrix. Singularity is queried through
//     IsNonSingular and surfaces as ErrSingular from Solve.
//   - The input is cloned; the LU value is immutable afterwards and safe for
//     concurrent Solve calls.
//   - Factor getters return fresh copies, never aliases of the working buffer.

package matrix

import (
	"fmt"
	"math"
)

const opLU = "LU"

// singularTol is the fixed pivot magnitude below which the factored matrix is
// treated as singular.
const singularTol = 1e-7

// LU holds the packed factors of a partial-pivoting LU decomposition.
// Strict lower triangle of lu holds the L multipliers, the upper triangle holds U.
type LU struct {
	lu      *Dense // working copy, factored in place
	pivSign int    // +1 / -1, flips on every row swap
	piv     []int  // row permutation; piv[i] is the source row of row i
}

// NewLU factors a (Crout-like, column by column) and returns the decomposition.
//
// Implementation:
//   - For each column j: copy it into a scratch buffer; subtract from every row i
//     the dot product of row i's computed prefix and the column (min(i,j) terms);
//     choose the pivot p in [j, rows) maximizing |scratch[p]|; swap rows p and j
//     (and their piv entries, flipping pivSign); divide the sub-diagonal part of
//     column j by a non-zero pivot.
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func NewLU(a Matrix) (*LU, error) {
	lu, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	m, n := lu.r, lu.c
	d := lu.data

	piv := make([]int, m)
	for i := range piv {
		piv[i] = i
	}
	pivSign := 1
	col := make([]float64, m)

	var (
		i, j, k, p, kmax, base int
		s                      float64
	)
	for j = 0; j < n; j++ {
		// Localize column j.
		for i = 0; i < m; i++ {
			col[i] = d[i*n+j]
		}

		// Apply previous transformations.
		for i = 0; i < m; i++ {
			base = i * n
			kmax = min(i, j)
			s = ZeroSum
			for k = 0; k < kmax; k++ {
				s += d[base+k] * col[k]
			}
			col[i] -= s
			d[base+j] = col[i]
		}

		if j >= m {
			continue // wide matrix: no pivot row left for this column
		}

		// Find pivot and exchange if necessary.
		p = j
		for i = j + 1; i < m; i++ {
			if math.Abs(col[i]) > math.Abs(col[p]) {
				p = i
			}
		}
		if p != j {
			for k = 0; k < n; k++ {
				d[p*n+k], d[j*n+k] = d[j*n+k], d[p*n+k]
			}
			piv[p], piv[j] = piv[j], piv[p]
			pivSign = -pivSign
		}

		// Compute multipliers.
		if pv := d[j*n+j]; pv != 0 {
			for i = j + 1; i < m; i++ {
				d[i*n+j] /= pv
			}
		}
	}

	return &LU{lu: lu, pivSign: pivSign, piv: piv}, nil
}

// IsNonSingular reports whether every diagonal entry of U has magnitude of at
// least 1e-7. A wide matrix (rows < cols) is always reported singular.
func (f *LU) IsNonSingular() bool {
	m, n := f.lu.r, f.lu.c
	if m < n {
		return false
	}
	for j := 0; j < n; j++ {
		if math.Abs(f.lu.data[j*n+j]) < singularTol {
			return false
		}
	}

	return true
}

// Determinant returns pivSign · ∏ U[j,j].
// Errors: ErrNonSquare when the factored matrix is not square.
func (f *LU) Determinant() (float64, error) {
	if !f.lu.IsSquare() {
		return 0, matrixErrorf(opLU, ErrNonSquare)
	}
	n := f.lu.c
	det := float64(f.pivSign)
	for j := 0; j < n; j++ {
		det *= f.lu.data[j*n+j]
	}

	return det, nil
}

// LowerTriangularFactor returns L (m×k, k = min(m,n)) with a unit diagonal.
func (f *LU) LowerTriangularFactor() *Dense {
	m, n := f.lu.r, f.lu.c
	k := min(m, n)
	l := newDenseLike(f.lu, m, k)
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < k; j++ {
			switch {
			case i > j:
				l.data[i*k+j] = f.lu.data[i*n+j]
			case i == j:
				l.data[i*k+j] = 1.0
			}
		}
	}

	return l
}

// UpperTriangularFactor returns U (k×n, k = min(m,n)).
func (f *LU) UpperTriangularFactor() *Dense {
	m, n := f.lu.r, f.lu.c
	k := min(m, n)
	u := newDenseLike(f.lu, k, n)
	var i, j int
	for i = 0; i < k; i++ {
		for j = i; j < n; j++ {
			u.data[i*n+j] = f.lu.data[i*n+j]
		}
	}

	return u
}

// PivotPermutationVector returns a copy of the row permutation: row i of L·U
// corresponds to row piv[i] of the original matrix.
func (f *LU) PivotPermutationVector() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// PivotSign returns +1 or -1 according to the parity of the row swaps.
func (f *LU) PivotSign() int { return f.pivSign }

// Solve returns X such that A·X = B.
//
// Implementation:
//   - Stage 1: permute B's rows by piv (SubmatrixColRange) into a private X.
//   - Stage 2: forward substitution with the unit lower factor (no division).
//   - Stage 3: back substitution with U.
//
// Errors:
//   - ErrDimensionMismatch when B.Rows != A.Rows.
//   - ErrNonSquare when A is not square.
//   - ErrSingular when !IsNonSingular().
//
// Complexity:
//   - Time O(n²·count), Space O(n·count).
func (f *LU) Solve(b Matrix) (*Dense, error) {
	if err := ValidateSameRows(b, f.lu.r); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if !f.lu.IsSquare() {
		return nil, matrixErrorf(opLU, ErrNonSquare)
	}
	if !f.IsNonSingular() {
		return nil, matrixErrorf(opLU, ErrSingular)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := f.lu.c
	count := bd.c
	if count == 0 {
		return newDenseLike(bd, n, 0), nil
	}
	x, err := bd.SubmatrixColRange(f.piv, 0, count-1)
	if err != nil {
		return nil, matrixErrorf(opLU, fmt.Errorf("permute rhs: %w", err))
	}

	lu, xd := f.lu.data, x.data
	var i, j, k int
	var l, xk float64

	// Solve L·Y = B(piv,:).
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			l = lu[i*n+k]
			if l == 0 {
				continue
			}
			for j = 0; j < count; j++ {
				xd[i*count+j] -= xd[k*count+j] * l
			}
		}
	}

	// Solve U·X = Y.
	for k = n - 1; k >= 0; k-- {
		for j = 0; j < count; j++ {
			xd[k*count+j] /= lu[k*n+k]
		}
		for i = 0; i < k; i++ {
			l = lu[i*n+k]
			for j = 0; j < count; j++ {
				xk = xd[k*count+j]
				xd[i*count+j] -= xk * l
			}
		}
	}

	return x, nil
}
