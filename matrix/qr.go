// SPDX-License-Identifier: MIT
// Package matrix: Householder QR factorization and least squares.
//
// Purpose:
//   - Factor an m×n matrix (m ≥ n) as A = Q·R with Householder reflectors.
//   - Solve min ‖A·X − B‖₂ for full-rank A.
//
// Storage:
//   - The k-th Householder vector is packed into column k of the working copy,
//     from the diagonal down; the strict upper triangle holds R; rdiag holds the
//     signed diagonal of R (rdiag[k] = −‖column‖).
//
// Contract:
//   - Construction never fails on rank-deficient input; a vanished column is
//     skipped and recorded as rdiag[k] == 0 (IsFullRank reports it).

package matrix

import "fmt"

const opQR = "QR"

// QR holds the packed Householder factorization of a tall matrix.
type QR struct {
	qr    *Dense    // working copy, reflectors below/on the diagonal, R above
	rdiag []float64 // signed diagonal of R, one per column
}

// NewQR factors a with Householder reflections.
//
// Implementation:
//   - For each column k: norm = hypot-accumulated 2-norm of qr[k..m-1][k]; when
//     non-zero, flip its sign to match qr[k][k], scale the sub-column by 1/norm,
//     add 1 to qr[k][k], then reflect every remaining column j > k with
//     s = −(v·col_j)/v[k]; col_j += s·v. Record rdiag[k] = −norm.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when rows < cols.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func NewQR(a Matrix) (*QR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	if a.Rows() < a.Cols() {
		return nil, matrixErrorf(opQR,
			fmt.Errorf("%dx%d has fewer rows than columns: %w", a.Rows(), a.Cols(), ErrDimensionMismatch))
	}
	qr, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	m, n := qr.r, qr.c
	d := qr.data
	rdiag := make([]float64, n)

	var (
		i, j, k int
		nrm, s  float64
	)
	for k = 0; k < n; k++ {
		// 2-norm of the k-th sub-column without under/overflow.
		nrm = NormZero
		for i = k; i < m; i++ {
			nrm = hypot(nrm, d[i*n+k])
		}

		if nrm != 0 {
			// Form the k-th Householder vector.
			if d[k*n+k] < 0 {
				nrm = -nrm
			}
			for i = k; i < m; i++ {
				d[i*n+k] /= nrm
			}
			d[k*n+k] += 1.0

			// Apply the reflection to the remaining columns.
			for j = k + 1; j < n; j++ {
				s = ZeroSum
				for i = k; i < m; i++ {
					s += d[i*n+k] * d[i*n+j]
				}
				s = -s / d[k*n+k]
				for i = k; i < m; i++ {
					d[i*n+j] += s * d[i*n+k]
				}
			}
		}
		rdiag[k] = -nrm
	}

	return &QR{qr: qr, rdiag: rdiag}, nil
}

// IsFullRank reports whether every diagonal entry of R is non-zero.
func (f *QR) IsFullRank() bool {
	for _, v := range f.rdiag {
		if v == 0 {
			return false
		}
	}

	return true
}

// RDiag returns a copy of the signed diagonal of R.
func (f *QR) RDiag() []float64 {
	out := make([]float64, len(f.rdiag))
	copy(out, f.rdiag)

	return out
}

// UpperTriangularFactor returns the n×n factor R.
func (f *QR) UpperTriangularFactor() *Dense {
	n := f.qr.c
	r := newDenseLike(f.qr, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		r.data[i*n+i] = f.rdiag[i]
		for j = i + 1; j < n; j++ {
			r.data[i*n+j] = f.qr.data[i*n+j]
		}
	}

	return r
}

// OrthogonalFactor returns the m×n factor Q with orthonormal columns
// (economy size), rebuilt by applying the stored reflectors in reverse order
// to the unit basis vectors.
func (f *QR) OrthogonalFactor() *Dense {
	m, n := f.qr.r, f.qr.c
	d := f.qr.data
	q := newDenseLike(f.qr, m, n)
	x := q.data

	var (
		i, j, k int
		s       float64
	)
	for k = n - 1; k >= 0; k-- {
		for i = 0; i < m; i++ {
			x[i*n+k] = 0.0
		}
		x[k*n+k] = 1.0
		if d[k*n+k] == 0 {
			continue // skipped reflector (zero column)
		}
		for j = k; j < n; j++ {
			s = ZeroSum
			for i = k; i < m; i++ {
				s += d[i*n+k] * x[i*n+j]
			}
			s = -s / d[k*n+k]
			for i = k; i < m; i++ {
				x[i*n+j] += s * d[i*n+k]
			}
		}
	}

	return q
}

// Solve returns the n×count least-squares solution X minimizing ‖A·X − B‖₂.
//
// Implementation:
//   - Stage 1: Y = Qᵀ·B by applying each reflector to a private copy of B.
//   - Stage 2: back substitution R·X = Y with rdiag on the diagonal.
//   - Stage 3: keep the leading n rows.
//
// Errors:
//   - ErrDimensionMismatch when B.Rows != A.Rows.
//   - ErrRankDeficient when !IsFullRank().
func (f *QR) Solve(b Matrix) (*Dense, error) {
	if err := ValidateSameRows(b, f.qr.r); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	if !f.IsFullRank() {
		return nil, matrixErrorf(opQR, ErrRankDeficient)
	}
	x, err := denseCopy(b)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	m, n := f.qr.r, f.qr.c
	count := x.c
	d, xd := f.qr.data, x.data
	var (
		i, j, k int
		s       float64
	)

	// Compute Y = transpose(Q)·B.
	for k = 0; k < n; k++ {
		for j = 0; j < count; j++ {
			s = ZeroSum
			for i = k; i < m; i++ {
				s += d[i*n+k] * xd[i*count+j]
			}
			s = -s / d[k*n+k]
			for i = k; i < m; i++ {
				xd[i*count+j] += s * d[i*n+k]
			}
		}
	}

	// Solve R·X = Y.
	for k = n - 1; k >= 0; k-- {
		for j = 0; j < count; j++ {
			xd[k*count+j] /= f.rdiag[k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < count; j++ {
				xd[i*count+j] -= xd[k*count+j] * d[i*n+k]
			}
		}
	}

	if n == 0 || count == 0 {
		return newDenseLike(x, n, count), nil
	}

	return x.Submatrix(0, n-1, 0, count-1)
}
