// SPDX-License-Identifier: MIT
// Package matrix: dispatching solvers on *Dense.
//
// Square systems go through LU with partial pivoting; any other shape goes
// through Householder QR and yields the least-squares solution. Inverse reuses
// the same dispatch against an identity right-hand side, so a tall matrix
// gets its pseudoinverse.

package matrix

const (
	opSolve       = "Solve"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
)

// Solve returns X with m·X = b (square m) or the least-squares X (tall m).
//
// Errors:
//   - ErrDimensionMismatch on a row mismatch (or a wide m for QR).
//   - ErrSingular / ErrRankDeficient from the selected factorization.
func (m *Dense) Solve(b Matrix) (*Dense, error) {
	if m.IsSquare() {
		f, err := NewLU(m)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		x, err := f.Solve(b)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}

		return x, nil
	}

	f, err := NewQR(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse returns m⁻¹ for square m and the pseudoinverse (cols×rows) otherwise.
func (m *Dense) Inverse() (*Dense, error) {
	id := newDenseLike(m, m.r, m.r)
	for i := 0; i < m.r; i++ {
		id.data[i*m.r+i] = 1.0
	}
	inv, err := m.Solve(id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Determinant returns det(m) computed through LU.
// Errors: ErrNonSquare.
func (m *Dense) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, matrixErrorf(opDeterminant, ErrNonSquare)
	}
	f, err := NewLU(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := f.Determinant()
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}
