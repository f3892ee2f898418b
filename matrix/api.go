// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points that accept any Matrix implementation.
//   - Each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// A *Dense operand passes its numeric policy on to the result.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	if d, ok := m.(*Dense); ok {
		return newDenseLike(d, d.r, d.c), nil
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	if d, ok := m.(*Dense); ok {
		id := newDenseLike(d, d.r, d.r)
		for i := 0; i < d.r; i++ {
			id.data[i*d.r+i] = 1
		}

		return id, nil
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra ----------

// Transpose returns mᵀ for any Matrix.
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}

	return d.Transpose(), nil
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// Solve solves a·X = b: LU for square a, QR least squares otherwise.
func Solve(a, b Matrix) (*Dense, error) {
	d, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return d.Solve(b)
}

// Inverse returns a⁻¹ (square) or the least-squares pseudoinverse (tall).
func Inverse(a Matrix) (*Dense, error) {
	d, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return d.Inverse()
}

// Determinant returns det(a) via LU. Errors: ErrNonSquare.
func Determinant(a Matrix) (float64, error) {
	d, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return d.Determinant()
}

// Residual returns b − a·x, the defect of a candidate solution.
func Residual(a, x, b Matrix) (*Dense, error) {
	ax, err := Mul(a, x)
	if err != nil {
		return nil, matrixErrorf("Residual", err)
	}

	return Sub(b, ax)
}
