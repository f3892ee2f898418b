// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction, negation,
// scalar scaling and matrix multiplication on any Matrix implementation.
// All functions perform strict fail-fast validation and return clear errors on
// dimension mismatches. Results are always freshly allocated *Dense values;
// operands are never mutated (the *InPlace methods are the explicit exception).
//
// Determinism:
//   - Fixed loop orders; *Dense operands take a single flat-slice pass.
//   - Non-Dense operands are materialized once via asDense, so every kernel
//     has exactly one loop body.

package matrix

// ZeroSum is the initial value for dot products and substitution sums.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opNegate = "Negate"
	opScale  = "Scale"
	opMul    = "Mul"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..r*c-1 into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseLike(da, da.r, da.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Negate returns -m.
func Negate(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	res := newDenseLike(d, d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = -v
	}

	return res, nil
}

// Scale returns a new matrix whose elements are s * m[i,j].
func Scale(m Matrix, s float64) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if d.validateNaNInf && isNonFinite(s) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	res := newDenseLike(d, d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = v * s
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides. Every term is accumulated, so
//     0·Inf and 0·NaN yield NaN as in the plain triple sum.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDenseLike(da, aRows, bCols)
	var (
		i, k, j                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// AddInPlace performs m += b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is untouched on error.
func (m *Dense) AddInPlace(b Matrix) error { return m.addSubInPlace(b, +1, opAdd) }

// SubInPlace performs m -= b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is untouched on error.
func (m *Dense) SubInPlace(b Matrix) error { return m.addSubInPlace(b, -1, opSub) }

func (m *Dense) addSubInPlace(b Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * db.data[idx]
	}

	return nil
}

// ScaleInPlace multiplies every element of m by s.
func (m *Dense) ScaleInPlace(s float64) error {
	if m.validateNaNInf && isNonFinite(s) {
		return matrixErrorf(opScale, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] *= s
	}

	return nil
}
