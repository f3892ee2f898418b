// SPDX-License-Identifier: MIT
// Package matrix: copy-based submatrix extraction.
//
// Purpose:
//   - Materialize rectangular selections of a Dense with independent storage.
//   - Support both inclusive index ranges and explicit index lists; lists may be
//     unordered and may repeat an index, which is how LU applies its row
//     permutation to a right-hand side.
//
// Policy:
//   - Every index is validated before any allocation; a bad index is an argument
//     error (ErrOutOfRange / ErrBadRange), never a silent clamp.

package matrix

const (
	opSubmatrix    = "Submatrix"
	opVectorAt     = "VectorAt"
	opVectorAcross = "VectorAcross"
)

// Submatrix copies rows i0..i1 and columns j0..j1 (both ranges inclusive).
//
// Errors:
//   - ErrBadRange when i0 > i1 or j0 > j1.
//   - ErrOutOfRange when a bound lies outside the matrix.
//
// Complexity: O((i1-i0+1)*(j1-j0+1)).
func (m *Dense) Submatrix(i0, i1, j0, j1 int) (*Dense, error) {
	if err := ValidateRange(i0, i1, m.r); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateRange(j0, j1, m.c); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	w := j1 - j0 + 1
	out := newDenseLike(m, i1-i0+1, w)
	for i := i0; i <= i1; i++ {
		copy(out.data[(i-i0)*w:(i-i0+1)*w], m.data[i*m.c+j0:i*m.c+j1+1])
	}

	return out, nil
}

// SubmatrixIdx copies the cells selected by the explicit row and column lists:
// out[a,b] = m[rows[a], cols[b]].
func (m *Dense) SubmatrixIdx(rows, cols []int) (*Dense, error) {
	if err := ValidateIndices(rows, m.r); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndices(cols, m.c); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	w := len(cols)
	out := newDenseLike(m, len(rows), w)
	var a, b, base int
	for a = range rows {
		base = rows[a] * m.c
		for b = range cols {
			out.data[a*w+b] = m.data[base+cols[b]]
		}
	}

	return out, nil
}

// SubmatrixRowRange copies rows i0..i1 (inclusive) restricted to the column list cols.
func (m *Dense) SubmatrixRowRange(i0, i1 int, cols []int) (*Dense, error) {
	if err := ValidateRange(i0, i1, m.r); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndices(cols, m.c); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	w := len(cols)
	out := newDenseLike(m, i1-i0+1, w)
	var i, b, base int
	for i = i0; i <= i1; i++ {
		base = i * m.c
		for b = range cols {
			out.data[(i-i0)*w+b] = m.data[base+cols[b]]
		}
	}

	return out, nil
}

// SubmatrixColRange copies the rows listed in rows restricted to columns j0..j1
// (inclusive). With rows set to a permutation this performs a row shuffle.
func (m *Dense) SubmatrixColRange(rows []int, j0, j1 int) (*Dense, error) {
	if err := ValidateIndices(rows, m.r); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateRange(j0, j1, m.c); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	w := j1 - j0 + 1
	out := newDenseLike(m, len(rows), w)
	for a, i := range rows {
		copy(out.data[a*w:(a+1)*w], m.data[i*m.c+j0:i*m.c+j1+1])
	}

	return out, nil
}

// VectorAt gathers column j at the listed rows: out[a] = m[rows[a], j].
func (m *Dense) VectorAt(rows []int, j int) ([]float64, error) {
	if err := ValidateIndices(rows, m.r); err != nil {
		return nil, matrixErrorf(opVectorAt, err)
	}
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opVectorAt, denseErrorf(ctxCol, 0, j, ErrOutOfRange))
	}

	out := make([]float64, len(rows))
	for a, i := range rows {
		out[a] = m.data[i*m.c+j]
	}

	return out, nil
}

// VectorAcross gathers row i at the listed columns: out[b] = m[i, cols[b]].
func (m *Dense) VectorAcross(i int, cols []int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opVectorAcross, denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	if err := ValidateIndices(cols, m.c); err != nil {
		return nil, matrixErrorf(opVectorAcross, err)
	}

	out := make([]float64, len(cols))
	base := i * m.c
	for b, j := range cols {
		out[b] = m.data[base+j]
	}

	return out, nil
}
