// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/require"
)

func TestQR_Factors(t *testing.T) {
	cases := map[string]*matrix.Dense{
		"classic 3x3": MustRows(t, [][]float64{{12, -51, 4}, {6, 167, -68}, {-4, 24, -41}}),
		"tall 7x4":    RandFilledDense(t, 7, 4, 11),
		"column 5x1":  RandFilledDense(t, 5, 1, 12),
	}
	for name, a := range cases {
		a := a
		t.Run(name, func(t *testing.T) {
			qr, err := matrix.NewQR(a)
			require.NoError(t, err)
			require.True(t, qr.IsFullRank())

			q := qr.OrthogonalFactor()
			r := qr.UpperTriangularFactor()
			require.Equal(t, a.Rows(), q.Rows())
			require.Equal(t, a.Cols(), q.Cols())
			require.Equal(t, a.Cols(), r.Rows())
			require.Equal(t, a.Cols(), r.Cols())

			// orthonormal columns
			CompareClose(t, IdentityRows(a.Cols()), MustMul(t, q.Transpose(), q), 0, 1e-12)
			// upper triangular with the signed diagonal
			diag := qr.RDiag()
			for i := 0; i < r.Rows(); i++ {
				require.Equal(t, diag[i], MustAt(t, r, i, i))
				for j := 0; j < i; j++ {
					require.Zero(t, MustAt(t, r, i, j))
				}
			}
			scale := a.FrobeniusNorm()
			CompareClose(t, a.RowsCopy(), MustMul(t, q, r), 0, 1e-12*scale)
		})
	}
}

func TestQR_LeastSquaresLine(t *testing.T) {
	// best line through (0,6), (1,0), (2,0) is 5 − 3t
	a := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})
	b := MustColumn(t, 6, 0, 0)

	qr, err := matrix.NewQR(a)
	require.NoError(t, err)
	x, err := qr.Solve(b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{5}, {-3}}, x, 0, 1e-12)

	// the residual is orthogonal to the column space
	res, err := matrix.Residual(a, x, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0}, {0}}, MustMul(t, a.Transpose(), res), 0, 1e-12)
	require.InDelta(t, math.Sqrt(6), res.FrobeniusNorm(), 1e-12)
}

func TestQR_ExactSquareSystemMatchesLU(t *testing.T) {
	a := MustRows(t, [][]float64{{8.1, 2.3, -1.5}, {0.5, -6.23, 0.87}, {2.5, 1.5, 10.2}})
	b := MustColumn(t, 6.1, 2.3, 1.8)

	qr, err := matrix.NewQR(a)
	require.NoError(t, err)
	xq, err := qr.Solve(b)
	require.NoError(t, err)

	lu, err := matrix.NewLU(a)
	require.NoError(t, err)
	xl, err := lu.Solve(b)
	require.NoError(t, err)

	CompareClose(t, xl.RowsCopy(), xq, 0, 1e-9)

	res, err := matrix.Residual(a, xl, b)
	require.NoError(t, err)
	require.Less(t, res.FrobeniusNorm(), 1e-12)
}

func TestQR_RankDeficient(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 0}, {2, 0}, {3, 0}})
	qr, err := matrix.NewQR(a)
	require.NoError(t, err)
	require.False(t, qr.IsFullRank())

	_, err = qr.Solve(MustColumn(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrRankDeficient)
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)

	// factors are still available for inspection
	q := qr.OrthogonalFactor()
	CompareClose(t, a.RowsCopy(), MustMul(t, q, qr.UpperTriangularFactor()), 0, 1e-12)
}

func TestQR_ShapeErrors(t *testing.T) {
	_, err := matrix.NewQR(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewQR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	qr, err := matrix.NewQR(MustRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}}))
	require.NoError(t, err)
	_, err = qr.Solve(MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestQR_EmptyRightHandSide(t *testing.T) {
	qr, err := matrix.NewQR(MustRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}}))
	require.NoError(t, err)

	x, err := qr.Solve(MustDense(t, 3, 0))
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 0, x.Cols())
}
