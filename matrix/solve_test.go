// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseSolveDispatch(t *testing.T) {
	t.Run("square uses LU", func(t *testing.T) {
		a := MustRows(t, [][]float64{{0.03, 58.9}, {5.31, -6.10}})
		x, err := a.Solve(MustColumn(t, 59.2, 47.0))
		require.NoError(t, err)
		CompareClose(t, [][]float64{{10}, {1}}, x, 0, 1e-10)
	})

	t.Run("tall uses QR", func(t *testing.T) {
		a := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
		x, err := a.Solve(MustColumn(t, 1, 3, 5, 7))
		require.NoError(t, err)
		CompareClose(t, [][]float64{{1}, {2}}, x, 0, 1e-12)
	})

	t.Run("wide is rejected", func(t *testing.T) {
		_, err := MustDense(t, 2, 3).Solve(MustDense(t, 2, 1))
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("singular", func(t *testing.T) {
		_, err := MustRows(t, [][]float64{{1, 2}, {2, 4}}).Solve(MustColumn(t, 1, 2))
		require.ErrorIs(t, err, matrix.ErrSingular)
	})
}

func TestInverse(t *testing.T) {
	a := MustRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := a.Inverse()
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 0, 1e-12)
	CompareClose(t, IdentityRows(2), MustMul(t, a, inv), 0, 1e-12)

	r := RandFilledDense(t, 6, 6, 31)
	rinv, err := matrix.Inverse(r)
	require.NoError(t, err)
	CompareClose(t, IdentityRows(6), MustMul(t, rinv, r), 0, 1e-8)

	_, err = MustRows(t, [][]float64{{1, 2}, {2, 4}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestPseudoInverse(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 0}, {0, 1}, {0, 0}})
	pinv, err := a.Inverse()
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, pinv, 0, 1e-12)

	tall := RandFilledDense(t, 8, 3, 99)
	p, err := tall.Inverse()
	require.NoError(t, err)
	require.Equal(t, 3, p.Rows())
	require.Equal(t, 8, p.Cols())
	CompareClose(t, IdentityRows(3), MustMul(t, p, tall), 0, 1e-10)
}

func TestDeterminantFacades(t *testing.T) {
	det, err := matrix.Determinant(MustRows(t, [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}))
	require.NoError(t, err)
	assert.InDelta(t, -306.0, det, 1e-9)

	_, err = MustDense(t, 2, 3).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolveFacadeAndResidual(t *testing.T) {
	a := MustRows(t, [][]float64{{8.1, 2.3, -1.5}, {0.5, -6.23, 0.87}, {2.5, 1.5, 10.2}})
	b := MustColumn(t, 6.1, 2.3, 1.8)

	x, err := matrix.Solve(hide{a}, b)
	require.NoError(t, err)

	res, err := matrix.Residual(a, x, b)
	require.NoError(t, err)
	assert.Less(t, res.InfinityNorm(), 1e-12)

	_, err = matrix.Solve(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestConstructorFacades(t *testing.T) {
	src := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	z, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, z)

	id, err := matrix.IdentityLike(src)
	require.NoError(t, err)
	CompareExact(t, IdentityRows(2), id)
	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	tr, err := matrix.Transpose(hide{src})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {2, 4}}, tr)

	p, err := matrix.Product(src, src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{7, 10}, {15, 22}}, p)

	cl := matrix.CloneMatrix(src)
	MustSet(t, cl, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, src, 0, 0))

	zeros, err := matrix.NewZeros(1, 3)
	require.NoError(t, err)
	require.Equal(t, 3, zeros.Cols())
}

func TestConstructorFacadesInheritPolicy(t *testing.T) {
	lax, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	z, err := matrix.ZerosLike(lax)
	require.NoError(t, err)
	require.NoError(t, z.Set(0, 0, math.NaN()))

	id, err := matrix.IdentityLike(lax)
	require.NoError(t, err)
	CompareExact(t, IdentityRows(2), id)
	require.NoError(t, id.Set(1, 1, math.Inf(1)))

	strict := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	zs, err := matrix.ZerosLike(strict)
	require.NoError(t, err)
	require.ErrorIs(t, zs.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	ids, err := matrix.IdentityLike(strict)
	require.NoError(t, err)
	require.ErrorIs(t, ids.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestRandom(t *testing.T) {
	a, err := matrix.Random(3, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := matrix.Random(3, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, b))

	for _, row := range a.RowsCopy() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}

	d1, err := matrix.Random(2, 2, nil)
	require.NoError(t, err)
	d2, err := matrix.Random(2, 2, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(d1, d2))

	_, err = matrix.Random(-1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 100}})
	b := MustRows(t, [][]float64{{1.05, 101}})

	ok, err := matrix.AllClose(a, b, 0, 0.01)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, 0.05, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, 0, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	require.False(t, matrix.Equal(a, nil))
}
