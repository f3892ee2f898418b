// SPDX-License-Identifier: MIT
package fit_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/densela/fit"
	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approx(tol float64) cmp.Option { return cmpopts.EquateApprox(0, tol) }

func TestPolynomial_RecoversExactCoefficients(t *testing.T) {
	tests := []struct {
		name string
		coef []float64
	}{
		{"constant", []float64{4}},
		{"line", []float64{1, 2}},
		{"quadratic", []float64{-1, 0.5, 3}},
		{"cubic", []float64{2, -1, 0, 0.25}},
	}
	xs := []float64{-2, -1, -0.5, 0, 0.5, 1, 1.5, 2, 3}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ys := make([]float64, len(xs))
			for i, x := range xs {
				for k := len(tc.coef) - 1; k >= 0; k-- {
					ys[i] = ys[i]*x + tc.coef[k]
				}
			}

			p, err := fit.Polynomial(xs, ys, len(tc.coef)-1)
			require.NoError(t, err)
			require.Equal(t, len(tc.coef)-1, p.Degree())
			if diff := cmp.Diff(tc.coef, p.Coefficients(), approx(1e-10)); diff != "" {
				t.Fatalf("coefficients (-want +got):\n%s", diff)
			}
			assert.InDelta(t, 0, p.RSS(), 1e-18)
			assert.InDelta(t, ys[3], p.Eval(xs[3]), 1e-10)
		})
	}
}

func TestPolynomial_LeastSquaresLine(t *testing.T) {
	p, err := fit.Polynomial([]float64{0, 1, 2}, []float64{6, 0, 0}, 1)
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{5, -3}, p.Coefficients(), approx(1e-12)); diff != "" {
		t.Fatalf("coefficients (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 6.0, p.RSS(), 1e-12)
	assert.InDelta(t, -1.0, p.Eval(2), 1e-12)
	assert.Contains(t, p.String(), "·x")
}

func TestPolynomial_Errors(t *testing.T) {
	_, err := fit.Polynomial([]float64{1, 2}, []float64{1}, 1)
	require.ErrorIs(t, err, fit.ErrBadSamples)

	_, err = fit.Polynomial([]float64{1, 2}, []float64{1, 2}, 2)
	require.ErrorIs(t, err, fit.ErrBadSamples)

	_, err = fit.Polynomial([]float64{1, 2}, []float64{1, 2}, -1)
	require.ErrorIs(t, err, fit.ErrBadDegree)

	// every abscissa is zero: the linear term vanishes
	_, err = fit.Polynomial([]float64{0, 0, 0}, []float64{1, 2, 3}, 1)
	require.ErrorIs(t, err, matrix.ErrRankDeficient)
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)

	_, err = fit.Polynomial([]float64{0, math.Inf(1)}, []float64{1, 2}, 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestPoly_CoefficientsAreCopied(t *testing.T) {
	p, err := fit.Polynomial([]float64{0, 1, 2}, []float64{1, 2, 5}, 2)
	require.NoError(t, err)

	c := p.Coefficients()
	require.Len(t, c, 3)
	assert.InDelta(t, 1, c[0], 1e-12)
	assert.InDelta(t, 0, c[1], 1e-12)
	assert.InDelta(t, 1, c[2], 1e-12)

	c[0] = 100
	assert.InDelta(t, 1, p.Coefficients()[0], 1e-12)
}

func TestLinear(t *testing.T) {
	design, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {1, 1}, {1, 2}})
	require.NoError(t, err)

	res, err := fit.Linear(design, []float64{6, 0, 0})
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{5, -3}, res.Coefficients, approx(1e-12)); diff != "" {
		t.Fatalf("coefficients (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, -2, 1}, res.Residuals, approx(1e-12)); diff != "" {
		t.Fatalf("residuals (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 6, res.RSS, 1e-12)
	assert.InDelta(t, math.Sqrt(6), res.ResidualNorm(), 1e-12)
}

func TestLinear_Errors(t *testing.T) {
	design, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {1, 1}, {1, 2}})
	require.NoError(t, err)

	_, err = fit.Linear(design, []float64{1, 2})
	require.ErrorIs(t, err, fit.ErrBadSamples)

	wide, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	_, err = fit.Linear(wide, []float64{1})
	require.ErrorIs(t, err, fit.ErrBadSamples)

	_, err = fit.Linear(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = fit.Linear(design, []float64{1, math.NaN(), 2})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
