// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densela/matrix"
)

const opLinear = "Linear"

// Result is the outcome of a linear least-squares fit.
type Result struct {
	// Coefficients holds one entry per design column.
	Coefficients []float64
	// Residuals holds observations − design·Coefficients, one per row.
	Residuals []float64
	// RSS is the residual sum of squares.
	RSS float64
}

// ResidualNorm returns the Euclidean norm of the residual vector.
func (r *Result) ResidualNorm() float64 { return math.Sqrt(r.RSS) }

// Linear solves min ‖design·c − observations‖₂ for c.
//
// design must have at least as many rows as columns and exactly one row per
// observation. Errors: ErrBadSamples on a length mismatch or an
// underdetermined design; matrix errors (ErrRankDeficient, ErrNaNInf, ...)
// are wrapped unchanged.
func Linear(design matrix.Matrix, observations []float64) (*Result, error) {
	if err := matrix.ValidateNotNil(design); err != nil {
		return nil, fitErrorf(opLinear, err)
	}
	rows, cols := design.Rows(), design.Cols()
	if len(observations) != rows {
		return nil, fitErrorf(opLinear,
			fmt.Errorf("%d observations for %d design rows: %w", len(observations), rows, ErrBadSamples))
	}
	if rows < cols {
		return nil, fitErrorf(opLinear,
			fmt.Errorf("%d observations for %d unknowns: %w", rows, cols, ErrBadSamples))
	}

	b, err := column(observations)
	if err != nil {
		return nil, fitErrorf(opLinear, err)
	}
	qr, err := matrix.NewQR(design)
	if err != nil {
		return nil, fitErrorf(opLinear, err)
	}
	x, err := qr.Solve(b)
	if err != nil {
		return nil, fitErrorf(opLinear, err)
	}
	res, err := matrix.Residual(design, x, b)
	if err != nil {
		return nil, fitErrorf(opLinear, err)
	}

	out := &Result{
		Coefficients: flatColumn(x),
		Residuals:    flatColumn(res),
	}
	for _, r := range out.Residuals {
		out.RSS += r * r
	}

	return out, nil
}

// column wraps v as a len(v)×1 matrix.
func column(v []float64) (*matrix.Dense, error) {
	rows := make([][]float64, len(v))
	for i, x := range v {
		rows[i] = []float64{x}
	}
	if len(v) == 0 {
		return matrix.NewDense(0, 1)
	}

	return matrix.NewDenseFromRows(rows)
}

// flatColumn returns the first column of m.
func flatColumn(m *matrix.Dense) []float64 {
	if m.Cols() == 0 {
		return make([]float64, m.Rows())
	}
	c, _ := m.Col(0)

	return c
}
