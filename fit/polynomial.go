// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densela/matrix"
)

const opPolynomial = "Polynomial"

// Poly is a fitted polynomial c0 + c1·x + … + cd·x^d.
type Poly struct {
	coef []float64
	rss  float64
}

// Polynomial fits a degree-d polynomial to the samples (xs[i], ys[i]) in the
// least-squares sense. It needs at least degree+1 samples.
//
// Errors:
//   - ErrBadDegree for degree < 0.
//   - ErrBadSamples for len(xs) != len(ys) or too few samples.
//   - matrix.ErrRankDeficient when the abscissae do not separate the terms
//     (e.g. repeated x values).
func Polynomial(xs, ys []float64, degree int) (Poly, error) {
	if degree < 0 {
		return Poly{}, fitErrorf(opPolynomial, fmt.Errorf("degree %d: %w", degree, ErrBadDegree))
	}
	if len(xs) != len(ys) {
		return Poly{}, fitErrorf(opPolynomial,
			fmt.Errorf("%d x values, %d y values: %w", len(xs), len(ys), ErrBadSamples))
	}
	if len(xs) < degree+1 {
		return Poly{}, fitErrorf(opPolynomial,
			fmt.Errorf("%d samples for degree %d: %w", len(xs), degree, ErrBadSamples))
	}

	v, err := vandermonde(xs, degree)
	if err != nil {
		return Poly{}, fitErrorf(opPolynomial, err)
	}
	res, err := Linear(v, ys)
	if err != nil {
		return Poly{}, fitErrorf(opPolynomial, err)
	}

	return Poly{coef: res.Coefficients, rss: res.RSS}, nil
}

// vandermonde returns the len(xs)×(degree+1) matrix V[i][k] = xs[i]^k.
func vandermonde(xs []float64, degree int) (*matrix.Dense, error) {
	v, err := matrix.NewDense(len(xs), degree+1)
	if err != nil {
		return nil, err
	}
	err = v.Apply(func(i, k int, _ float64) float64 {
		p := 1.0
		for e := 0; e < k; e++ {
			p *= xs[i]
		}
		return p
	})

	return v, err
}

// Eval evaluates the polynomial at x (Horner's scheme).
func (p Poly) Eval(x float64) float64 {
	y := 0.0
	for k := len(p.coef) - 1; k >= 0; k-- {
		y = y*x + p.coef[k]
	}

	return y
}

// Coefficients returns a copy of the coefficients, lowest order first.
func (p Poly) Coefficients() []float64 {
	out := make([]float64, len(p.coef))
	copy(out, p.coef)

	return out
}

// Degree returns the fitted degree.
func (p Poly) Degree() int { return len(p.coef) - 1 }

// RSS returns the residual sum of squares of the fit.
func (p Poly) RSS() float64 { return p.rss }

// String renders the polynomial as "c0 + c1·x + c2·x^2".
func (p Poly) String() string {
	var b strings.Builder
	for k, c := range p.coef {
		if k > 0 {
			b.WriteString(" + ")
		}
		switch k {
		case 0:
			fmt.Fprintf(&b, "%g", c)
		case 1:
			fmt.Fprintf(&b, "%g·x", c)
		default:
			fmt.Fprintf(&b, "%g·x^%d", c, k)
		}
	}

	return b.String()
}
