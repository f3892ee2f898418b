// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/densela/fit"
)

// plot canvas size
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

func runFit(e *env, args []string) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	in := fs.String("in", "", "points JSON file")
	degree := fs.Int("degree", 1, "polynomial degree")
	out := fs.String("plot", "", "optional output image (.png, .svg, .pdf)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("fit: %v: %w", err, errUsage)
	}

	xs, ys, err := loadPoints(*in)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	poly, err := fit.Polynomial(xs, ys, *degree)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	p := e.p
	p.Fprintf(e.out, "degree: %d\n", poly.Degree())
	for k, c := range poly.Coefficients() {
		p.Fprintf(e.out, "  c[%d] = %.10g\n", k, c)
	}
	p.Fprintf(e.out, "rss: %.3e\n", poly.RSS())

	if *out != "" {
		if err = renderFit(*out, xs, ys, poly); err != nil {
			return fmt.Errorf("fit: plot: %w", err)
		}
		p.Fprintf(e.out, "plot: %s\n", *out)
	}

	return nil
}

// renderFit draws the samples and the fitted curve into path; the image
// format follows the file extension.
func renderFit(path string, xs, ys []float64, poly fit.Poly) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("degree %d least-squares fit", poly.Degree())
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	curve := plotter.NewFunction(poly.Eval)
	curve.Samples = 200

	pl.Add(sc, curve)
	pl.Legend.Add("samples", sc)
	pl.Legend.Add("fit", curve)

	return pl.Save(plotWidth, plotHeight, path)
}
