// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/densela/matrix"
)

// Solver methods accepted by -method.
const (
	methodAuto     = "auto"
	methodLU       = "lu"
	methodQR       = "qr"
	methodCholesky = "cholesky"
)

// solveReport is everything the solve command prints.
type solveReport struct {
	Method      string          `json:"method"`
	Solution    [][]float64     `json:"solution"`
	Residual    float64         `json:"residual"`
	Determinant *float64        `json:"determinant,omitempty"`
	Flags       map[string]bool `json:"flags"`
}

func runSolve(e *env, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	in := fs.String("in", "", "system JSON file")
	method := fs.String("method", methodAuto, "auto, lu, qr or cholesky")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("solve: %v: %w", err, errUsage)
	}

	a, b, err := loadSystem(*in)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	rep, err := solveSystem(a, b, *method)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if *asJSON {
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printSolveReport(e, rep)

	return nil
}

// solveSystem factors a with the requested method and solves against b.
func solveSystem(a, b *matrix.Dense, method string) (*solveReport, error) {
	if method == methodAuto {
		method = methodQR
		if a.IsSquare() {
			method = methodLU
		}
	}
	rep := &solveReport{Method: method, Flags: map[string]bool{}}

	var (
		x   *matrix.Dense
		err error
	)
	switch method {
	case methodLU:
		var f *matrix.LU
		if f, err = matrix.NewLU(a); err != nil {
			return nil, err
		}
		rep.Flags["non-singular"] = f.IsNonSingular()
		x, err = f.Solve(b)
	case methodQR:
		var f *matrix.QR
		if f, err = matrix.NewQR(a); err != nil {
			return nil, err
		}
		rep.Flags["full-rank"] = f.IsFullRank()
		x, err = f.Solve(b)
	case methodCholesky:
		var f *matrix.Cholesky
		if f, err = matrix.NewCholesky(a); err != nil {
			return nil, err
		}
		rep.Flags["symmetric"] = f.IsSymmetric()
		rep.Flags["positive-definite"] = f.IsPositiveDefinite()
		x, err = f.Solve(b)
	default:
		return nil, fmt.Errorf("unknown method %q: %w", method, errUsage)
	}
	if err != nil {
		return nil, err
	}

	res, err := matrix.Residual(a, x, b)
	if err != nil {
		return nil, err
	}
	rep.Solution = x.RowsCopy()
	rep.Residual = res.FrobeniusNorm()
	if a.IsSquare() {
		det, derr := a.Determinant()
		if derr != nil {
			return nil, derr
		}
		rep.Determinant = &det
	}

	return rep, nil
}

// printSolveReport writes the human-readable report.
func printSolveReport(e *env, rep *solveReport) {
	p := e.p
	p.Fprintf(e.out, "method: %s\n", rep.Method)
	p.Fprintf(e.out, "solution:\n")
	for i, row := range rep.Solution {
		p.Fprintf(e.out, "  x[%d] =", i)
		for _, v := range row {
			p.Fprintf(e.out, " %.10g", v)
		}
		p.Fprintf(e.out, "\n")
	}
	p.Fprintf(e.out, "residual: %.3e\n", rep.Residual)
	if rep.Determinant != nil {
		p.Fprintf(e.out, "determinant: %.10g\n", *rep.Determinant)
	}
	for _, name := range []string{"non-singular", "full-rank", "symmetric", "positive-definite"} {
		if v, ok := rep.Flags[name]; ok {
			p.Fprintf(e.out, "%s: %t\n", name, v)
		}
	}
}
