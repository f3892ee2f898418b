// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/densela/matrix"
)

// systemFile is the on-disk form of a linear system a·x = b.
type systemFile struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`
}

// pointsFile is the on-disk form of a sample set for fitting.
type pointsFile struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// readJSON decodes path into v, rejecting unknown fields.
func readJSON(path string, v any) error {
	if path == "" {
		return fmt.Errorf("missing -in: %w", errUsage)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

// loadSystem reads a system file and builds both operands.
func loadSystem(path string) (a, b *matrix.Dense, err error) {
	var sf systemFile
	if err = readJSON(path, &sf); err != nil {
		return nil, nil, err
	}
	if a, err = matrix.NewDenseFromRows(sf.A); err != nil {
		return nil, nil, fmt.Errorf("a: %w", err)
	}
	if b, err = matrix.NewDenseFromRows(sf.B); err != nil {
		return nil, nil, fmt.Errorf("b: %w", err)
	}

	return a, b, nil
}

// loadPoints reads a points file.
func loadPoints(path string) (xs, ys []float64, err error) {
	var pf pointsFile
	if err = readJSON(path, &pf); err != nil {
		return nil, nil, err
	}

	return pf.X, pf.Y, nil
}
