// SPDX-License-Identifier: MIT
// Package matrix: seeded random fill.
//
// The random source is always passed in explicitly; the package never holds a
// process-wide generator. math/rand.Rand is NOT goroutine-safe, so do not share
// one *rand.Rand across goroutines.

package matrix

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass a nil source.
const defaultRNGSeed int64 = 1

// Random returns a rows×cols matrix filled with uniform values in [0, 1) drawn
// from rng in row-major order. A nil rng uses a deterministic default stream,
// so Random(r, c, nil) is reproducible.
func Random(rows, cols int, rng *rand.Rand, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("Random", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	if err = m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }); err != nil {
		return nil, matrixErrorf("Random", err)
	}

	return m, nil
}
