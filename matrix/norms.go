// SPDX-License-Identifier: MIT
// Package matrix: norms, trace and the overflow-safe hypotenuse.

package matrix

import "math"

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// Norm1 returns the maximum absolute column sum.
// An empty matrix has norm 0.
func (m *Dense) Norm1() float64 {
	f := NormZero
	var i, j int
	var s float64
	for j = 0; j < m.c; j++ {
		s = NormZero
		for i = 0; i < m.r; i++ {
			s += math.Abs(m.data[i*m.c+j])
		}
		f = math.Max(f, s)
	}

	return f
}

// InfinityNorm returns the maximum absolute row sum.
func (m *Dense) InfinityNorm() float64 {
	f := NormZero
	var i, j, base int
	var s float64
	for i = 0; i < m.r; i++ {
		s = NormZero
		base = i * m.c
		for j = 0; j < m.c; j++ {
			s += math.Abs(m.data[base+j])
		}
		f = math.Max(f, s)
	}

	return f
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²), accumulated with hypot so that no
// intermediate square overflows or underflows.
func (m *Dense) FrobeniusNorm() float64 {
	f := NormZero
	for _, v := range m.data {
		f = hypot(f, v)
	}

	return f
}

// Trace returns the sum of the min(rows, cols) leading diagonal entries.
func (m *Dense) Trace() float64 {
	t := ZeroSum
	n := min(m.r, m.c)
	for i := 0; i < n; i++ {
		t += m.data[i*m.c+i]
	}

	return t
}

// hypot computes sqrt(a²+b²) without destructive underflow or overflow by
// factoring out the larger magnitude. hypot(0, 0) == 0.
func hypot(a, b float64) float64 {
	if math.Abs(a) > math.Abs(b) {
		r := b / a
		return math.Abs(a) * math.Sqrt(1+r*r)
	}
	if b != 0 {
		r := a / b
		return math.Abs(b) * math.Sqrt(1+r*r)
	}

	return 0.0
}
