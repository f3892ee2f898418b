// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and factorizations.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/densela/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the non-*Dense materialization path in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from row data or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustColumn builds an n×1 *Dense from a vector.
func MustColumn(t testing.TB, v ...float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, len(v), 1)
	for i, x := range v {
		MustSet(t, m, i, 0, x)
	}

	return m
}

// RandFilledDense returns an r×c *Dense with deterministic U(-1,1) values.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	if err := m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	return m
}

// SPDDense returns a deterministic symmetric positive-definite n×n matrix
// built as MᵀM + n·I.
func SPDDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	a, err := matrix.Mul(m.Transpose(), m)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	for i := 0; i < n; i++ {
		v := MustAt(t, a, i, i)
		MustSet(t, a, i, i, v+float64(n))
	}

	return a
}

// MustSet writes m[i,j]=v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustMul returns a×b or fails the test.
func MustMul(t testing.TB, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	p, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return p
}

// CompareExact fails unless m holds exactly the values in want.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, m.RowsCopy(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareClose fails unless got matches want element-wise within atol
// (absolute) or rtol (relative).
func CompareClose(t testing.TB, want [][]float64, got *matrix.Dense, rtol, atol float64) {
	t.Helper()
	opt := cmpopts.EquateApprox(rtol, atol)
	if diff := cmp.Diff(want, got.RowsCopy(), opt, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareSliceClose is CompareClose for vectors.
func CompareSliceClose(t testing.TB, want, got []float64, atol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// IdentityRows returns the n×n identity as row data.
func IdentityRows(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}

	return out
}

// ExpectPanic fails unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
