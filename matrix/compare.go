// SPDX-License-Identifier: MIT
// Package matrix: numeric comparison helpers.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - NaN != anything; +Inf equals +Inf; -Inf equals -Inf.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized to their absolute values.
//
// Errors:
//   - ErrNaNInf for a non-finite tolerance; ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if av == bv { // covers matching infinities
			continue
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) { // NaN fails here
			return false, nil
		}
	}

	return true, nil
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by at most the configured epsilon (WithEpsilon; default
// DefaultEpsilon). Nil or mismatched operands compare unequal.
func EqualApprox(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.eps)

	return err == nil && ok
}

// Equal reports exact element-wise equality of two same-shaped matrices.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, 0, 0)

	return err == nil && ok
}
