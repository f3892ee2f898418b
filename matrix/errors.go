// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels and decompositions MUST return these sentinels (possibly
// wrapped with an operation tag) and tests MUST check them via errors.Is.
// No routine panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON CLASSES
// ---------------
// Two root classes mirror the failure taxonomy of the solvers:
//
//   - ErrInvalidArgument: the caller handed in something malformed (ragged rows,
//     bad index, mismatched shapes). Detected immediately, never truncated or padded.
//   - ErrInvalidOperation: the input is well-formed but the requested operation is
//     not defined for it (singular system, rank deficiency, non-square determinant).
//     Factorizations always complete; these surface at Solve/Determinant time.
//
// Every concrete sentinel wraps exactly one root, so both
// errors.Is(err, ErrSingular) and errors.Is(err, ErrInvalidOperation) hold.

var (
	// ErrInvalidArgument is the root of all argument/dimension errors.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidOperation is the root of all structural precondition failures.
	ErrInvalidOperation = errors.New("matrix: invalid operation")
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = argumentError("dimensions must be >= 0")

	// ErrRaggedRows is returned when row data passed to a constructor has rows of
	// different lengths.
	ErrRaggedRows = argumentError("rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = argumentError("index out of range")

	// ErrBadRange signals an inclusive index range with start > end.
	ErrBadRange = argumentError("range start exceeds range end")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a right-hand
	// side whose row count differs from the factored matrix.
	ErrDimensionMismatch = argumentError("dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = argumentError("nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required by
	// the numeric policy (constructors, Set, tolerances).
	ErrNaNInf = argumentError("NaN or Inf encountered")
)

var (
	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = operationError("matrix is not square")

	// ErrSingular is returned by LU.Solve when a pivot magnitude falls below the
	// singularity tolerance.
	ErrSingular = operationError("matrix is singular")

	// ErrRankDeficient is returned by QR.Solve when a Householder column vanished.
	ErrRankDeficient = operationError("matrix is rank deficient")

	// ErrNotSymmetric is returned by Cholesky.Solve for asymmetric input.
	ErrNotSymmetric = operationError("matrix is not symmetric")

	// ErrNotPositiveDefinite is returned by Cholesky.Solve for indefinite input.
	ErrNotPositiveDefinite = operationError("matrix is not positive definite")
)

func argumentError(msg string) error  { return fmt.Errorf("%w: %s", ErrInvalidArgument, msg) }
func operationError(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidOperation, msg) }

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
