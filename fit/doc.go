// Package fit provides least-squares curve fitting on top of the matrix
// package's Householder QR solver.
//
// Polynomial builds a Vandermonde design matrix from sample points and returns
// the coefficient vector (lowest order first). Linear accepts an arbitrary
// design matrix and reports coefficients together with the residual vector.
//
// Rank problems surface from the solver unchanged, so callers can match
// matrix.ErrRankDeficient with errors.Is.
package fit
