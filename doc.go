// Package densela is a small dense linear-algebra toolkit: a row-major float64
// matrix, the three classical factorizations, least-squares fitting on top of
// them and a command-line front end.
//
// What is inside?
//
//	matrix/         Dense type, arithmetic, norms, submatrix extraction,
//	                LU (partial pivoting), QR (Householder), Cholesky
//	fit/            polynomial and general linear least squares via QR
//	cmd/densela/    `densela solve` and `densela fit` over JSON input files
//	examples/       worked scenarios (mesh currents, leveling, calibration)
//
// Error model
//
//	Every failure is a sentinel from the matrix package, wrapped with the name
//	of the operation that produced it. Malformed input matches
//	matrix.ErrInvalidArgument; a well-formed input on which the operation is
//	undefined (singular, rank deficient, indefinite, non-square) matches
//	matrix.ErrInvalidOperation.
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{1}, {2}})
//	lu, _ := matrix.NewLU(a)
//	x, err := lu.Solve(b)
//
// Pure Go, no cgo. The library never logs; only the CLI writes to stderr.
package densela
