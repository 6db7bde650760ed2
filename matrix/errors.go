// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are never returned bare from public
// operations; call sites wrap them with an operation tag via matrixErrorf so
// errors.Is still matches.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (e.g., rows<=0 or cols<=0 at construction).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g., Add/Sub with different shapes, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (tolerances, clip bounds).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEigenFailed indicates that the Jacobi routine failed to converge
	// under the given tolerance/iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive
	// pivot is encountered, i.e. the input is not SPD within roundoff.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")
)

// matrixErrorf wraps an underlying error with the given operation tag.
// The sentinel stays reachable through errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
