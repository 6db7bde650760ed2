// SPDX-License-Identifier: MIT
// Package matrix: Cholesky factorization of symmetric positive-definite
// matrices. The lower factor L (A = L·Lᵀ) is the standard way to draw
// correlated samples z = L·g from N(0, A), which the Gower-rescaling tests
// rely on.

package matrix

import "math"

// opCholesky tags factorization errors.
const opCholesky = "Cholesky"

// cholSymTol is the symmetry tolerance applied before factorization.
// Kept explicit to avoid magic numbers inline.
const cholSymTol = 1e-10

// Cholesky computes the lower-triangular factor L with A = L·Lᵀ.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, square, symmetric within cholSymTol).
//   - Stage 2: Column-by-column outer-product factorization, reading only
//     the lower triangle of A (deterministic j→i→k loops).
//
// Inputs:
//   - a: symmetric positive-definite Matrix (n×n).
//
// Returns:
//   - *Dense: lower-triangular L (entries above the diagonal are zero).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry from validation.
//   - ErrNotPositiveDefinite when a pivot d ≤ 0 is encountered (no
//     pivoting by design — deterministic failure instead of reordering).
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(a Matrix) (*Dense, error) {
	// Stage 1: Validate input.
	if err := ValidateSymmetric(a, cholSymTol); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := a.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	// Stage 2: Factorize column by column.
	var (
		i, j, k  int
		sum, d   float64
		ajj, aij float64
	)
	for j = 0; j < n; j++ {
		// Pivot: d = A[j,j] - Σ_k L[j,k]².
		ajj, _ = a.At(j, j) // bounds ensured after validation
		sum = 0.0
		for k = 0; k < j; k++ {
			sum += L.data[j*n+k] * L.data[j*n+k]
		}
		d = ajj - sum
		if d <= 0 {
			return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		L.data[j*n+j] = math.Sqrt(d)

		// Column below the pivot: L[i,j] = (A[i,j] - Σ_k L[i,k]·L[j,k]) / L[j,j].
		invPivot := 1.0 / L.data[j*n+j]
		for i = j + 1; i < n; i++ {
			aij, _ = a.At(i, j)
			sum = 0.0
			for k = 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			L.data[i*n+j] = (aij - sum) * invPivot
		}
	}

	return L, nil
}
