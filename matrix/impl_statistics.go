// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics backing the kinship estimator:
//     centering, population z-scoring and sample covariance, expressed as
//     deterministic compositions over canonical kernels and ew* micro-kernels.
//
// Exposed API (via api.go facades):
//   - CenterColumns(X)      -> (Xc, means)        // subtract per-column mean
//   - StandardizeColumns(X) -> (Z, means, stds)   // population z-score, ddof=0
//   - Covariance(X)         -> (Cov, means)       // (Xcᵀ Xc)/(r-1)
//
// Numeric policy:
//   - StandardizeColumns does NOT guard zero-variance columns: a constant
//     column yields an infinite scale factor and the standardized entries
//     propagate as NaN (0·Inf). This mirrors the reference semantics of the
//     kinship estimator — callers must ensure features are non-constant, or
//     sanitize with ReplaceInfNaN afterwards.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops for centering.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opCenterColumns      = "CenterColumns"
	opStandardizeColumns = "StandardizeColumns"
	opCovariance         = "Covariance"
)

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Compute column means via the canonical reduction.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns the centered copy and the column means (len = Cols).
// Complexity: Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 1 (Zero-size policy): centering is a no-op when there are no elements.
	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return X, make([]float64, c), nil
	}

	// Stage 2 (Means): delegate to the canonical reduction.
	means, err := ColMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 3 (Apply): broadcast-subtract the means to build the centered copy.
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// standardizeColumns z-scores every column with the POPULATION convention:
// Z[:,j] = (X[:,j] − mean_j) / std_j, std_j = sqrt(Σ_i Xc[i,j]² / r).
// Implementation:
//   - Stage 1: Validate and center columns (reuses centerColumns).
//   - Stage 2: Accumulate squared sums deterministically; std = sqrt(ss/r).
//   - Stage 3: Z = Xc · diag(1/std) via ewScaleCols.
//
// Behavior highlights:
//   - ddof=0 (population) denominator — intentionally different from the
//     sample convention used by covariance.
//   - Degenerate columns (std==0) are NOT zeroed: 1/0 = +Inf and centered
//     zeros multiply to NaN, which propagates to the caller (numeric policy).
//
// Returns Z, column means and population stds.
// Complexity: Time O(r*c), Space O(r*c) (+ O(c) auxiliary slices).
func standardizeColumns(X Matrix) (Matrix, []float64, []float64, error) {
	// Stage 1 (Center): subtract column means.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	stds := make([]float64, c)
	if r == 0 || c == 0 {
		return Xc, means, stds, nil
	}

	// Stage 2 (Std): accumulate squared sums per column.
	sumsq := make([]float64, c)
	var i, j int
	var v float64

	if d, ok := Xc.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				sumsq[j] += v * v
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = Xc.At(i, j)
				if err != nil {
					return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
				}
				sumsq[j] += v * v
			}
		}
	}

	invR := 1.0 / float64(r) // population denominator (ddof=0)
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * invR)
		invStd[j] = 1.0 / stds[j] // +Inf for degenerate columns, by policy
	}

	// Stage 3 (Apply): Z = Xc * diag(invStd).
	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardizeColumns, err)
	}

	return Z, means, stds, nil
}

// covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X, require r>=2 (sample denominator).
//   - Stage 2: Center columns once, then compose canonical kernels
//     (Transpose → Mul → Scale).
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-column sample variances.
//   - Positive semi-definite on well-formed data (modulo numeric noise).
//
// Complexity: Time O(r*c + r*c²), Space O(c²).
func covariance(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Sample covariance requires at least two observations.
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	// Stage 2 (Center): reuse the canonical centering implementation.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 3 (Compute): Cov = (Xcᵀ Xc)/(r-1) via canonical kernels.
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
