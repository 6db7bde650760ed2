// Package stats: Gower rescaling of covariance matrices.

package stats

import "github.com/noahpieta/limix/matrix"

// Operation name constants for unified error wrapping.
const (
	opGowerNorm     = "GowerNorm"
	opGowerNormInto = "GowerNormInto"
)

// gowerScale computes the Gower factor of a square matrix K:
//
//	c = (n − 1) / (trace(K) − Σ colMeans(K))
//
// so that c·K implies an average sample variance of exactly 1. The factor
// is derived from the identity trace(P·K·P) = trace(K) − Σ colMeans(K) for
// the centering projection P = I − 11ᵀ/n.
//
// Validation is the caller's job; K is assumed non-nil and square. A zero
// denominator yields ±Inf (and NaN downstream) per the package numeric
// policy.
func gowerScale(k matrix.Matrix) float64 {
	tr, _ := matrix.Trace(k)       // square ensured by caller
	means, _ := matrix.ColMeans(k) // non-nil ensured by caller

	sum := 0.0
	for _, m := range means {
		sum += m
	}

	n := k.Rows()

	return float64(n-1) / (tr - sum)
}

// GowerNorm returns a freshly allocated rescaled copy c·K of the covariance
// matrix K, where c is the Gower factor (see gowerScale). After rescaling,
// the average variance of samples drawn from N(0, c·K) equals 1, which puts
// kinship matrices from different feature panels on a comparable scale.
//
// The operation is idempotent up to roundoff: applying it to an already
// rescaled matrix yields a factor of 1.
//
// Inputs:
//   - k: square covariance matrix (n×n, n ≥ 2 for a meaningful factor).
//
// Returns:
//   - matrix.Matrix: new matrix c·K; K itself is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Numeric policy:
//   - A zero denominator (e.g. K already centered to zero trace mass)
//     produces ±Inf entries; no error is raised.
//
// Complexity:
//   - Time O(n²), Space O(n²). Deterministic.
func GowerNorm(k matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1: Validate.
	if err := matrix.ValidateSquareNonNil(k); err != nil {
		return nil, statsErrorf(opGowerNorm, err)
	}

	// Stage 2: Factor, then scale into a fresh matrix.
	out, err := matrix.Scale(k, gowerScale(k))
	if err != nil {
		return nil, statsErrorf(opGowerNorm, err)
	}

	return out, nil
}

// GowerNormInto rescales K by its Gower factor, writing the result into
// out. out may alias K (including out == K) for a true in-place rescale:
// the factor is computed BEFORE any element of out is written.
//
// Inputs:
//   - k:   square covariance matrix (never mutated unless out aliases it).
//   - out: destination of the same shape as k.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(1) extra. Deterministic.
func GowerNormInto(k, out matrix.Matrix) error {
	// Stage 1: Validate source shape and source/destination compatibility.
	if err := matrix.ValidateSquareNonNil(k); err != nil {
		return statsErrorf(opGowerNormInto, err)
	}
	if err := matrix.ValidateBinarySameShape(k, out); err != nil {
		return statsErrorf(opGowerNormInto, err)
	}

	// Stage 2: Snapshot the factor before touching out (aliasing safety).
	c := gowerScale(k)

	// Stage 3: Copy then scale in place. CopyInto is a no-op-safe identity
	// copy when out == k.
	if err := matrix.CopyInto(out, k); err != nil {
		return statsErrorf(opGowerNormInto, err)
	}
	if err := matrix.ScaleInPlace(out, c); err != nil {
		return statsErrorf(opGowerNormInto, err)
	}

	return nil
}
