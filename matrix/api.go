// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r·c) zeroing by runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // bounds-safe after shape validation
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r·c).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate accumulation buffers. Complexity: O(r·c).
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// ---------- Convenience compositions ----------

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// Complexity: O(r·c).
//
// AI-Hints: Useful to repair asymmetry drift before spectral methods.
func Symmetrize(m Matrix) (Matrix, error) {
	// Transpose first; kernel validates non-nil input.
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	// Add original and transpose; shapes are guaranteed identical.
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	// Scale by 0.5 to complete the symmetrization.
	return Scale(sum, 0.5)
}

// ---------- Sanitization & numeric compare (thin wrappers → ew*) ----------

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by
// 'val' (which must be finite; otherwise ErrNaNInf).
// Time: O(r·c). Space: O(r·c). Deterministic.
//
// AI-Hints:
//   - Use after StandardizeColumns when degenerate-column propagation is
//     undesired in downstream statistics.
func ReplaceInfNaN(m Matrix, val float64) (Matrix, error) {
	// Delegate to the private ew* sanitizer (centralizes numeric checks and loops).
	return ewReplaceInfNaN(m, val)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r·c). Space: O(1). Deterministic.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ---------- Statistics (public surface → internal implementations) ----------

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the
// column means (length = Cols(X)).
// Time: O(r·c). Space: O(r·c). Deterministic.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// StandardizeColumns returns the population z-scored copy
// Z = (X − mean)/std with std = sqrt(Σ Xc²/r) (ddof=0), plus means and stds.
// Degenerate columns (std==0) propagate NaN — see the package numeric policy.
// Time: O(r·c). Space: O(r·c). Deterministic.
func StandardizeColumns(X Matrix) (Matrix, []float64, []float64, error) {
	return standardizeColumns(X)
}

// Covariance computes sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
// Returns Cov and column means. Requires r >= 2; else ErrDimensionMismatch.
// Time: O(r·c + r·c²). Space: O(c²).
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }
