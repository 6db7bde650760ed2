// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra core used by the
// statistics routines: row-major Dense storage behind a minimal Matrix
// interface, canonical kernels (Add, Sub, Mul, Transpose, Scale, Gram),
// column statistics (centering, standardization, covariance), and the
// spectral/factorization routines (Jacobi eigen decomposition, Cholesky)
// used to verify kinship matrices.
//
// Design:
//
//   - Every public operation validates its inputs through the centralized
//     validators and returns package sentinel errors wrapped with an
//     operation tag; callers match them via errors.Is. No operation panics
//     on user-triggered conditions.
//   - All loops use fixed i→j traversal for reproducible results. Passing
//     *Dense operands unlocks flat-slice fast paths; any other Matrix
//     implementation falls back to bounds-checked At/Set access.
//   - Numeric policy: NaN/Inf values are never silently repaired. Routines
//     that would divide by zero (StandardizeColumns on a constant column)
//     propagate ±Inf/NaN per IEEE-754 instead of failing; sanitize inputs
//     with ReplaceInfNaN if that is undesired.
//
// AI-Hints:
//   - Prefer *Dense operands in hot paths.
//   - Use AllClose for tolerance-based comparisons in tests.
package matrix
