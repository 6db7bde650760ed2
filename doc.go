// Package limix provides numeric routines for statistical genetics:
// estimation of genetic-relatedness (kinship) matrices and covariance
// rescaling, backed by a small dense linear-algebra core.
//
// 🚀 What is limix?
//
//	A pure-Go port of the limix kinship statistics:
//	  • stats/  — LinearKinship (chunk-accumulated linear kernel) and
//	    GowerNorm (unit average sample variance rescaling)
//	  • matrix/ — dense row-major matrices, canonical kernels
//	    (Add/Mul/Transpose/Gram/…), column statistics, Jacobi eigen
//	    decomposition and Cholesky factorization
//
// ✨ Why choose limix?
//
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic — fixed loop orders, reproducible results
//   - Fail-fast — sentinel errors matched via errors.Is, no panics on
//     user-triggered conditions
//
// Quick example:
//
//	G, _ := matrix.NewDense(4, 100) // samples × features
//	// ... fill G ...
//	K, err := stats.LinearKinship(G, nil)
//
// See stats/example_test.go for complete runnable examples.
//
//	go get github.com/noahpieta/limix/stats
package limix
