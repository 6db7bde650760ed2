// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/noahpieta/limix/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// Clone keeps the wrapper opaque: the fallback path must survive cloning too.
func (h hide) Clone() matrix.Matrix { return hide{h.Matrix.Clone()} }

// MustDense constructs a rows×cols *Dense or fails the test immediately.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return d
}

// NewFilledDense builds a rows×cols *Dense from row-major values.
// len(values) must equal rows*cols.
func NewFilledDense(t *testing.T, rows, cols int, values []float64) *matrix.Dense {
	t.Helper()
	if len(values) != rows*cols {
		t.Fatalf("NewFilledDense: got %d values for %d×%d", len(values), rows, cols)
	}
	d := MustDense(t, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := d.Set(i, j, values[i*cols+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// RandFilledDense builds a rows×cols *Dense with uniform entries in [-1, 1)
// from a fixed-seed source, so every run sees the same fixture.
func RandFilledDense(t *testing.T, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(t, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = d.Set(i, j, 2*rng.Float64()-1) // bounds known good
		}
	}

	return d
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose asserts element-wise |a-b| ≤ tol over identical shapes.
func CompareClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %d×%d vs %d×%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > tol {
				t.Fatalf("element (%d,%d): %v vs %v (tol %v)", i, j, av, bv, tol)
			}
		}
	}
}

// sliceClose asserts element-wise |a-b| ≤ tol over equal-length slices.
func sliceClose(t *testing.T, a, b []float64, tol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			t.Fatalf("index %d: %v vs %v (tol %v)", i, a[i], b[i], tol)
		}
	}
}
