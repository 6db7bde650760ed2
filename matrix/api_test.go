// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/noahpieta/limix/matrix"
)

func TestNewIdentity_And_ZerosLike(t *testing.T) {
	t.Parallel()

	I, err := matrix.NewIdentity(3)
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if v := MustAt(t, I, i, j); v != want {
				t.Fatalf("I[%d,%d]: got %v, want %v", i, j, v, want)
			}
		}
	}

	z, err := matrix.ZerosLike(MustDense(t, 2, 5))
	if err != nil {
		t.Fatalf("ZerosLike: %v", err)
	}
	if z.Rows() != 2 || z.Cols() != 5 {
		t.Fatalf("ZerosLike shape: got %d×%d, want 2×5", z.Rows(), z.Cols())
	}
}

func TestSymmetrize_RepairsDrift(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2.001, 1.999, 5})
	s, err := matrix.Symmetrize(m)
	if err != nil {
		t.Fatalf("Symmetrize: %v", err)
	}
	CompareClose(t, s, NewFilledDense(t, 2, 2, []float64{1, 2, 2, 5}), epsTight)
	if err = matrix.ValidateSymmetric(s, epsTight); err != nil {
		t.Fatalf("result not symmetric: %v", err)
	}
}

func TestReplaceInfNaN_PolicyAndGuard(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 1, 4, []float64{1, math.NaN(), math.Inf(1), math.Inf(-1)})
	clean, err := matrix.ReplaceInfNaN(m, -1)
	if err != nil {
		t.Fatalf("ReplaceInfNaN: %v", err)
	}
	CompareClose(t, clean, NewFilledDense(t, 1, 4, []float64{1, -1, -1, -1}), 0)

	// Fallback path.
	cleanS, err := matrix.ReplaceInfNaN(hide{m}, -1)
	if err != nil {
		t.Fatalf("ReplaceInfNaN fallback: %v", err)
	}
	CompareClose(t, cleanS, clean, 0)

	// The replacement value itself must be finite.
	if _, err = matrix.ReplaceInfNaN(m, math.NaN()); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("NaN val: want ErrNaNInf, got %v", err)
	}
}

func TestAllClose_RelativeAndAbsolute(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{100, 1e-8})
	b := NewFilledDense(t, 1, 2, []float64{100.0001, 0})

	ok, err := matrix.AllClose(a, b, 1e-5, 1e-7)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatal("expected all-close within tolerances")
	}

	ok, err = matrix.AllClose(a, b, 1e-9, 1e-12)
	if err != nil {
		t.Fatalf("AllClose tight: %v", err)
	}
	if ok {
		t.Fatal("expected violation with tight tolerances")
	}

	if _, err = matrix.AllClose(a, MustDense(t, 2, 2), 0, 0); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("shape mismatch: want ErrDimensionMismatch, got %v", err)
	}
	if _, err = matrix.AllClose(a, b, math.NaN(), 0); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("NaN rtol: want ErrNaNInf, got %v", err)
	}
}
