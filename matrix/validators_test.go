// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/noahpieta/limix/matrix"
)

func TestValidateNotNil_And_Shapes(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateNotNil(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil: want ErrNilMatrix, got %v", err)
	}
	if err := matrix.ValidateNotNil(MustDense(t, 1, 1)); err != nil {
		t.Fatalf("non-nil: %v", err)
	}

	a, b := MustDense(t, 2, 3), MustDense(t, 2, 3)
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		t.Fatalf("same shape: %v", err)
	}
	if err := matrix.ValidateBinarySameShape(a, MustDense(t, 3, 3)); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("row mismatch: want ErrDimensionMismatch, got %v", err)
	}
	if err := matrix.ValidateBinarySameShape(a, nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil b: want ErrNilMatrix, got %v", err)
	}
}

func TestValidateSquare_Composites(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateSquare(MustDense(t, 2, 3)); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("rectangular: want ErrNonSquare, got %v", err)
	}
	if err := matrix.ValidateSquareNonNil(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil: want ErrNilMatrix, got %v", err)
	}
	if err := matrix.ValidateSquareNonNil(MustDense(t, 4, 4)); err != nil {
		t.Fatalf("square: %v", err)
	}
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateVecLen(nil, 3); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil vector: want ErrNilMatrix, got %v", err)
	}
	if err := matrix.ValidateVecLen([]float64{1, 2}, 3); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("short vector: want ErrDimensionMismatch, got %v", err)
	}
	if err := matrix.ValidateVecLen([]float64{1, 2, 3}, 3); err != nil {
		t.Fatalf("exact length: %v", err)
	}
}

func TestValidateSymmetric_ToleranceAndViolation(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 1})
	if err := matrix.ValidateSymmetric(sym, 0); err != nil {
		t.Fatalf("exact symmetric: %v", err)
	}

	// Slight drift within tolerance passes, outside fails.
	drift := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1})
	if err := matrix.ValidateSymmetric(drift, 1e-10); err != nil {
		t.Fatalf("drift within tol: %v", err)
	}
	if err := matrix.ValidateSymmetric(drift, 1e-14); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("drift outside tol: want ErrAsymmetry, got %v", err)
	}

	if err := matrix.ValidateSymmetric(MustDense(t, 2, 3), 0); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("rectangular: want ErrNonSquare, got %v", err)
	}
	if err := matrix.ValidateSymmetric(sym, math.NaN()); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("NaN tol: want ErrNaNInf, got %v", err)
	}
}
