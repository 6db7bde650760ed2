// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/noahpieta/limix/matrix"
)

const (
	eigTol  = 1e-12
	eigIter = 200
)

// sortedEigs runs Eigen and returns the eigenvalues in ascending order.
func sortedEigs(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	eigs, _, err := matrix.Eigen(m, eigTol, eigIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}
	sort.Float64s(eigs)

	return eigs
}

func TestEigen_DiagonalAndKnownSpectrum(t *testing.T) {
	t.Parallel()

	// Diagonal matrices are their own spectrum.
	d := NewFilledDense(t, 3, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	sliceClose(t, sortedEigs(t, d), []float64{1, 2, 3}, eigTol)

	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	m := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	sliceClose(t, sortedEigs(t, m), []float64{1, 3}, 1e-10)
}

func TestEigen_ReconstructsMatrix(t *testing.T) {
	t.Parallel()

	// Symmetric PSD fixture: Gram of a random 3×5 matrix.
	X := RandFilledDense(t, 3, 5, 7)
	A, err := matrix.Gram(X)
	if err != nil {
		t.Fatalf("Gram: %v", err)
	}

	eigs, Q, err := matrix.Eigen(A, eigTol, eigIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}

	// A == Q·diag(eigs)·Qᵀ within numeric tolerance.
	n := A.Rows()
	D := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		if err = D.Set(i, i, eigs[i]); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	QD, err := matrix.Mul(Q, D)
	if err != nil {
		t.Fatalf("Mul Q·D: %v", err)
	}
	Qt, err := matrix.Transpose(Q)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	rec, err := matrix.Mul(QD, Qt)
	if err != nil {
		t.Fatalf("Mul (Q·D)·Qᵀ: %v", err)
	}
	CompareClose(t, rec, A, 1e-9)

	// Gram spectra are non-negative modulo roundoff.
	for _, e := range eigs {
		if e < -1e-10 {
			t.Fatalf("negative eigenvalue %v for a Gram matrix", e)
		}
	}
}

func TestEigen_ValidationAndFailure(t *testing.T) {
	t.Parallel()

	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	if _, _, err := matrix.Eigen(asym, eigTol, eigIter); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("asymmetric: want ErrAsymmetry, got %v", err)
	}
	if _, _, err := matrix.Eigen(nil, eigTol, eigIter); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil: want ErrNilMatrix, got %v", err)
	}
	if _, _, err := matrix.Eigen(MustDense(t, 2, 3), eigTol, eigIter); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("rectangular: want ErrNonSquare, got %v", err)
	}
	if _, _, err := matrix.Eigen(MustDense(t, 2, 2), math.NaN(), eigIter); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("NaN tol: want ErrNaNInf, got %v", err)
	}

	// Zero iterations cannot converge a non-diagonal matrix.
	m := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	if _, _, err := matrix.Eigen(m, eigTol, 0); !errors.Is(err, matrix.ErrEigenFailed) {
		t.Fatalf("maxIter=0: want ErrEigenFailed, got %v", err)
	}
}
