// SPDX-License-Identifier: MIT
// Package matrix: Jacobi eigenvalue decomposition for real symmetric
// matrices. Used by the kinship tests to certify positive
// semi-definiteness, and exposed as general API.

package matrix

import "math"

// opEigen tags eigen-decomposition errors.
const opEigen = "Eigen"

// Eigen performs classical Jacobi eigenvalue decomposition on a symmetric
// matrix m. It returns the eigenvalues (diagonal of the rotated matrix, in
// storage order) and the matrix Q of eigenvectors (columns of Q).
//
// Implementation:
//   - Stage 1: Validate shape and symmetry (within tol).
//   - Stage 2: Work on a Dense copy A; initialize Q = I.
//   - Stage 3: Repeatedly zero the largest off-diagonal |A[p][q]| with a
//     Givens rotation until max|off| < tol or maxIter rotations.
//
// Inputs:
//   - m: square symmetric Matrix (n×n).
//   - tol: convergence threshold for off-diagonal magnitude; must be finite.
//   - maxIter: cap on the number of rotations.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf from validation.
//   - ErrEigenFailed when the off-diagonal mass does not fall below tol
//     within maxIter rotations.
//
// Determinism:
//   - Largest-pivot selection with fixed i→j scan order; stable output.
//
// Complexity:
//   - O(n²) pivot search per rotation, O(n) update; worst-case O(maxIter·n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Stage 1: Validate input (nil, square, symmetric within tol).
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.Rows()

	// Stage 2: Prepare working copy A and eigenvector accumulator Q = I.
	A, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err = CopyInto(A, m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Stage 3: Execute Jacobi rotations.
	var (
		iter       int     // rotation counter
		i, j, p, q int     // scan and pivot indices
		maxOff     float64 // largest |off-diagonal| this sweep
		off        float64
		converged  bool
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find the largest off-diagonal |A[p][q]| (deterministic scan).
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		// Compute the rotation annihilating A[p][q].
		app := A.data[p*n+p]
		aqq := A.data[q*n+q]
		apq := A.data[p*n+q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1) // cosine
		s := t * c                  // sine

		// Apply the rotation to rows/columns p and q (symmetric update).
		var aip, aiq float64
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			A.data[i*n+p] = c*aip - s*aiq
			A.data[p*n+i] = A.data[i*n+p]
			A.data[i*n+q] = s*aip + c*aiq
			A.data[q*n+i] = A.data[i*n+q]
		}
		// Update pivot diagonal/off-diagonal from the saved values.
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q] = 0.0
		A.data[q*n+p] = 0.0

		// Accumulate the rotation into Q.
		var qip, qiq float64
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// n<=1 needs no rotations; otherwise require convergence.
	if !converged && n > 1 {
		// Re-check in case maxIter rotations landed exactly on tolerance.
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff = off
				}
			}
		}
		if maxOff >= tol {
			return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
		}
	}

	// Stage 4: Finalize eigenvalues from the diagonal.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}
