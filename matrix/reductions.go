// SPDX-License-Identifier: MIT
// Package matrix: scalar and vector reductions (Trace, ColMeans, RowSums).
// These are the building blocks of the Gower rescaling identity
// c = (n-1)/(trace(K) - Σ colMeans(K)).

package matrix

// Operation name constants for unified error wrapping.
const (
	opTrace    = "Trace"
	opColMeans = "ColMeans"
	opRowSums  = "RowSums"
)

// Trace returns the sum of diagonal entries of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n) time, O(1) space. Deterministic i order.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	sum := 0.0

	// Dense fast-path: stride over the flat buffer.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += dm.data[i*n+i]
		}

		return sum, nil
	}

	// Generic fallback.
	var v float64
	for i := 0; i < n; i++ {
		v, _ = m.At(i, i) // bounds ensured after square validation
		sum += v
	}

	return sum, nil
}

// ColMeans returns the per-column mean vector (length = Cols).
// Means are Σ_i m[i,j] / r; requires at least one row.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time, O(c) space. Deterministic i→j order.
func ColMeans(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}

	r, c := m.Rows(), m.Cols()
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return means, nil // no elements: zero means of correct length
	}

	// Accumulate sums, then convert to averages in one final pass.
	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += dm.data[base+j]
			}
		}
	} else {
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, _ = m.At(i, j)
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// RowSums returns vector s where s[i] = Σ_j m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time, O(r) space. Deterministic i→j order.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	r, c := m.Rows(), m.Cols()
	sums := make([]float64, r)

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			s := 0.0
			for j = 0; j < c; j++ {
				s += dm.data[base+j]
			}
			sums[i] = s
		}

		return sums, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		s := 0.0
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			s += v
		}
		sums[i] = s
	}

	return sums, nil
}
