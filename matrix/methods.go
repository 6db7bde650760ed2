// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over any Matrix implementation —
// element-wise addition/subtraction, matrix multiplication, transpose,
// scalar scaling, Gram products, column slicing and their in-place
// variants. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opAddInPlace   = "AddInPlace"
	opScaleInPlace = "ScaleInPlace"
	opCopyInto     = "CopyInto"
	opGram         = "Gram"
	opSliceCols    = "SliceCols"
	opMatVec       = "MatVec"
)

// Add returns a new Matrix containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs and shapes
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct element-wise addition on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j)       // safe: bounds ensured
			bv, _ = b.At(i, j)       // safe: same shape
			_ = res.Set(i, j, av+bv) // safe: within bounds
		}
	}

	return res, nil
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Same staging as Add. Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			_ = res.Set(i, j, av-bv)
		}
	}

	return res, nil
}

// AddInPlace accumulates src into dst element-wise: dst += src.
// The destination keeps its identity, which makes the kernel suitable for
// chunk-accumulation loops that reuse one output buffer.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): fast-path for *Dense pairs, At/Set fallback otherwise.
// Complexity: O(r·c) time, O(1) extra memory.
func AddInPlace(dst, src Matrix) error {
	// Stage 1: Validate inputs and shapes
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}

	rows, cols := dst.Rows(), dst.Cols()

	// Stage 2: Fast-path for two Dense matrices
	if dd, okD := dst.(*Dense); okD {
		if ds, okS := src.(*Dense); okS {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				dd.data[idx] += ds.data[idx]
			}

			return nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		dv, sv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			dv, _ = dst.At(i, j)
			sv, _ = src.At(i, j)
			_ = dst.Set(i, j, dv+sv)
		}
	}

	return nil
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with fast-path for *Dense.
// Complexity: O(r·n·c) time and O(r·c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Stage 3: Fast-path for two Dense matrices (row-major i-k-j order)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				if av == 0 {
					continue
				}
				bv, _ = b.At(k, j)
				current += av * bv
			}
			_ = res.Set(i, j, current)
		}
	}

	return res, nil
}

// Transpose returns a new Matrix where rows and columns of m are swapped.
// Complexity: O(r·c) time and memory.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			_ = res.Set(j, i, v)
		}
	}

	return res, nil
}

// Scale returns a new Matrix where each element of m is multiplied by alpha.
// Complexity: O(r·c) time and memory.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			_ = res.Set(i, j, v*alpha)
		}
	}

	return res, nil
}

// ScaleInPlace multiplies every element of m by alpha, mutating m.
// Complexity: O(r·c) time, O(1) extra memory.
func ScaleInPlace(m Matrix, alpha float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}

	rows, cols := m.Rows(), m.Cols()

	// Fast-path for Dense
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			dm.data[idx] *= alpha
		}

		return nil
	}

	// Fallback: generic interface loop
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			_ = m.Set(i, j, v*alpha)
		}
	}

	return nil
}

// CopyInto copies the values of src into dst element-wise (shapes must
// match). Copying a matrix onto itself is a no-op and explicitly allowed,
// so in-place facades can accept aliased buffers.
// Complexity: O(r·c) time, O(1) extra memory.
func CopyInto(dst, src Matrix) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opCopyInto, err)
	}

	rows, cols := dst.Rows(), dst.Cols()

	// Fast-path for two Dense matrices (copy handles aliasing).
	if dd, okD := dst.(*Dense); okD {
		if ds, okS := src.(*Dense); okS {
			copy(dd.data, ds.data)

			return nil
		}
	}

	// Fallback: generic interface loop (aliasing-safe: pure assignment).
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = src.At(i, j)
			_ = dst.Set(i, j, v)
		}
	}

	return nil
}

// Gram computes the Gram matrix X·Xᵀ (r×r) of X (r×c).
// The result is symmetric by construction: only the upper triangle is
// accumulated, then mirrored, which both halves the work and guarantees
// exact symmetry regardless of floating-point rounding.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate r×r result.
// Stage 3 (Execute): deterministic a→b→k accumulation (Dense fast-path).
// Complexity: O(r²·c) time, O(r²) memory.
//
// AI-Hints:
//   - Gram(StandardizeColumns(X)) is the linear-kernel similarity of rows.
func Gram(x Matrix) (Matrix, error) {
	// Stage 1: Validate input
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	// Stage 2: Allocate result
	rows, cols := x.Rows(), x.Cols()
	res, err := NewDense(rows, rows)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var (
		a, b, k int
		sum     float64
	)

	// Stage 3: Fast-path for Dense (flat row-major dot products)
	if dx, ok := x.(*Dense); ok {
		var baseA, baseB int
		for a = 0; a < rows; a++ {
			baseA = a * cols
			for b = a; b < rows; b++ { // upper triangle only
				baseB = b * cols
				sum = 0.0
				for k = 0; k < cols; k++ {
					sum += dx.data[baseA+k] * dx.data[baseB+k]
				}
				res.data[a*rows+b] = sum
				res.data[b*rows+a] = sum // mirror for exact symmetry
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var va, vb float64
	for a = 0; a < rows; a++ {
		for b = a; b < rows; b++ {
			sum = 0.0
			for k = 0; k < cols; k++ {
				va, _ = x.At(a, k)
				vb, _ = x.At(b, k)
				sum += va * vb
			}
			_ = res.Set(a, b, sum)
			_ = res.Set(b, a, sum)
		}
	}

	return res, nil
}

// SliceCols returns a copy of the contiguous column window [start, stop)
// of m as a fresh r×(stop−start) Dense. The input is never mutated.
// Stage 1 (Validate): nil-check and 0 ≤ start < stop ≤ cols.
// Stage 2 (Execute): row-wise block copy (Dense fast-path).
// Complexity: O(r·(stop−start)) time and memory.
//
// AI-Hints:
//   - This is the chunking primitive: slice, transform, accumulate.
func SliceCols(m Matrix, start, stop int) (*Dense, error) {
	// Stage 1: Validate input and window bounds
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSliceCols, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if start < 0 || stop > cols || start >= stop {
		return nil, matrixErrorf(opSliceCols, ErrOutOfRange)
	}

	width := stop - start
	res, err := NewDense(rows, width)
	if err != nil {
		return nil, matrixErrorf(opSliceCols, err)
	}

	// Stage 2: Fast-path for Dense (per-row contiguous copy)
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(res.data[i*width:(i+1)*width], dm.data[i*cols+start:i*cols+stop])
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < width; j++ {
			v, _ = m.At(i, start+j)
			_ = res.Set(i, j, v)
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a vector x of length Cols(m).
// Stage 1 (Validate): nil-check and vector length.
// Stage 2 (Execute): deterministic i→j accumulation (Dense fast-path).
// Complexity: O(r·c) time, O(r) memory.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)

	// Stage 2: Fast-path for Dense
	var (
		i, j int
		sum  float64
	)
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = 0.0
			for j = 0; j < cols; j++ {
				sum += dm.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		sum = 0.0
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
