// Package stats: linear-kernel kinship estimation.

package stats

import "github.com/noahpieta/limix/matrix"

// opLinearKinship tags estimator errors.
const opLinearKinship = "LinearKinship"

// LinearKinship estimates the kinship matrix of the samples (rows) of G
// via the linear kernel.
//
// Description:
//
//	For an n×p feature matrix G (n samples, p features), the estimate is
//
//	    K = Z·Zᵀ / p,   Z = (G − colMeans(G)) / colStds(G)
//
//	with the population (ddof=0) standard deviation. K is symmetric and
//	positive semi-definite; its rows and columns sum to zero because Z is
//	column-centered.
//
// Algorithm Outline (chunk accumulation):
//  1. nsteps = opts.Chunks, defaulting to min(30, p) and clamped to [1, p].
//  2. Partition the feature columns into nsteps contiguous blocks of width
//     p/nsteps; the LAST block absorbs the remainder so every column is
//     covered exactly once. Coverage is what makes the result independent
//     of the chunk count: standardization is per column, so blocks only
//     change the traversal order.
//  3. Per block: re-slice G, standardize column-wise, accumulate the block
//     Gram matrix scaled by 1/p into the output buffer, then invoke the
//     Progress hook.
//
// Inputs:
//   - G: n×p feature matrix, n ≥ 1, p ≥ 1. Never mutated.
//   - opts: optional configuration; nil selects DefaultKinshipOptions().
//
// Returns:
//   - matrix.Matrix: the accumulator — opts.Out itself when supplied
//     (identity aliasing), a fresh n×n *Dense otherwise.
//
// Errors:
//   - matrix.ErrNilMatrix (nil G), ErrEmptyMatrix (no rows or columns),
//     ErrShapeMismatch (Out not n×n), ErrBadChunks (negative Chunks).
//
// Numeric policy:
//   - Constant feature columns produce NaN entries (division by a zero
//     standard deviation) rather than an error; features must not be
//     constant. Sanitize with matrix.ReplaceInfNaN if needed.
//
// Determinism:
//   - Fixed chunk order and fixed loops inside every kernel; the Progress
//     hook observes but never influences the computation.
//
// Complexity:
//   - Time O(n²·p); peak extra memory O(n·p/nsteps) for the standardized
//     block plus O(n²) for the block Gram matrix.
func LinearKinship(G matrix.Matrix, opts *KinshipOptions) (matrix.Matrix, error) {
	// Stage 1: Validate the feature matrix.
	if err := matrix.ValidateNotNil(G); err != nil {
		return nil, statsErrorf(opLinearKinship, err)
	}
	n, p := G.Rows(), G.Cols()
	if n == 0 || p == 0 {
		return nil, statsErrorf(opLinearKinship, ErrEmptyMatrix)
	}

	// Stage 1: Resolve options (nil means defaults).
	o := DefaultKinshipOptions()
	if opts != nil {
		o = *opts
	}
	if o.Chunks < 0 {
		return nil, statsErrorf(opLinearKinship, ErrBadChunks)
	}
	nsteps := o.Chunks
	if nsteps == 0 {
		nsteps = MaxChunks
	}
	if nsteps > p {
		nsteps = p // at least one column per chunk
	}

	// Stage 2: Resolve the accumulator (fresh zeros or caller-supplied).
	out := o.Out
	if out == nil {
		fresh, err := matrix.NewZeros(n, n)
		if err != nil {
			return nil, statsErrorf(opLinearKinship, err)
		}
		out = fresh
	} else if out.Rows() != n || out.Cols() != n {
		return nil, statsErrorf(opLinearKinship, ErrShapeMismatch)
	}

	// Stage 3: Chunked accumulation over contiguous column blocks.
	width := p / nsteps
	invP := 1.0 / float64(p) // fixed total-feature scale, NOT per-chunk
	for i := 0; i < nsteps; i++ {
		start := i * width
		stop := start + width
		if i == nsteps-1 {
			stop = p // last chunk absorbs the remainder
		}

		// Re-slice the block from G (the input is never mutated).
		X, err := matrix.SliceCols(G, start, stop)
		if err != nil {
			return nil, statsErrorf(opLinearKinship, err)
		}
		// Column-wise population z-scoring of the block.
		Z, _, _, err := matrix.StandardizeColumns(X)
		if err != nil {
			return nil, statsErrorf(opLinearKinship, err)
		}
		// Block contribution: (Z·Zᵀ)/p accumulated into out.
		g, err := matrix.Gram(Z)
		if err != nil {
			return nil, statsErrorf(opLinearKinship, err)
		}
		if err = matrix.ScaleInPlace(g, invP); err != nil {
			return nil, statsErrorf(opLinearKinship, err)
		}
		if err = matrix.AddInPlace(out, g); err != nil {
			return nil, statsErrorf(opLinearKinship, err)
		}

		// Observational side channel only.
		if o.Progress != nil {
			o.Progress(i+1, nsteps)
		}
	}

	return out, nil
}
