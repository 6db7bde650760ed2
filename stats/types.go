// Package stats: options, progress hooks and sentinel errors for the
// kinship estimator.

package stats

import (
	"errors"
	"fmt"
	"io"

	"github.com/noahpieta/limix/matrix"
)

// MaxChunks is the default upper bound on the number of feature chunks
// processed by LinearKinship. The feature dimension is partitioned into at
// most MaxChunks contiguous blocks to bound the peak size of the
// standardized working copy.
const MaxChunks = 30

var (
	// ErrEmptyMatrix indicates a feature matrix with zero rows or columns;
	// the estimator requires at least one sample and one feature.
	ErrEmptyMatrix = errors.New("stats: empty feature matrix")

	// ErrShapeMismatch indicates a caller-supplied output buffer whose
	// dimensions do not match the expected n×n shape.
	ErrShapeMismatch = errors.New("stats: output buffer shape mismatch")

	// ErrBadChunks indicates a negative chunk count in KinshipOptions.
	ErrBadChunks = errors.New("stats: chunk count must be non-negative")
)

// statsErrorf wraps an underlying error with the given operation tag.
// The sentinel stays reachable through errors.Is.
func statsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Progress is invoked once per processed chunk with the number of chunks
// done so far and the total. It is a pure observational side channel: it
// must not (and cannot) alter iteration order or results. A nil Progress
// disables reporting.
type Progress func(done, total int)

// WriterProgress returns a Progress hook that tickers chunk completion to
// w (typically os.Stderr), one carriage-return-rewritten line per chunk
// and a final newline when the last chunk lands. Write errors are ignored:
// progress is best-effort by contract.
func WriterProgress(w io.Writer) Progress {
	return func(done, total int) {
		_, _ = fmt.Fprintf(w, "\rkinship: %d/%d", done, total)
		if done == total {
			_, _ = fmt.Fprintln(w)
		}
	}
}

// KinshipOptions configures LinearKinship.
//
// Fields:
//   - Out      — optional n×n accumulator. When supplied, the kinship
//     contribution is ADDED into it, the same buffer is returned, and the
//     caller retains ownership (the estimator never reallocates it).
//     When nil, a fresh zero matrix is allocated.
//   - Chunks   — number of contiguous feature blocks. 0 means the default
//     min(MaxChunks, p); values above p are clamped to p; negative values
//     are rejected with ErrBadChunks. Chunking is a memory optimization,
//     not a semantic one: any valid chunk count yields the same matrix up
//     to floating-point roundoff.
//   - Progress — per-chunk reporting hook; nil disables reporting.
//
// Example:
//
//	opts := stats.DefaultKinshipOptions()
//	opts.Out = K0                               // accumulate into K0
//	opts.Progress = stats.WriterProgress(os.Stderr)
//	K, err := stats.LinearKinship(G, &opts)     // K aliases K0
type KinshipOptions struct {
	Out      matrix.Matrix
	Chunks   int
	Progress Progress
}

// DefaultKinshipOptions returns the canonical defaults: fresh output
// buffer, min(MaxChunks, p) chunks, silent.
func DefaultKinshipOptions() KinshipOptions {
	return KinshipOptions{}
}
