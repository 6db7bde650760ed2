// Package stats provides kinship estimation and covariance rescaling for
// statistical genetics.
//
// 🚀 What is a kinship matrix?
//
//	A symmetric n×n matrix estimating pairwise relatedness between n
//	samples, computed here via the linear kernel: standardized feature
//	vectors are multiplied into outer products and averaged. It is the
//	covariance structure used by linear mixed models in genetics.
//
// ✨ Key features:
//   - LinearKinship — chunk-accumulated K = Σ (Zᵢ·Zᵢᵀ)/p over column
//     blocks of the standardized feature matrix; bounds peak memory to
//     one chunk while producing the same result as a single pass
//   - optional caller-supplied accumulator (in-place accumulation)
//   - injectable per-chunk Progress hook (pure side channel, no effect
//     on results); WriterProgress adapts it to any io.Writer
//   - GowerNorm / GowerNormInto — rescale a covariance matrix so the
//     average sample variance it implies equals 1
//
// ⚙️ Usage:
//
//	import "github.com/noahpieta/limix/stats"
//
//	K, err := stats.LinearKinship(G, nil) // defaults: ≤30 chunks, silent
//
//	opts := stats.DefaultKinshipOptions()
//	opts.Progress = stats.WriterProgress(os.Stderr)
//	K, err = stats.LinearKinship(G, &opts)
//
//	Kn, err := stats.GowerNorm(K)
//
// Numeric policy:
//
//	Constant feature columns and zero Gower denominators are NOT guarded:
//	±Inf/NaN propagate through IEEE-754 semantics. Callers needing strict
//	validation must check inputs beforehand (or sanitize with
//	matrix.ReplaceInfNaN).
package stats
