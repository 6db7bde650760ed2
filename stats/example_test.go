package stats_test

import (
	"fmt"

	"github.com/noahpieta/limix/matrix"
	"github.com/noahpieta/limix/stats"
)

// ExampleLinearKinship estimates relatedness for four samples over one
// hundred standard-normal features and prints the 4×4 kinship matrix.
func ExampleLinearKinship() {
	// Deterministic feature matrix (MT19937 seed 1, row-major fill).
	rng := newLegacyStream(1)
	G, err := matrix.NewDense(4, 100)
	if err != nil {
		fmt.Println("alloc:", err)

		return
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 100; j++ {
			_ = G.Set(i, j, rng.normal())
		}
	}

	K, err := stats.LinearKinship(G, nil)
	if err != nil {
		fmt.Println("kinship:", err)

		return
	}

	for i := 0; i < K.Rows(); i++ {
		a, _ := K.At(i, 0)
		b, _ := K.At(i, 1)
		c, _ := K.At(i, 2)
		d, _ := K.At(i, 3)
		fmt.Printf("[% .4f % .4f % .4f % .4f]\n", a, b, c, d)
	}
	// Output:
	// [ 0.9131 -0.1928 -0.3413 -0.3790]
	// [-0.1928  0.8989 -0.2356 -0.4704]
	// [-0.3413 -0.2356  0.9578 -0.3808]
	// [-0.3790 -0.4704 -0.3808  1.2302]
}

// ExampleGowerNorm rescales a covariance matrix so that the average sample
// variance it implies equals one.
func ExampleGowerNorm() {
	// A covariance whose implied average variance is far from 1.
	K, err := matrix.NewDense(3, 3)
	if err != nil {
		fmt.Println("alloc:", err)

		return
	}
	vals := [][]float64{
		{8, 2, 1},
		{2, 6, 0},
		{1, 0, 4},
	}
	for i, row := range vals {
		for j, v := range row {
			_ = K.Set(i, j, v)
		}
	}

	Kn, err := stats.GowerNorm(K)
	if err != nil {
		fmt.Println("gower:", err)

		return
	}

	// The rescaled matrix satisfies (n−1)/(trace − Σ colMeans) == 1.
	tr, _ := matrix.Trace(Kn)
	means, _ := matrix.ColMeans(Kn)
	sum := 0.0
	for _, m := range means {
		sum += m
	}
	fmt.Printf("factor after rescaling: %.1f\n", float64(Kn.Rows()-1)/(tr-sum))
	// Output:
	// factor after rescaling: 1.0
}

// ExampleGowerNormInto rescales in place, reusing the input buffer.
func ExampleGowerNormInto() {
	K, err := matrix.NewDense(2, 2)
	if err != nil {
		fmt.Println("alloc:", err)

		return
	}
	_ = K.Set(0, 0, 4)
	_ = K.Set(1, 1, 2)

	if err = stats.GowerNormInto(K, K); err != nil {
		fmt.Println("gower:", err)

		return
	}

	a, _ := K.At(0, 0)
	b, _ := K.At(1, 1)
	fmt.Printf("diag: %.4f %.4f\n", a, b)
	// Output:
	// diag: 1.3333 0.6667
}
