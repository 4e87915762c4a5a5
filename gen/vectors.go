// Package gen generates float32 input pairs for dot product tests and fixtures.
package gen

import (
	"math"
	"math/rand"
)

// Ramp returns a[i] = i and b[i] = 2i, the reference throughput inputs.
func Ramp(n int) (a, b []float32) {
	a = make([]float32, n)
	b = make([]float32, n)
	for i := 0; i < n; i++ {
		a[i] = float32(i)
		b[i] = float32(2 * i)
	}
	return a, b
}

// Random returns two length-n sequences uniform in [-1, 1), reproducible for a seed.
func Random(n int, seed int64) (a, b []float32) {
	rng := rand.New(rand.NewSource(seed))
	a = make([]float32, n)
	b = make([]float32, n)
	for i := 0; i < n; i++ {
		a[i] = rng.Float32()*2 - 1
		b[i] = rng.Float32()*2 - 1
	}
	return a, b
}

// Unit returns two L2-normalized length-n sequences, so their dot product is
// their cosine similarity.
func Unit(n int, seed int64) (a, b []float32) {
	rng := rand.New(rand.NewSource(seed))
	return unitVector(rng, n), unitVector(rng, n)
}

func unitVector(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	if n == 0 {
		return v
	}
	var norm float64
	for j := 0; j < n; j++ {
		x := rng.Float32()
		v[j] = x
		norm += float64(x * x)
	}
	norm = math.Sqrt(norm)
	if norm < 1e-9 {
		v[0] = 1
		norm = 1
	}
	for j := 0; j < n; j++ {
		v[j] /= float32(norm)
	}
	return v
}
