package filter

import (
	"math"

	"github.com/gogpu/photon/internal/cache"
)

// Gaussian1D generates a normalised 1D Gaussian of the given odd size.
// A sigma <= 0 selects the default (size-1)/4, and a size of 1 yields the
// identity [1].
func Gaussian1D(size int, sigma float64) []float64 {
	if size <= 1 {
		return []float64{1}
	}
	if sigma <= 0 {
		sigma = float64(size-1) / 4
	}

	half := size / 2
	weights := make([]float64, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range weights {
		x := float64(i - half)
		w := math.Exp(-(x * x) / twoSigmaSq)
		weights[i] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// Box1D generates a 1D uniform kernel of the given size with unit weights.
func Box1D(size int) []float64 {
	weights := make([]float64, max(size, 1))
	for i := range weights {
		weights[i] = 1
	}
	return weights
}

// Outer returns the outer product rows × cols as a row-major matrix.
func Outer(rows, cols []float64) [][]float64 {
	m := make([][]float64, len(rows))
	for j, r := range rows {
		m[j] = make([]float64, len(cols))
		for i, c := range cols {
			m[j][i] = r * c
		}
	}
	return m
}

// Gaussian2D returns the size×size Gaussian as the outer product of two
// 1D Gaussians. Results are cached; callers must not modify them.
func Gaussian2D(size int, sigma float64) [][]float64 {
	return gaussianCache.GetOrCreate(kernelKey{size: size, sigma: sigma}, func() [][]float64 {
		g := Gaussian1D(size, sigma)
		return Outer(g, g)
	})
}

type kernelKey struct {
	size  int
	sigma float64
}

// gaussianCache memoises 2D Gaussians by size and sigma.
var gaussianCache = cache.New[kernelKey, [][]float64](64)
