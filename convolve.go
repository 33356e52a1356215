package photon

import (
	"fmt"
	"math"

	"github.com/gogpu/photon/internal/color"
)

// Kernel is an odd-sized square convolution matrix. Weights are stored
// row-major: row j is the y offset j-size/2 and column i the x offset
// i-size/2.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel builds a kernel from rows of weights. The matrix must be
// square with an odd side and finite weights.
func NewKernel(rows [][]float64) (*Kernel, error) {
	n := len(rows)
	if n == 0 || n%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size %d must be odd and positive", ErrInvalidArgument, n)
	}
	k := &Kernel{size: n, weights: make([]float64, 0, n*n)}
	for j, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: kernel row %d has %d weights, want %d", ErrInvalidArgument, j, len(row), n)
		}
		for _, w := range row {
			if err := finite("kernel weight", w); err != nil {
				return nil, err
			}
		}
		k.weights = append(k.weights, row...)
	}
	return k, nil
}

// mustKernel is NewKernel for the built-in constant matrices.
func mustKernel(rows [][]float64) *Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Size returns the side length of the kernel.
func (k *Kernel) Size() int { return k.size }

// At returns the weight at row j, column i.
func (k *Kernel) At(j, i int) float64 { return k.weights[j*k.size+i] }

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	s := 0.0
	for _, w := range k.weights {
		s += w
	}
	return s
}

// Gain returns the natural normalisation for the kernel: the weight sum,
// or 1 for zero-sum kernels such as edge detectors.
func (k *Kernel) Gain() float64 {
	if s := k.Sum(); math.Abs(s) > 1e-12 {
		return s
	}
	return 1
}

// Convolve replaces R, G and B of every pixel with
//
//	clamp(bias + (1/gain)·Σ K[j][i]·in(x+i-k/2, y+j-k/2), 0, 255)
//
// rounded half to even. Samples outside the image take the nearest edge
// pixel. Alpha is copied. Every output reads only original pixels; the
// result is assembled in a scratch buffer and copied back at the end.
func Convolve(img *Image, k *Kernel, gain, bias float64) error {
	if img == nil || k == nil {
		return fmt.Errorf("%w: nil image or kernel", ErrInvalidArgument)
	}
	if gain == 0 {
		return fmt.Errorf("%w: gain must be non-zero", ErrInvalidArgument)
	}
	if err := finite("gain", gain); err != nil {
		return err
	}
	if err := finite("bias", bias); err != nil {
		return err
	}

	Logger().Debug("photon: convolve",
		"size", k.size, "width", img.width, "height", img.height, "workers", img.workers)

	inv := 1 / gain
	dst := make([]uint8, len(img.pix))
	stride := img.stride()
	xs := edgeIndex(img.width, k.size)

	img.forRows(func(y int, _ []uint8) {
		ys := edgeRows(y, img.height, k.size)
		out := dst[y*stride : (y+1)*stride]
		for x := range img.width {
			r, g, b := convolveAt(img.pix, stride, k, xs, ys, x)
			o := x * 4
			out[o+0] = color.Clamp255(bias + r*inv)
			out[o+1] = color.Clamp255(bias + g*inv)
			out[o+2] = color.Clamp255(bias + b*inv)
			out[o+3] = img.pix[y*stride+o+3]
		}
	})

	copy(img.pix, dst)
	return nil
}

// convolveAt returns the raw weighted sums for pixel x of the row whose
// clamped neighbour rows are ys.
func convolveAt(pix []uint8, stride int, k *Kernel, xs [][]int, ys []int, x int) (r, g, b float64) {
	w := k.weights
	for j, sy := range ys {
		base := sy * stride
		for i := range k.size {
			weight := w[j*k.size+i]
			if weight == 0 {
				continue
			}
			p := base + xs[i][x]*4
			r += weight * float64(pix[p])
			g += weight * float64(pix[p+1])
			b += weight * float64(pix[p+2])
		}
	}
	return r, g, b
}

// edgeIndex precomputes clamped x coordinates: xs[i][x] is the column
// sampled for kernel column i at output column x.
func edgeIndex(width, size int) [][]int {
	half := size / 2
	xs := make([][]int, size)
	for i := range size {
		xs[i] = make([]int, width)
		for x := range width {
			xs[i][x] = clampInt(x+i-half, 0, width-1)
		}
	}
	return xs
}

// edgeRows returns the clamped rows sampled around y.
func edgeRows(y, height, size int) []int {
	half := size / 2
	ys := make([]int, size)
	for j := range size {
		ys[j] = clampInt(y+j-half, 0, height-1)
	}
	return ys
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EdgeMagnitude convolves with kx and ky without clamping and stores
// clamp(sqrt(Gx² + Gy²)) per colour channel. Alpha is copied.
func EdgeMagnitude(img *Image, kx, ky *Kernel) error {
	if img == nil || kx == nil || ky == nil {
		return fmt.Errorf("%w: nil image or kernel", ErrInvalidArgument)
	}

	dst := make([]uint8, len(img.pix))
	stride := img.stride()
	xsX := edgeIndex(img.width, kx.size)
	xsY := edgeIndex(img.width, ky.size)

	img.forRows(func(y int, _ []uint8) {
		ysX := edgeRows(y, img.height, kx.size)
		ysY := edgeRows(y, img.height, ky.size)
		out := dst[y*stride : (y+1)*stride]
		for x := range img.width {
			rx, gx, bx := convolveAt(img.pix, stride, kx, xsX, ysX, x)
			ry, gy, by := convolveAt(img.pix, stride, ky, xsY, ysY, x)
			o := x * 4
			out[o+0] = color.Clamp255(math.Hypot(rx, ry))
			out[o+1] = color.Clamp255(math.Hypot(gx, gy))
			out[o+2] = color.Clamp255(math.Hypot(bx, by))
			out[o+3] = img.pix[y*stride+o+3]
		}
	})

	copy(img.pix, dst)
	return nil
}
