package photon

import (
	"fmt"

	"github.com/gogpu/photon/internal/filter"
)

var (
	sobelX = [][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
	prewittX = [][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	}
	prewittY = [][]float64{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	}
	laplacian = [][]float64{
		{0, -1, 0},
		{-1, 4, -1},
		{0, -1, 0},
	}
	emboss = [][]float64{
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	}
	smoothing = [][]float64{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	}
)

func checkSize(size int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: kernel size %d must be odd and positive", ErrInvalidArgument, size)
	}
	return nil
}

// BoxKernel returns a size×size kernel of ones; its gain is size².
func BoxKernel(size int) (*Kernel, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	box := filter.Box1D(size)
	return NewKernel(filter.Outer(box, box))
}

// GaussianKernel returns a normalised size×size Gaussian. sigma <= 0
// selects (size-1)/4.
func GaussianKernel(size int, sigma float64) (*Kernel, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if err := finite("sigma", sigma); err != nil {
		return nil, err
	}
	return NewKernel(filter.Gaussian2D(size, sigma))
}

// SharpenKernel returns identity + amount·Laplacian.
func SharpenKernel(amount float64) (*Kernel, error) {
	if err := finite("amount", amount); err != nil {
		return nil, err
	}
	rows := make([][]float64, 3)
	for j := range rows {
		rows[j] = make([]float64, 3)
		for i := range rows[j] {
			rows[j][i] = amount * laplacian[j][i]
		}
	}
	rows[1][1]++
	return NewKernel(rows)
}

// SobelXKernel returns the 3x3 Sobel kernel for horizontal gradients.
func SobelXKernel() *Kernel { return mustKernel(sobelX) }

// SobelYKernel returns the 3x3 Sobel kernel for vertical gradients.
func SobelYKernel() *Kernel { return mustKernel(sobelY) }

// PrewittXKernel returns the 3x3 Prewitt kernel for horizontal gradients.
func PrewittXKernel() *Kernel { return mustKernel(prewittX) }

// PrewittYKernel returns the 3x3 Prewitt kernel for vertical gradients.
func PrewittYKernel() *Kernel { return mustKernel(prewittY) }

// LaplacianKernel returns the 4-neighbour Laplacian.
func LaplacianKernel() *Kernel { return mustKernel(laplacian) }

// EmbossKernel returns the diagonal emboss kernel.
func EmbossKernel() *Kernel { return mustKernel(emboss) }

// NoiseReductionKernel returns the centre-weighted smoothing kernel.
func NoiseReductionKernel() *Kernel { return mustKernel(smoothing) }

// convolveNatural convolves with the kernel's own gain and no bias.
func convolveNatural(img *Image, k *Kernel) error {
	return Convolve(img, k, k.Gain(), 0)
}

// BoxBlur averages each pixel over a size×size neighbourhood.
func BoxBlur(img *Image, size int) error {
	k, err := BoxKernel(size)
	if err != nil {
		return err
	}
	return convolveNatural(img, k)
}

// GaussianBlur blurs with a size×size Gaussian of default sigma.
func GaussianBlur(img *Image, size int) error {
	k, err := GaussianKernel(size, 0)
	if err != nil {
		return err
	}
	return convolveNatural(img, k)
}

// Sharpen applies the classic 3×3 sharpening kernel.
func Sharpen(img *Image) error {
	k, _ := SharpenKernel(1)
	return convolveNatural(img, k)
}

// Emboss convolves img with EmbossKernel.
func Emboss(img *Image) error { return convolveNatural(img, EmbossKernel()) }

// Laplace convolves img with LaplacianKernel.
func Laplace(img *Image) error { return convolveNatural(img, LaplacianKernel()) }

// SobelX convolves img with SobelXKernel.
func SobelX(img *Image) error { return convolveNatural(img, SobelXKernel()) }

// SobelY convolves img with SobelYKernel.
func SobelY(img *Image) error { return convolveNatural(img, SobelYKernel()) }

// PrewittX convolves img with PrewittXKernel.
func PrewittX(img *Image) error { return convolveNatural(img, PrewittXKernel()) }

// NoiseReduction convolves img with NoiseReductionKernel.
func NoiseReduction(img *Image) error { return convolveNatural(img, NoiseReductionKernel()) }

// EdgeDetect stores the Sobel gradient magnitude.
func EdgeDetect(img *Image) error {
	return EdgeMagnitude(img, SobelXKernel(), SobelYKernel())
}
