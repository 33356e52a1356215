package photon

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ResampleFilter selects the interpolation used by Resize.
type ResampleFilter int

const (
	Nearest ResampleFilter = iota
	Linear
	CatmullRom
	Lanczos
)

var filterNames = [...]string{"nearest", "linear", "catmullrom", "lanczos"}

// String returns the filter name as accepted by ParseResampleFilter.
func (f ResampleFilter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("ResampleFilter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseResampleFilter looks a filter up by name.
func ParseResampleFilter(name string) (ResampleFilter, error) {
	for i, n := range filterNames {
		if n == name {
			return ResampleFilter(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown resample filter %q", ErrInvalidArgument, name)
}

func (f ResampleFilter) imaging() (imaging.ResampleFilter, error) {
	switch f {
	case Nearest:
		return imaging.NearestNeighbor, nil
	case Linear:
		return imaging.Linear, nil
	case CatmullRom:
		return imaging.CatmullRom, nil
	case Lanczos:
		return imaging.Lanczos, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("%w: unknown resample filter %d", ErrInvalidArgument, f)
	}
}

// Crop returns the region [x1,x2)×[y1,y2) as a new image.
func Crop(img *Image, x1, y1, x2, y2 int) (*Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if x1 < 0 || y1 < 0 || x2 > img.width || y2 > img.height || x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("%w: crop (%d,%d)-(%d,%d) of %dx%d",
			ErrInvalidArgument, x1, y1, x2, y2, img.width, img.height)
	}
	out := img.derive(x2-x1, y2-y1)
	for y := y1; y < y2; y++ {
		copy(out.row(y-y1), img.row(y)[x1*4:x2*4])
	}
	return out, nil
}

// FlipH mirrors the image left to right in place.
func FlipH(img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	img.forRows(func(_ int, row []uint8) {
		for l, r := 0, len(row)-4; l < r; l, r = l+4, r-4 {
			for c := range 4 {
				row[l+c], row[r+c] = row[r+c], row[l+c]
			}
		}
	})
	return nil
}

// FlipV mirrors the image top to bottom in place.
func FlipV(img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	tmp := make([]uint8, img.stride())
	for top, bottom := 0, img.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		copy(tmp, img.row(top))
		copy(img.row(top), img.row(bottom))
		copy(img.row(bottom), tmp)
	}
	return nil
}

// Resize returns a new width×height image resampled with filter.
func Resize(img *Image, width, height int, filter ResampleFilter) (*Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if _, err := bufLen(width, height); err != nil {
		return nil, err
	}
	f, err := filter.imaging()
	if err != nil {
		return nil, err
	}

	Logger().Debug("photon: resize", "from", image.Pt(img.width, img.height), "to", image.Pt(width, height))

	resized := imaging.Resize(img.view(), width, height, f)
	out := img.derive(width, height)
	copy(out.pix, resized.Pix)
	return out, nil
}
