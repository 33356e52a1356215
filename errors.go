package photon

import "errors"

// Sentinel errors returned at the package boundary.
var (
	// ErrInvalidArgument is returned for malformed dimensions, buffers,
	// kernels or parameters outside their documented range.
	ErrInvalidArgument = errors.New("photon: invalid argument")

	// ErrOutOfBounds is returned for pixel coordinates outside the image.
	ErrOutOfBounds = errors.New("photon: coordinates out of bounds")

	// ErrSizeMismatch is returned when two images must share dimensions
	// and do not.
	ErrSizeMismatch = errors.New("photon: image size mismatch")
)
