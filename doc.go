// Package photon provides in-memory RGBA8 image processing.
//
// # Overview
//
// photon operates on a single value type, [Image]: a width, a height and
// a contiguous row-major buffer of straight-alpha RGBA bytes. Every
// operation mutates an image in place or reads two images and mutates the
// first. There is no hidden global state apart from the logger.
//
// # Quick Start
//
//	img, err := photon.New(2, 1, []byte{10, 20, 30, 255, 200, 100, 50, 128})
//	if err != nil {
//		return err
//	}
//	_ = photon.Map(img, photon.Invert(), photon.RGB)
//	_ = photon.GaussianBlur(img, 5)
//
// # Drivers
//
// Three drivers carry all transformations:
//   - [Map] applies a pure per-pixel function under a channel mask
//   - [Convolve] applies a square kernel with clamp-to-edge sampling
//   - [Blend], [Watermark] and [ReplaceBackground] combine two images
//
// Point operations are values of [PixelFunc] built by factories such as
// [HueRotate], [Saturate] or [Threshold]. Named presets live in the
// effect catalogue, see [Effects] and [Apply].
//
// # Concurrency
//
// Drivers run on the calling goroutine unless the image was created with
// [WithWorkers], in which case rows are split across a pool that lives
// only for the duration of the call. Callers must not share one image
// across goroutines without synchronisation.
//
// # Errors
//
// Operations return [ErrInvalidArgument], [ErrOutOfBounds] or
// [ErrSizeMismatch], possibly wrapped with details; match them with
// [errors.Is]. A failed operation leaves the image unchanged.
package photon
