// Package filter generates convolution kernels and colour matrices.
//
// The package holds the numeric building blocks only:
//   - 1D Gaussian and box weights and their 2D outer products
//   - A small cache of Gaussian kernels keyed by size and sigma
//   - 4x5 colour matrices (sepia, saturation, brightness, contrast, hue)
//
// Applying them to an image is the job of the photon drivers.
package filter
