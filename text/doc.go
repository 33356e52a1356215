// Package text renders strings onto photon images.
//
// The pipeline has three stages:
//
//   - Face: a parsed font at a pixel size (LoadFace, DefaultFace)
//   - Shape: HarfBuzz shaping of each bidi run into positioned glyphs
//   - Rasterize: glyph outlines filled into an *image.Alpha coverage mask
//
// Draw ties the stages together and composites the mask onto an image in
// a single colour.
//
// # Example usage
//
//	face, err := text.DefaultFace(32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = text.Draw(img, "Hello", 10, 40, face, photon.NewRgb(255, 255, 255))
package text
