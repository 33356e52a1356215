// Package codec moves photon images in and out of encoded files.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP; encoding produces
// every format except WebP. Encoded bytes can also travel as base64
// text, which is how images are usually embedded in JSON or data URLs.
package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gogpu/photon"

	// Decoders registered with image.Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format is an encodable image format.
type Format = imaging.Format

// Encodable formats.
const (
	JPEG = imaging.JPEG
	PNG  = imaging.PNG
	GIF  = imaging.GIF
	TIFF = imaging.TIFF
	BMP  = imaging.BMP
)

// Errors.
var (
	// ErrUnsupportedFormat is returned when a format name or file
	// extension has no encoder.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyData is returned when there is nothing to decode.
	ErrEmptyData = errors.New("codec: empty data")
)

// ParseFormat resolves a format name or extension such as "png", ".jpg"
// or "TIFF".
func ParseFormat(name string) (Format, error) {
	f, err := imaging.FormatFromExtension(strings.TrimPrefix(strings.ToLower(name), "."))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Decode reads an encoded image from r.
func Decode(r io.Reader, opts ...Option) (*photon.Image, error) {
	cfg := applyOptions(opts)
	src, err := imaging.Decode(r, imaging.AutoOrientation(cfg.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	img, err := photon.FromStd(src, cfg.imageOpts...)
	if err != nil {
		return nil, err
	}
	photon.Logger().Debug("codec: decoded", "width", img.Width(), "height", img.Height())
	return img, nil
}

// DecodeBytes decodes an image from an encoded byte slice.
func DecodeBytes(data []byte, opts ...Option) (*photon.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts...)
}

// DecodeBase64 decodes standard base64 text holding an encoded image.
// Malformed base64 is reported as photon.ErrInvalidArgument.
func DecodeBase64(s string, opts ...Option) (*photon.Image, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", photon.ErrInvalidArgument, err)
	}
	return DecodeBytes(data, opts...)
}

// Open loads an image file, detecting the format from its content.
func Open(path string, opts ...Option) (*photon.Image, error) {
	cfg := applyOptions(opts)
	src, err := imaging.Open(filepath.Clean(path), imaging.AutoOrientation(cfg.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	return photon.FromStd(src, cfg.imageOpts...)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img *photon.Image, f Format, opts ...Option) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", photon.ErrInvalidArgument)
	}
	cfg := applyOptions(opts)
	if err := imaging.Encode(w, img.ToStd(), f, imaging.JPEGQuality(cfg.quality)); err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
		}
		return fmt.Errorf("codec: encode %v: %w", f, err)
	}
	photon.Logger().Debug("codec: encoded", "format", f.String(), "width", img.Width(), "height", img.Height())
	return nil
}

// EncodeBytes returns img encoded in format f.
func EncodeBytes(img *photon.Image, f Format, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBase64 returns img encoded in format f as standard base64 text.
func EncodeBase64(img *photon.Image, f Format, opts ...Option) (string, error) {
	data, err := EncodeBytes(img, f, opts...)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Save writes img to path, choosing the format from the file extension.
func Save(img *photon.Image, path string, opts ...Option) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", photon.ErrInvalidArgument)
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	cfg := applyOptions(opts)
	if err := imaging.Save(img.ToStd(), filepath.Clean(path), imaging.JPEGQuality(cfg.quality)); err != nil {
		return fmt.Errorf("codec: save %s: %w", path, err)
	}
	return nil
}
