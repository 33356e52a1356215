package codec

import "github.com/gogpu/photon"

// DefaultJPEGQuality is used when no quality option is given.
const DefaultJPEGQuality = 90

// Option configures decoding or encoding.
type Option func(*config)

type config struct {
	quality    int
	autoOrient bool
	imageOpts  []photon.Option
}

// WithJPEGQuality sets the JPEG quality in [1, 100]. Values outside the
// range are clamped. Other formats ignore it.
func WithJPEGQuality(q int) Option {
	return func(c *config) {
		c.quality = min(max(q, 1), 100)
	}
}

// WithAutoOrientation applies the EXIF orientation tag of a JPEG while
// decoding. It is off by default.
func WithAutoOrientation(enabled bool) Option {
	return func(c *config) {
		c.autoOrient = enabled
	}
}

// WithImageOptions passes options to the decoded image, such as
// photon.WithWorkers.
func WithImageOptions(opts ...photon.Option) Option {
	return func(c *config) {
		c.imageOpts = append(c.imageOpts, opts...)
	}
}

func applyOptions(opts []Option) config {
	c := config{quality: DefaultJPEGQuality}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
