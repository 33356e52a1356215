package photon

import "runtime"

// Option configures an Image during creation.
//
// Example:
//
//	// Default single-threaded processing
//	img, _ := photon.New(w, h, pix)
//
//	// Split rows across four workers
//	img, _ := photon.New(w, h, pix, photon.WithWorkers(4))
type Option func(*imageOptions)

// imageOptions holds optional configuration for image creation.
type imageOptions struct {
	workers int
}

// defaultOptions returns the default image options: one worker.
func defaultOptions() imageOptions {
	return imageOptions{workers: 1}
}

// WithWorkers sets how many goroutines the drivers may use for this
// image. n <= 0 selects GOMAXPROCS. Results do not depend on n.
func WithWorkers(n int) Option {
	return func(o *imageOptions) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

func applyOptions(opts []Option) imageOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
