// Command photon applies image effects from the command line.
//
// Usage:
//
//	photon apply in.png out.png sepia gaussian_blur:2 threshold:128
//	photon blend base.png overlay.png out.png --mode multiply
//	photon text in.png out.png "Hello" --size 32 --color "#ffcc00"
//	photon effects
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
