package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/photon"
	"github.com/gogpu/photon/codec"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	workers int
	quality int
)

var rootCmd = &cobra.Command{
	Use:   "photon",
	Short: "Fast RGBA image effects",
	Long: `photon decodes an image, runs colour, convolution and compositing
effects over its pixels, and encodes the result.

Input formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
Output format follows the file extension.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			photon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "worker goroutines per image (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().IntVarP(&quality, "quality", "q", codec.DefaultJPEGQuality, "JPEG quality 1-100")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"photon %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[photon] "+format+"\n", args...)
	}
}

func load(path string) (*photon.Image, error) {
	img, err := codec.Open(path,
		codec.WithAutoOrientation(true),
		codec.WithImageOptions(photon.WithWorkers(workers)))
	if err != nil {
		return nil, err
	}
	logVerbose("loaded %s: %v", path, img)
	return img, nil
}

func save(img *photon.Image, path string) error {
	if err := codec.Save(img, path, codec.WithJPEGQuality(quality)); err != nil {
		return err
	}
	logVerbose("saved %s", path)
	return nil
}
