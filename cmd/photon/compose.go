package main

import (
	"github.com/gogpu/photon"
	"github.com/spf13/cobra"
)

var (
	blendMode  string
	watermarkX int
	watermarkY int
)

var blendCmd = &cobra.Command{
	Use:   "blend <base> <overlay> <out>",
	Short: "Blend two images of the same size",
	Args:  cobra.ExactArgs(3),
	RunE:  runBlend,
}

var watermarkCmd = &cobra.Command{
	Use:   "watermark <base> <overlay> <out>",
	Short: "Composite a smaller image onto a base image",
	Args:  cobra.ExactArgs(3),
	RunE:  runWatermark,
}

func init() {
	blendCmd.Flags().StringVarP(&blendMode, "mode", "m", "normal", "blend mode (normal, multiply, screen, overlay, ...)")
	watermarkCmd.Flags().IntVar(&watermarkX, "x", 0, "left edge of the overlay")
	watermarkCmd.Flags().IntVar(&watermarkY, "y", 0, "top edge of the overlay")
	rootCmd.AddCommand(blendCmd, watermarkCmd)
}

func runBlend(_ *cobra.Command, args []string) error {
	mode, err := photon.ParseBlendMode(blendMode)
	if err != nil {
		return err
	}
	base, overlay, err := loadPair(args[0], args[1])
	if err != nil {
		return err
	}
	if err := photon.Blend(base, overlay, mode); err != nil {
		return err
	}
	return save(base, args[2])
}

func runWatermark(_ *cobra.Command, args []string) error {
	base, overlay, err := loadPair(args[0], args[1])
	if err != nil {
		return err
	}
	if err := photon.Watermark(base, overlay, watermarkX, watermarkY); err != nil {
		return err
	}
	return save(base, args[2])
}

func loadPair(a, b string) (*photon.Image, *photon.Image, error) {
	first, err := load(a)
	if err != nil {
		return nil, nil, err
	}
	second, err := load(b)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}
