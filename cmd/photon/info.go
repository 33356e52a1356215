package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/photon"
	"github.com/spf13/cobra"
)

var (
	resizeWidth  int
	resizeHeight int
	resizeFilter string
)

var infoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Print dimensions and a content fingerprint",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

var effectsCmd = &cobra.Command{
	Use:   "effects",
	Short: "List the effect catalogue",
	Args:  cobra.NoArgs,
	Run:   runEffects,
}

var resizeCmd = &cobra.Command{
	Use:   "resize <in> <out>",
	Short: "Resample an image to a new size",
	Args:  cobra.ExactArgs(2),
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().IntVar(&resizeWidth, "width", 0, "target width (0 keeps the aspect ratio)")
	resizeCmd.Flags().IntVar(&resizeHeight, "height", 0, "target height (0 keeps the aspect ratio)")
	resizeCmd.Flags().StringVarP(&resizeFilter, "filter", "f", "lanczos", "nearest, linear, catmullrom or lanczos")
	rootCmd.AddCommand(infoCmd, effectsCmd, resizeCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		img, err := load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %dx%d %016x\n", path, img.Width(), img.Height(), img.Fingerprint())
	}
	return nil
}

func runEffects(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for _, e := range photon.Effects() {
		if len(e.Params) == 0 {
			fmt.Fprintln(out, e.Name)
			continue
		}
		fmt.Fprintf(out, "%-28s %s\n", e.Name, strings.Join(e.Params, ","))
	}
}

func runResize(_ *cobra.Command, args []string) error {
	filter, err := photon.ParseResampleFilter(resizeFilter)
	if err != nil {
		return err
	}
	img, err := load(args[0])
	if err != nil {
		return err
	}
	w, h, err := targetSize(img.Width(), img.Height(), resizeWidth, resizeHeight)
	if err != nil {
		return err
	}
	logVerbose("resize %dx%d -> %dx%d (%v)", img.Width(), img.Height(), w, h, filter)
	out, err := photon.Resize(img, w, h, filter)
	if err != nil {
		return err
	}
	return save(out, args[1])
}

// targetSize fills a zero dimension from the other one, keeping the
// aspect ratio of srcW×srcH.
func targetSize(srcW, srcH, w, h int) (int, int, error) {
	switch {
	case w < 0 || h < 0 || (w == 0 && h == 0):
		return 0, 0, fmt.Errorf("%w: resize needs --width or --height", photon.ErrInvalidArgument)
	case w == 0:
		w = max(1, (srcW*h+srcH/2)/srcH)
	case h == 0:
		h = max(1, (srcH*w+srcW/2)/srcW)
	}
	return w, h, nil
}
