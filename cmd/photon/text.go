package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/photon"
	"github.com/gogpu/photon/text"
	"github.com/spf13/cobra"
)

var (
	textX      int
	textY      int
	textSize   float64
	textColour string
	textFont   string
	textCenter bool
)

var textCmd = &cobra.Command{
	Use:   "text <in> <out> <string>",
	Short: "Draw a line of text onto an image",
	Long: `Draws one line of text with its baseline origin at --x, --y.
The Go Regular font is used unless --font names a TrueType file.`,
	Args: cobra.ExactArgs(3),
	RunE: runText,
}

func init() {
	textCmd.Flags().IntVar(&textX, "x", 10, "baseline origin x")
	textCmd.Flags().IntVar(&textY, "y", 40, "baseline origin y")
	textCmd.Flags().Float64VarP(&textSize, "size", "s", 32, "font size in pixels")
	textCmd.Flags().StringVarP(&textColour, "color", "c", "#ffffff", "text colour as #rrggbb")
	textCmd.Flags().StringVar(&textFont, "font", "", "TrueType or OpenType font file")
	textCmd.Flags().BoolVar(&textCenter, "center", false, "centre the line horizontally")
	rootCmd.AddCommand(textCmd)
}

func runText(_ *cobra.Command, args []string) error {
	colour, err := parseRgb(textColour)
	if err != nil {
		return err
	}
	face, err := loadFace()
	if err != nil {
		return err
	}
	img, err := load(args[0])
	if err != nil {
		return err
	}
	if textCenter {
		err = text.DrawCentered(img, args[2], textY, face, colour)
	} else {
		err = text.Draw(img, args[2], textX, textY, face, colour)
	}
	if err != nil {
		return err
	}
	return save(img, args[1])
}

func loadFace() (*text.Face, error) {
	if textFont == "" {
		return text.DefaultFace(textSize)
	}
	data, err := os.ReadFile(textFont)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return text.LoadFace(data, textSize)
}

// parseRgb parses "#rrggbb" or "rrggbb".
func parseRgb(s string) (photon.Rgb, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return photon.Rgb{}, fmt.Errorf("%w: colour %q is not #rrggbb", photon.ErrInvalidArgument, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return photon.Rgb{}, fmt.Errorf("%w: colour %q is not #rrggbb", photon.ErrInvalidArgument, s)
	}
	return photon.NewRgb(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
