package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/photon"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <in> <out> <effect[:arg,...]>...",
	Short: "Run a chain of catalogue effects",
	Long: `Runs each effect in order on the decoded input and saves the result.

Arguments follow the effect name after a colon, separated by commas:

  photon apply in.jpg out.png hue_rotate_lch:120 gaussian_blur:3

Run "photon effects" for the list of names and arguments.`,
	Args: cobra.MinimumNArgs(3),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

// step is one parsed effect invocation.
type step struct {
	name string
	args []float64
}

func runApply(_ *cobra.Command, args []string) error {
	steps := make([]step, 0, len(args)-2)
	for _, a := range args[2:] {
		s, err := parseStep(a)
		if err != nil {
			return err
		}
		if _, ok := photon.Lookup(s.name); !ok {
			return fmt.Errorf("%w %q", photon.ErrUnknownEffect, s.name)
		}
		steps = append(steps, s)
	}

	img, err := load(args[0])
	if err != nil {
		return err
	}
	for _, s := range steps {
		logVerbose("effect %s %v", s.name, s.args)
		if err := photon.Apply(img, s.name, s.args...); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return save(img, args[1])
}

// parseStep splits "name:a,b" into a name and numeric arguments.
func parseStep(s string) (step, error) {
	name, rest, found := strings.Cut(s, ":")
	if name == "" {
		return step{}, fmt.Errorf("%w: empty effect name in %q", photon.ErrInvalidArgument, s)
	}
	out := step{name: name}
	if !found || rest == "" {
		return out, nil
	}
	for _, field := range strings.Split(rest, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return step{}, fmt.Errorf("%w: %s: argument %q is not a number", photon.ErrInvalidArgument, name, field)
		}
		out.args = append(out.args, v)
	}
	return out, nil
}
