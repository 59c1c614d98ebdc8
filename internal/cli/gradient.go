package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamutgo/gamut"
)

var (
	// Gradient command flags
	gradientSteps  int
	gradientAsJSON bool
)

// gradientCmd represents the gradient command
var gradientCmd = &cobra.Command{
	Use:   "gradient <from> <to>",
	Short: "Interpolate a gradient between two colors",
	Long: `Interpolate a linear gradient between two RGB colors and print
one line per stop.

Colors can be given as hex strings, comma-separated channel triples
or SVG 1.1 color names.

Examples:
  # Eight stops from black to white
  gamut gradient black white

  # A 16-stop sunset
  gamut gradient --steps 16 "#ff8800" "#4400aa"

  # Machine-readable stops
  gamut gradient --json navy gold`,
	Args: cobra.ExactArgs(2),
	RunE: runGradient,
}

func init() {
	gradientCmd.Flags().IntVarP(&gradientSteps, "steps", "n", 8, "number of gradient stops (minimum 2)")
	gradientCmd.Flags().BoolVar(&gradientAsJSON, "json", false, "emit JSON instead of text")
}

// runGradient executes the gradient command.
func runGradient(cmd *cobra.Command, args []string) error {
	if gradientSteps < 2 {
		return fmt.Errorf("need at least 2 steps, got %d", gradientSteps)
	}
	from, err := parseColor(args[0])
	if err != nil {
		return err
	}
	to, err := parseColor(args[1])
	if err != nil {
		return err
	}

	stops := make([]gamut.RGB[uint8], gradientSteps)
	for i := range stops {
		t := float64(i) / float64(gradientSteps-1)
		stops[i] = from.Lerp(to, t)
	}

	if gradientAsJSON {
		report := make([]rgbReport, len(stops))
		for i, c := range stops {
			report[i] = newRGBReport(c)
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := cmd.OutOrStdout()
	for _, c := range stops {
		fmt.Fprintf(w, "%s  %3d,%3d,%3d%s\n", formatHex(c), c.Red(), c.Green(), c.Blue(), swatch(c))
	}
	return nil
}
