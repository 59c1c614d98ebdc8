package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gamutgo/gamut"
)

var (
	// Convert command flags
	convertModel  string
	convertGamut  string
	convertAsJSON bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to Y'CbCr and back",
	Long: `Convert an RGB color to Y'CbCr under a chosen conversion model,
then decode it back to RGB.

The command also reports the color's hue and chroma. Colors can be
given as hex strings, comma-separated channel triples or SVG 1.1
color names.

Examples:
  # Convert a hex color with the JPEG (BT.601) model
  gamut convert "#ff8800"

  # Use the BT.709 model and keep out-of-gamut values on the return trip
  gamut convert --model bt709 --gamut preserve "255,136,0"

  # Convert a named color and emit JSON
  gamut convert --json tomato`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertModel, "model", "m", "jpeg", "conversion model (jpeg, bt709, bt2020)")
	convertCmd.Flags().StringVarP(&convertGamut, "gamut", "g", "clip", "out-of-gamut handling on decode (preserve, clip)")
	convertCmd.Flags().BoolVar(&convertAsJSON, "json", false, "emit JSON instead of text")
}

// rgbReport is the JSON shape of a single RGB color.
type rgbReport struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// ycbcrReport is the JSON shape of a single Y'CbCr color.
type ycbcrReport struct {
	Luma uint8 `json:"luma"`
	Cb   uint8 `json:"cb"`
	Cr   uint8 `json:"cr"`
}

// convertReport is the JSON shape of the convert command output.
type convertReport struct {
	Input      rgbReport   `json:"input"`
	HueDegrees float64     `json:"hue_degrees"`
	Chroma     uint8       `json:"chroma"`
	Model      string      `json:"model"`
	YCbCr      ycbcrReport `json:"ycbcr"`
	Roundtrip  rgbReport   `json:"roundtrip"`
}

func newRGBReport(c gamut.RGB[uint8]) rgbReport {
	return rgbReport{R: c.Red(), G: c.Green(), B: c.Blue(), Hex: formatHex(c)}
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	in, err := parseColor(args[0])
	if err != nil {
		return err
	}
	model, err := modelFromName(convertModel)
	if err != nil {
		return err
	}
	mode, err := gamutModeFromName(convertGamut)
	if err != nil {
		return err
	}

	ycc := gamut.YCbCrFromRGB(in, model)
	back := ycc.ToRGB(model, mode)
	hue := in.Hue().Degrees()

	if convertAsJSON {
		report := convertReport{
			Input:      newRGBReport(in),
			HueDegrees: float64(hue),
			Chroma:     in.Chroma(),
			Model:      strings.ToLower(convertModel),
			YCbCr:      ycbcrReport{Luma: ycc.Luma(), Cb: ycc.Cb(), Cr: ycc.Cr()},
			Roundtrip:  newRGBReport(back),
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Input:     %v  %s%s\n", in, formatHex(in), swatch(in))
	fmt.Fprintf(w, "Hue:       %.1f°\n", float64(hue))
	fmt.Fprintf(w, "Chroma:    %d\n", in.Chroma())
	fmt.Fprintf(w, "Model:     %s\n", strings.ToLower(convertModel))
	fmt.Fprintf(w, "Y'CbCr:    %v\n", ycc)
	fmt.Fprintf(w, "Roundtrip: %v  %s%s\n", back, formatHex(back), swatch(back))
	return nil
}
