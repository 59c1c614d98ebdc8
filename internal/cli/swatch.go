package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gamutgo/gamut"
)

// ANSI escape codes for terminal swatches.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 6
)

// swatchesEnabled reports whether swatch rendering is on: stdout must
// be a terminal and --no-color must be absent.
func swatchesEnabled() bool {
	return !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch returns a solid block of the color as a truecolor ANSI
// escape, or the empty string when swatches are disabled.
func swatch(c gamut.RGB[uint8]) string {
	if !swatchesEnabled() {
		return ""
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.Red(), c.Green(), c.Blue(), ansiSuffix)
	return "  " + bg + strings.Repeat(" ", swatchWidth) + ansiReset
}
