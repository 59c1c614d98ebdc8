// Command gamut converts colors between RGB and Y'CbCr encodings,
// reports hue and chroma, and renders gradients in the terminal.
package main

import (
	"os"

	"github.com/gamutgo/gamut/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
