// Package cli implements the gamut command-line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gamutgo/gamut"
)

var (
	// Global flags shared by all commands.
	flagVerbose bool
	flagNoColor bool

	// rootCmd represents the base command when called without any
	// subcommands.
	rootCmd = &cobra.Command{
		Use:   "gamut",
		Short: "Inspect and convert colors between RGB and YCbCr",
		Long: `gamut converts colors between RGB and YCbCr encodings, reports hue
and chroma, and renders gradients in the terminal.

Colors are written as hex strings (#f80, #ff8800), comma-separated
channel triples (255,136,0) or SVG 1.1 color names (tomato).`,
		Version:       gamut.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				gamut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
)

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color swatches in output")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(gradientCmd)
}
