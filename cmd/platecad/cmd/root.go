package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "platecad",
	Short: "platecad - parametric slotted-plate drawing tool",
	Long: `platecad draws a dimensioned technical drawing of a rectangular
plate with a center slot from a small set of parameters.

Examples:
  platecad ui                                  # Launch interactive editor
  platecad export --format svg -o plate.svg    # Export the drawing
  platecad export --width "1'-6\"" --format pdf -o plate.pdf
  platecad info plate.json                     # Summarize a parameter file`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
