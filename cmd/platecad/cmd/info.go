package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platecad/platecad/pkg/drawing"
	"github.com/platecad/platecad/pkg/plate"
	"github.com/platecad/platecad/pkg/units"
)

var infoCmd = &cobra.Command{
	Use:   "info [params.json]",
	Short: "Show a parameter summary",
	Long: `Display the plate parameters in both unit systems, along with the
allowed ranges. Without an argument the defaults are shown; with a
parameter file, its (clamped) contents are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	params := plate.Defaults()
	source := "defaults"
	if len(args) == 1 {
		loaded, err := plate.LoadFile(args[0])
		if err != nil {
			return err
		}
		params = loaded
		source = args[0]
	}

	fmt.Printf("Parameters: %s\n\n", source)
	printField("Width", params.Width, plate.MinWidth, plate.MaxWidth)
	printField("Thickness", params.Thickness, plate.MinThickness, plate.MaxThickness)
	printField("Slot width", params.SlotWidth, plate.MinSlotWidth, plate.SlotWidthRatio*params.Width)

	view := drawing.DefaultView()
	w, h := drawing.Viewport(params, view.Zoom, drawing.SceneMargin)
	fmt.Printf("\nViewport at zoom %.1f: %.0f x %.0f px\n", view.Zoom, w, h)
	fmt.Printf("Width label: %s\n", units.FormatEngineering(params.Width, view.Precision))
	return nil
}

func printField(name string, value, lo, hi float64) {
	fmt.Printf("  %-11s %-10s %-12s  (range %g-%g\")\n",
		name+":",
		units.FormatDecimal(value, units.Imperial, 2),
		units.FormatDecimal(value, units.Metric, 1),
		lo, hi)
}
