package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/platecad/platecad/pkg/drawing"
	"github.com/platecad/platecad/pkg/export"
	"github.com/platecad/platecad/pkg/plate"
	"github.com/platecad/platecad/pkg/units"
)

var exportFlags struct {
	format     string
	output     string
	paramsFile string

	width     string
	thickness string
	slot      string

	metric    bool
	precision int
	zoom      float64
	noDims    bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the drawing or parameter set to a file",
	Long: `Export renders the plate for the given parameters and writes it in
the requested format:

  svg    self-contained vector drawing
  pdf    A4 datasheet with title block
  json   parameter document (base units, re-importable)

Parameter flags accept plain decimals, unit suffixes ("120mm"), and
feet-inches notation ("1'-6\""). Values outside the allowed ranges are
clamped, not rejected.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.format, "format", "svg", "output format: svg, pdf, or json")
	f.StringVarP(&exportFlags.output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&exportFlags.paramsFile, "params", "", "load parameters from a JSON file first")
	f.StringVar(&exportFlags.width, "width", "", "plate width")
	f.StringVar(&exportFlags.thickness, "thickness", "", "plate thickness")
	f.StringVar(&exportFlags.slot, "slot", "", "center slot width")
	f.BoolVar(&exportFlags.metric, "metric", false, "interpret inputs and labels in millimeters")
	f.IntVar(&exportFlags.precision, "precision", 2, "label precision (0-4 fractional digits)")
	f.Float64Var(&exportFlags.zoom, "zoom", drawing.MinZoom, "drawing zoom (2.5-5.0)")
	f.BoolVar(&exportFlags.noDims, "no-dimensions", false, "omit dimension annotations")
}

func exportView() drawing.ViewConfig {
	view := drawing.ViewConfig{
		Unit:           units.Imperial,
		Precision:      exportFlags.precision,
		Zoom:           exportFlags.zoom,
		ShowDimensions: !exportFlags.noDims,
	}
	if exportFlags.metric {
		view.Unit = units.Metric
	}
	return view.Normalized()
}

func exportParams(unit units.Unit) (plate.Parameters, error) {
	store := plate.NewStore()
	if exportFlags.paramsFile != "" {
		p, err := plate.LoadFile(exportFlags.paramsFile)
		if err != nil {
			return plate.Parameters{}, err
		}
		store.Replace(p)
	}

	// Flag overrides go through the same update path as UI input, so
	// malformed values fall back and out-of-range values clamp.
	overrides := []struct {
		field plate.Field
		raw   string
	}{
		{plate.FieldWidth, exportFlags.width},
		{plate.FieldThickness, exportFlags.thickness},
		{plate.FieldSlotWidth, exportFlags.slot},
	}
	for _, ov := range overrides {
		if ov.raw == "" {
			continue
		}
		before := store.Current()
		after := store.Update(ov.field, ov.raw, unit)
		if verbose && before == after {
			fmt.Fprintf(os.Stderr, "ignored invalid %s %q\n", ov.field, ov.raw)
		}
	}
	return store.Current(), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	view := exportView()
	params, err := exportParams(view.Unit)
	if err != nil {
		return err
	}

	var data []byte
	switch exportFlags.format {
	case "svg":
		data = export.SVG(drawing.BuildScene(params, view))
	case "pdf":
		data, err = export.PDF(drawing.BuildScene(params, view))
		if err != nil {
			return err
		}
	case "json":
		data, err = plate.MarshalParams(params)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want svg, pdf, or json)", exportFlags.format)
	}

	if exportFlags.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportFlags.output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportFlags.output, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", len(data), exportFlags.output)
	}
	return nil
}
