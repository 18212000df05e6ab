package cmd

import (
	"github.com/spf13/cobra"

	"github.com/platecad/platecad/internal/ui"
	"github.com/platecad/platecad/pkg/plate"
)

var uiParamsFile string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive editor",
	Long: `Open the graphical editor: sliders and measurement entry for the
plate parameters, live dimensioned preview, and export buttons.`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiParamsFile, "params", "", "load parameters from a JSON file")
}

func runUI(cmd *cobra.Command, args []string) error {
	store := plate.NewStore()
	if uiParamsFile != "" {
		p, err := plate.LoadFile(uiParamsFile)
		if err != nil {
			return err
		}
		store.Replace(p)
	}
	return ui.Run(store)
}
