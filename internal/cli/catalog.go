package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/digital-footprint/internal/catalog"
	"github.com/rshade/digital-footprint/internal/report"
)

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the catalogued tasks and their unit energies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == outputJSON {
				data, err := report.MarshalJSONIndent(catalog.Tasks())
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}

			for _, task := range catalog.Tasks() {
				cmd.Printf("  %-22s %8s Wh  %-22s %s\n",
					task.ID, report.FormatFloat(task.UnitEnergyWh), task.UnitLabel, task.Label)
			}
			return nil
		},
	}
}

func newGridsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grids",
		Short: "List the catalogued grid locations and carbon intensities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == outputJSON {
				data, err := report.MarshalJSONIndent(catalog.Grids())
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}

			for _, grid := range catalog.Grids() {
				cmd.Printf("  %-12s %6.0f g CO2/kWh  %s\n",
					grid.ID, grid.CarbonIntensityGPerKWh, grid.Label)
			}
			return nil
		},
	}
}
