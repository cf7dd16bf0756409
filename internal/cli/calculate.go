package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/digital-footprint/internal/footprint"
	"github.com/rshade/digital-footprint/internal/report"
)

func newCalculateCmd() *cobra.Command {
	var (
		location string
		tasks    []string
		sweep    bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate energy and CO2 for a set of task quantities",
		Example: `  footprint calculate --location france --task text_generation=10
  footprint calculate --task video_call=2 --task netflix_streaming=3 --sweep -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			usage, err := parseUsageFlags(tasks)
			if err != nil {
				return err
			}

			if location == "" {
				location = cfg.DefaultLocation
			}

			logger.Debug().Str("location", location).Int("task_count", len(usage)).Msg("calculating footprint")

			result, err := footprint.CalculateByID(usage, location)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output == outputJSON {
				data, err := report.MarshalJSONIndent(result)
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			} else {
				cmd.Print(report.Summary(result))
			}

			if sweep {
				return printSweep(cmd, usage, location, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "grid location id (default from config)")
	cmd.Flags().StringArrayVarP(&tasks, "task", "t", nil, "task quantity as id=quantity (repeatable)")
	cmd.Flags().BoolVar(&sweep, "sweep", false, "also show CO2 at every catalogued location")

	return cmd
}

// printSweep renders the all-locations comparison table.
func printSweep(cmd *cobra.Command, usage footprint.UsageInput, baseID, output string) error {
	rows, err := report.LocationSweep(usage, baseID)
	if err != nil {
		return err
	}

	if output == outputJSON {
		data, err := report.MarshalJSONIndent(rows)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("\nLocation comparison:")
	for _, row := range rows {
		cmd.Printf("  %-12s %8.0f g CO2/kWh  %10.2f g  %6.2fx\n",
			row.Location.Label,
			row.Location.CarbonIntensityGPerKWh,
			row.CO2G,
			row.RelativeToBase,
		)
	}
	return nil
}
