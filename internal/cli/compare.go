package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/digital-footprint/internal/footprint"
	"github.com/rshade/digital-footprint/internal/report"
)

func newCompareCmd() *cobra.Command {
	var (
		locationA string
		locationB string
		tasks     []string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the same usage between two grid locations",
		Example: `  footprint compare --location-a iceland --location-b usa_texas --task image_generation=50
  footprint compare -a france -b uk --task video_call=1 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			usage, err := parseUsageFlags(tasks)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("location_a", locationA).
				Str("location_b", locationB).
				Int("task_count", len(usage)).
				Msg("comparing locations")

			result, err := footprint.CompareByID(usage, locationA, locationB)
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
				return nil
			}

			cmd.Print(report.CompareSummary(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&locationA, "location-a", "a", "", "first grid location id")
	cmd.Flags().StringVarP(&locationB, "location-b", "b", "", "second grid location id")
	cmd.Flags().StringArrayVarP(&tasks, "task", "t", nil, "task quantity as id=quantity (repeatable)")
	_ = cmd.MarkFlagRequired("location-a")
	_ = cmd.MarkFlagRequired("location-b")

	return cmd
}
