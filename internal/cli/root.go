// Package cli implements the footprint command tree.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/digital-footprint/internal/config"
	"github.com/rshade/digital-footprint/internal/footprint"
	"github.com/rshade/digital-footprint/internal/logging"
)

// Output formats for command results.
const (
	outputText = "text"
	outputJSON = "json"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// cfg is the effective configuration, loaded by the root PersistentPreRunE.
var cfg config.Config //nolint:gochecknoglobals // Shared with subcommands after root setup

// NewRootCmd creates the root cobra command for the footprint CLI.
// It wires up config loading, logging, and the subcommands.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "footprint",
		Short:   "Digital activity energy and carbon calculator",
		Long:    "footprint: estimate the energy and CO2 footprint of AI and cloud tasks across electrical grids",
		Version: version,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Logging.Level = "debug"
				cfg.Logging.Format = logging.FormatConsole
			}

			root := logging.NewStderrLogger(cfg.Logging.Level, cfg.Logging.Format)
			logger = logging.ComponentLogger(root, "cli")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to YAML config file")
	cmd.PersistentFlags().StringP("output", "o", outputText, "output format (text or json)")

	cmd.AddCommand(newCalculateCmd(), newCompareCmd(), newTasksCmd(), newGridsCmd(), newServeCmd())

	return cmd
}

const rootCmdExample = `  # Energy and CO2 for 10 AI paragraphs and 100 searches in the UK
  footprint calculate --location uk --task text_generation=10 --task google_search=100

  # Compare the same usage between Iceland and Texas
  footprint compare --location-a iceland --location-b usa_texas --task image_generation=50

  # List catalogued tasks and grid locations
  footprint tasks
  footprint grids

  # Serve the JSON API
  footprint serve --listen :8080`

// parseUsageFlags converts repeated "--task id=quantity" flags into a
// UsageInput. Quantity validation itself belongs to the calculation core;
// this only parses the flag syntax.
func parseUsageFlags(pairs []string) (footprint.UsageInput, error) {
	usage := make(footprint.UsageInput, len(pairs))
	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --task value %q, expected id=quantity", pair)
		}
		quantity, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in --task value %q: %w", pair, err)
		}
		usage[strings.TrimSpace(id)] = quantity
	}
	return usage, nil
}
