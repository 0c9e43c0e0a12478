/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full sizing pipeline.

REQUIREMENTS:
  User-specified:
  - Derive every table and write one file per table.
  - specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  bogie-sizer run --params Parameters.csv -o ./cad

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/bogie-sizer/internal/config"
	"github.com/daryltucker/bogie-sizer/internal/engine"
)

var (
	outputOverride   string
	formatsOverride  []string
	prefixOverride   string
	manifestOverride bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Derive all suspension dimensions",
	Long: `Derives every suspension dimension from the base parameter table.

The process follows a strict order:
1. Load: Reads the parameter CSV and derives the dependent base values.
2. Validate: Checks the rover width budget and reports the verdict.
3. Solve: Linkages, pivot housings, spacers, shafts, then fasteners and mounts.
4. Write: One file per table in every configured format.

Infeasible geometry (e.g. a negative linkage length) is logged, not rejected.`,
	Example: `  # Run with defaults (uses bogie_sizer.yaml, Parameters.csv)
  bogie-sizer run

  # Write CAD text and JSON into ./cad with a file prefix
  bogie-sizer run -o ./cad --format txt,json --prefix suspension_

  # Use another parameter sheet
  bogie-sizer run --params ./variants/wide.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(applyOutputOverrides(cmd))
		if err != nil {
			return err
		}
		_, err = engine.Run(cmd.Context(), cfg, cmd.OutOrStdout())
		return err
	},
}

// applyOutputOverrides copies output flags that were set on cmd into the config.
func applyOutputOverrides(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if len(formatsOverride) > 0 {
			cfg.Formats = formatsOverride
		}
		if cmd.Flags().Changed("prefix") {
			cfg.FilePrefix = prefixOverride
		}
		if cmd.Flags().Changed("manifest") {
			cfg.Manifest = manifestOverride
		}
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for derived tables")
	cmd.Flags().StringSliceVar(&formatsOverride, "format", nil, "Comma-separated output formats: txt, csv, json, yaml, toml")
	cmd.Flags().StringVar(&prefixOverride, "prefix", "", "Prefix for every output file name")
	cmd.Flags().BoolVar(&manifestOverride, "manifest", false, "Also write manifest.json describing the run")
}

func init() {
	rootCmd.AddCommand(runCmd)
	addOutputFlags(runCmd)
}
