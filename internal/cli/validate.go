/*
PURPOSE:
  Defines the 'validate' subcommand.
  Quick feasibility check before a full run.

REQUIREMENTS:
  User-specified:
  - Report whether the rover width budget holds.

  Implementation-discovered:
  - Exit non-zero when the budget fails, for use in scripts.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Check()

ERROR HANDLING:
  - Missing parameters are returned as errors.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  bogie-sizer validate --params Parameters.csv

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/validate.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/daryltucker/bogie-sizer/internal/engine"
	"github.com/daryltucker/bogie-sizer/internal/output"
)

var errWidthExceeded = errors.New("rover width budget exceeded")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the rover width budget without writing any tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}

		v, err := engine.Check(cfg)
		if err != nil {
			return err
		}
		output.ReportValidation(cmd.OutOrStdout(), v.Valid, v.Required, v.Target)
		if !v.Valid {
			return errWidthExceeded
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
