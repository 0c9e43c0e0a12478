/*
PURPOSE:
  Defines the root Cobra command for the bogie-sizer CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Every subcommand loads the same config, so loading lives here.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/bogie-sizer/main.go
  - Calls: Child commands (run, validate, watch, show)
  - Modifies: Global configuration state (temporarily, until passed down).

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init() and loadConfig().

RELATED FILES:
  - cmd/bogie-sizer/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/daryltucker/bogie-sizer/internal/config"
	"github.com/daryltucker/bogie-sizer/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile          string
	paramsOverride   string
	logLevelOverride string

	rootCmd = &cobra.Command{
		Use:           "bogie-sizer",
		Short:         "Derive rocker-bogie suspension dimensions for CAD",
		Long:          `Computes linkage, pivot housing, spacer, shaft, fastener and mount dimensions from a table of base parameters. Use 'run --help' for output options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command. SIGINT and SIGTERM cancel its context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bogie_sizer.yaml)")
	rootCmd.PersistentFlags().StringVar(&paramsOverride, "params", "", "Parameter CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig loads the config file, applies global overrides, validates it
// and configures the logger.
func loadConfig(apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if paramsOverride != "" {
		cfg.Parameters = paramsOverride
	}
	if logLevelOverride != "" {
		cfg.LogLevel = logLevelOverride
	}
	if apply != nil {
		apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := output.Configure(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}
