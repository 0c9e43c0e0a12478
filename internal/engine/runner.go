/*
PURPOSE:
  High-level runner that orchestrates one sizing pass.
  Load parameters -> derive -> solve -> report -> persist.

REQUIREMENTS:
  User-specified:
  - Report the width verdict and minimum bolt lengths to the operator.
  - Write one file per derived table.

  Implementation-discovered:
  - The watch command re-runs this on every parameter change, so Run
    must not hold state between calls.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/params, internal/engine, internal/output

ERROR HANDLING:
  - Input errors abort the run.
  - Output errors are logged per table and returned after all writes.

IMPLEMENTATION RULES:
  - Diagnostics go to the supplied writer, logs go to output.Logger.

USAGE:
  design, err := engine.Run(ctx, cfg, os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/solve.go
  - internal/output/sink.go

MAINTENANCE:
  - Update when adding new diagnostics.
*/

package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/daryltucker/bogie-sizer/internal/config"
	"github.com/daryltucker/bogie-sizer/internal/output"
	"github.com/daryltucker/bogie-sizer/internal/params"
)

// LoadStore loads the parameter file and overlays the derived base parameters.
func LoadStore(path string) (*params.Store, error) {
	base, err := params.Load(path)
	if err != nil {
		return nil, err
	}
	return base.Derive()
}

// Check runs only the rover width validation.
func Check(cfg *config.Config) (Validation, error) {
	store, err := LoadStore(cfg.Parameters)
	if err != nil {
		return Validation{}, err
	}
	return ValidateRoverWidth(store)
}

// Run executes the full sizing pipeline.
func Run(ctx context.Context, cfg *config.Config, w io.Writer) (*Design, error) {
	formats := make([]output.Format, 0, len(cfg.Formats))
	for _, name := range cfg.Formats {
		f, err := output.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}

	output.Logger.Info("Loading parameters", "path", cfg.Parameters)
	store, err := LoadStore(cfg.Parameters)
	if err != nil {
		return nil, err
	}

	design, err := Solve(store)
	if err != nil {
		return nil, err
	}
	Report(w, design)

	sink := &output.Sink{Dir: cfg.OutputDir, Prefix: cfg.FilePrefix, Formats: formats}
	written, writeErr := sink.WriteAll(ctx, design.Tables())
	output.Logger.Info("Wrote tables", "dir", cfg.OutputDir, "files", len(written))

	if cfg.Manifest {
		path, err := sink.WriteManifest(output.NewManifest(cfg.Parameters, written))
		if err != nil {
			output.Logger.Error("Failed to write manifest", "error", err)
		} else {
			output.Logger.Info("Wrote manifest", "path", path)
		}
	}

	if writeErr != nil {
		return design, fmt.Errorf("failed to write some tables: %w", writeErr)
	}
	return design, nil
}

// Report prints the operator diagnostics for a solved design.
func Report(w io.Writer, d *Design) {
	output.ReportValidation(w, d.Validation.Valid, d.Validation.Required, d.Validation.Target)
	output.ReportMinBoltLength(w, "upper", d.UpperShaft.MinBoltLength)
	output.ReportMinBoltLength(w, "lower", d.LowerShaft.MinBoltLength)
}
