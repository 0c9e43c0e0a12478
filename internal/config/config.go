/*
PURPOSE:
  Defines the configuration structure and loading logic for bogie-sizer.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the parameter source and output destination.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Output formats and file prefix are per-project choices, so they live here.
  - Fields are validated once after flags are applied.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3, github.com/go-playground/validator/v10

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config files fall back to defaults.
  - Validate() returns an error wrapping ErrInvalid.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (txt output in the working directory).

USAGE:
  cfg, err := config.Load("bogie_sizer.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new options.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

var validate = validator.New()

// Config represents the full configuration for bogie-sizer.
type Config struct {
	// Parameters is the CSV file holding the base parameters.
	Parameters string `yaml:"parameters" validate:"required"`
	OutputDir  string `yaml:"output_dir" validate:"required"`
	// FilePrefix is prepended to every output file name (e.g. "suspension_").
	FilePrefix string   `yaml:"file_prefix"`
	Formats    []string `yaml:"formats" validate:"required,min=1,dive,oneof=txt csv json yaml toml"`
	Manifest   bool     `yaml:"manifest"`
	LogLevel   string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat  string   `yaml:"log_format" validate:"oneof=text json"`
	// WatchDebounce coalesces bursts of file events from editors that save in several steps.
	WatchDebounce time.Duration `yaml:"watch_debounce" validate:"gte=0"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Parameters:    "Parameters.csv",
		OutputDir:     ".",
		Formats:       []string{"txt"},
		LogLevel:      "info",
		LogFormat:     "text",
		WatchDebounce: 200 * time.Millisecond,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"bogie_sizer.yaml", "suspension.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %v)", field, e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
