package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/prefkit/internal/domain/entity"
)

// Validate reports every problem in cfg at once. Threshold problems wrap
// entity.ErrInvalidThresholds.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

func validateConfig(config *Config) error {
	var validationErrors []error

	validationErrors = append(validationErrors, validateBreakpoints(config)...)
	validationErrors = append(validationErrors, validateSignals(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n%w", errors.Join(validationErrors...))
	}
	return nil
}

func validateBreakpoints(config *Config) []error {
	var validationErrors []error
	if err := config.Breakpoints.Thresholds().Validate(); err != nil {
		validationErrors = append(validationErrors, fmt.Errorf("breakpoints: %w", err))
	}
	if _, err := config.Breakpoints.FallbackClass(); err != nil {
		validationErrors = append(validationErrors, fmt.Errorf("breakpoints.fallback: %w", err))
	}
	return validationErrors
}

func validateSignals(config *Config) []error {
	var validationErrors []error
	switch config.Signals.ColorScheme {
	case ColorSchemeDefault, ColorSchemePreferDark, ColorSchemePreferLight:
	default:
		validationErrors = append(validationErrors, fmt.Errorf("signals.color_scheme %q must be default, prefer-dark or prefer-light", config.Signals.ColorScheme))
	}
	if config.Signals.CellWidth < 1 {
		validationErrors = append(validationErrors, errors.New("signals.cell_width must be positive"))
	}
	return validationErrors
}

func validateDatabase(config *Config) []error {
	if !config.Database.Ephemeral && config.Database.Path == "" {
		return []error{errors.New("database.path must be set unless database.ephemeral is true")}
	}
	return nil
}

func validateLogging(config *Config) []error {
	var validationErrors []error
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Errorf("logging.level %q is not a valid level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Errorf("logging.format %q must be console or json", config.Logging.Format))
	}
	return validationErrors
}

// ErrInvalidThresholds is entity.ErrInvalidThresholds, for callers that only
// import config.
var ErrInvalidThresholds = entity.ErrInvalidThresholds
