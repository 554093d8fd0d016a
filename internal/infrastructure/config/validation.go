package config

import (
	"fmt"
	"strings"

	"github.com/poricom/poricom/internal/domain/validation"
)

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateStore(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePreview(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateStore(config *Config) []string {
	var validationErrors []string
	switch config.Store.Backend {
	case BackendFile, BackendSQLite:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("store.backend must be %q or %q, got %q", BackendFile, BackendSQLite, config.Store.Backend))
	}
	if config.Store.Backend == BackendFile && config.Store.SettingsDir == "" {
		validationErrors = append(validationErrors, "store.settings_dir must not be empty")
	}
	if config.Store.Backend == BackendSQLite && config.Store.DatabasePath == "" {
		validationErrors = append(validationErrors, "store.database_path must not be empty")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled, got %q", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json, got %q", config.Logging.Format))
	}
	return validationErrors
}

func validatePreview(config *Config) []string {
	var validationErrors []string
	if config.Preview.Width < 1 || config.Preview.Width > maxPreviewSize {
		validationErrors = append(validationErrors, fmt.Sprintf("preview.width must be between 1 and %d", maxPreviewSize))
	}
	if config.Preview.Height < 1 || config.Preview.Height > maxPreviewSize {
		validationErrors = append(validationErrors, fmt.Sprintf("preview.height must be between 1 and %d", maxPreviewSize))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return validation.ValidatePaletteHex("appearance.palette",
		p.Background, p.Surface, p.SurfaceVariant, p.Text, p.Muted, p.Accent, p.Border)
}
