// Package config loads the application configuration and stores the
// settings groups as TOML files.
package config

// StoreBackend selects the settings store implementation.
type StoreBackend string

const (
	BackendFile   StoreBackend = "file"
	BackendSQLite StoreBackend = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	Store   StoreConfig   `mapstructure:"store" toml:"store" json:"store"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	Preview PreviewConfig `mapstructure:"preview" toml:"preview" json:"preview"`
	// Appearance styles the CLI output.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// StoreConfig selects where settings groups are persisted.
type StoreConfig struct {
	// Backend is "file" (one TOML file per group) or "sqlite".
	Backend StoreBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=file,enum=sqlite,default=file"`
	// SettingsDir holds view.toml, hotkey.toml and ocr.toml. Empty means the XDG default.
	SettingsDir string `mapstructure:"settings_dir" toml:"settings_dir" json:"settings_dir,omitempty"`
	// DatabasePath is the sqlite file used by the sqlite backend. Empty means the XDG default.
	DatabasePath string `mapstructure:"database_path" toml:"database_path" json:"database_path,omitempty"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// PreviewConfig controls the generated preview stylesheet.
type PreviewConfig struct {
	// CSSPath is where the preview stylesheet is written. Empty means the XDG default.
	CSSPath string `mapstructure:"css_path" toml:"css_path" json:"css_path,omitempty"`
	// Width and Height are the live view size used for the overlay geometry.
	Width  int `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height int `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
}

// AppearanceConfig holds the CLI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette is the set of #RRGGBB colors the CLI theme is built from.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text           string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border         string `mapstructure:"border" toml:"border" json:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
