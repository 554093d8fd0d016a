package config

// Default configuration constants
const (
	defaultPreviewWidth  = 800
	defaultPreviewHeight = 600
	maxPreviewSize       = 16384
)

// DefaultConfig returns the default configuration values. Paths are left
// empty and resolved against the XDG directories on load.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendFile,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Preview: PreviewConfig{
			Width:  defaultPreviewWidth,
			Height: defaultPreviewHeight,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultDarkPalette(),
		},
	}
}

// DefaultDarkPalette returns the built-in dark CLI colors.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}
