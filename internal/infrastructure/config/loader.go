package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading.
type Manager struct {
	config *Config
	viper  *viper.Viper
	dirs   *XDGDirs
	mu     sync.RWMutex
}

// NewManager creates a configuration manager over the XDG directories.
func NewManager() (*Manager, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDirs(dirs)
}

// NewManagerWithDirs creates a configuration manager over explicit directories.
func NewManagerWithDirs(dirs *XDGDirs) (*Manager, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath(dirs.ConfigHome)

	// PORICOM_STORE_BACKEND, PORICOM_PREVIEW_WIDTH, ...
	v.SetEnvPrefix("PORICOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "PORICOM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PORICOM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PORICOM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORICOM_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v, dirs: dirs}, nil
}

// Load loads the configuration from file and environment variables,
// creating a default config file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.dirs.Ensure(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	m.resolvePaths(config)
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.dirs.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.dirs.ConfigHome,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := WriteConfigOrdered(DefaultConfig(), m.dirs.ConfigFile()); err != nil {
		return err
	}
	if _, err := GenerateSchemaFile(m.dirs.SchemaFile()); err != nil {
		return err
	}
	return nil
}

// resolvePaths fills empty paths with their XDG defaults.
func (m *Manager) resolvePaths(config *Config) {
	if config.Store.SettingsDir == "" {
		config.Store.SettingsDir = m.dirs.SettingsDir()
	}
	if config.Store.DatabasePath == "" {
		config.Store.DatabasePath = m.dirs.DatabaseFile()
	}
	if config.Preview.CSSPath == "" {
		config.Preview.CSSPath = m.dirs.PreviewCSSFile()
	}
}

func normalizeConfig(config *Config) {
	config.Store.Backend = StoreBackend(strings.ToLower(strings.TrimSpace(string(config.Store.Backend))))
	if config.Store.Backend == "" {
		config.Store.Backend = BackendFile
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "":
		config.Logging.Level = "info"
	case "warning":
		config.Logging.Level = "warn"
	case "off":
		config.Logging.Level = "disabled"
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}

	if config.Preview.Width == 0 {
		config.Preview.Width = defaultPreviewWidth
	}
	if config.Preview.Height == 0 {
		config.Preview.Height = defaultPreviewHeight
	}

	if config.Appearance.Palette == (ColorPalette{}) {
		config.Appearance.Palette = DefaultDarkPalette()
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("store.backend", string(defaults.Store.Backend))
	m.viper.SetDefault("store.settings_dir", defaults.Store.SettingsDir)
	m.viper.SetDefault("store.database_path", defaults.Store.DatabasePath)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("preview.css_path", defaults.Preview.CSSPath)
	m.viper.SetDefault("preview.width", defaults.Preview.Width)
	m.viper.SetDefault("preview.height", defaults.Preview.Height)

	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}

// Get returns a copy of the loaded configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Dirs returns the directories the manager resolves paths against.
func (m *Manager) Dirs() *XDGDirs {
	return m.dirs
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.dirs.ConfigFile()
}
