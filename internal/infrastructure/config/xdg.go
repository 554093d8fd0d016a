package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "poricom"
	databaseName = "settings.sqlite"
	configName   = "config"
	schemaName   = "config.schema.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for poricom:
// - $XDG_CONFIG_HOME/poricom (default: ~/.config/poricom)
// - $XDG_DATA_HOME/poricom (default: ~/.local/share/poricom)
// - $XDG_STATE_HOME/poricom (default: ~/.local/state/poricom)
//
// With ENV=dev every directory is ./.dev/poricom.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		StateHome:  xdgDir("XDG_STATE_HOME", homeDir, ".local", "state"),
	}, nil
}

func xdgDir(env, home string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appName)
}

// SingleDir places every application directory under dir.
func SingleDir(dir string) *XDGDirs {
	return &XDGDirs{ConfigHome: dir, DataHome: dir, StateHome: dir}
}

// ConfigFile returns the path of the application config file.
func (d *XDGDirs) ConfigFile() string {
	return filepath.Join(d.ConfigHome, configName+".toml")
}

// SchemaFile returns the path of the generated JSON schema.
func (d *XDGDirs) SchemaFile() string {
	return filepath.Join(d.ConfigHome, schemaName)
}

// SettingsDir returns the default directory of the per-group settings files.
func (d *XDGDirs) SettingsDir() string {
	return filepath.Join(d.ConfigHome, "settings")
}

// DatabaseFile returns the default sqlite settings database path.
func (d *XDGDirs) DatabaseFile() string {
	return filepath.Join(d.DataHome, databaseName)
}

// PreviewCSSFile returns the default path of the generated preview stylesheet.
func (d *XDGDirs) PreviewCSSFile() string {
	return filepath.Join(d.StateHome, "preview.css")
}

// ManDir returns the user man page directory next to the data directory.
func (d *XDGDirs) ManDir() string {
	return filepath.Join(filepath.Dir(d.DataHome), "man", "man1")
}

// Ensure creates the directories if they don't exist.
func (d *XDGDirs) Ensure() error {
	for _, dir := range []string{d.ConfigHome, d.DataHome, d.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
