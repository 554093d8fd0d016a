package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDirs(SingleDir(dir))
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(dir, "settings"), cfg.Store.SettingsDir)
	assert.Equal(t, filepath.Join(dir, "settings.sqlite"), cfg.Store.DatabasePath)
	assert.Equal(t, filepath.Join(dir, "preview.css"), cfg.Preview.CSSPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 800, cfg.Preview.Width)
	assert.Equal(t, filepath.Join(dir, "config.toml"), mgr.GetConfigFile())
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `[store]
backend = 'SQLite'
database_path = '/tmp/poricom-test.sqlite'

[logging]
level = 'warning'

[preview]
width = 1024
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
	t.Setenv("PORICOM_LOG_FORMAT", "json")
	t.Setenv("PORICOM_PREVIEW_HEIGHT", "480")

	mgr, err := NewManagerWithDirs(SingleDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/tmp/poricom-test.sqlite", cfg.Store.DatabasePath)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 1024, cfg.Preview.Width)
	assert.Equal(t, 480, cfg.Preview.Height)
}

func TestManager_LoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	content := "[store]\nbackend = 'etcd'\n\n[preview]\nwidth = -3\n\n[appearance.palette]\naccent = 'green'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerWithDirs(SingleDir(dir))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.backend")
	assert.Contains(t, err.Error(), "preview.width")
	assert.Contains(t, err.Error(), "appearance.palette.accent")
}

func TestManager_GetBeforeLoad(t *testing.T) {
	mgr, err := NewManagerWithDirs(SingleDir(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New(), dirs: SingleDir(t.TempDir())}
	mgr.setDefaults()

	assert.Equal(t, "file", mgr.viper.GetString("store.backend"))
	assert.Equal(t, "console", mgr.viper.GetString("logging.format"))
	assert.Equal(t, 600, mgr.viper.GetInt("preview.height"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: " OFF ", Format: "JSON"}}

	normalizeConfig(cfg)

	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "disabled", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, defaultPreviewWidth, cfg.Preview.Width)
	assert.Equal(t, defaultPreviewHeight, cfg.Preview.Height)
	assert.Equal(t, DefaultDarkPalette(), cfg.Appearance.Palette)
}

func TestGenerateSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.schema.json")

	got, err := GenerateSchemaFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"backend"`)
	assert.Contains(t, string(data), `"settings_dir"`)
	assert.Contains(t, string(data), "Poricom Configuration")
}
