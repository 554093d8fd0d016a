package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_FromEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "share"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "config", "poricom"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(base, "config", "poricom", "config.toml"), dirs.ConfigFile())
	assert.Equal(t, filepath.Join(base, "config", "poricom", "settings"), dirs.SettingsDir())
	assert.Equal(t, filepath.Join(base, "share", "poricom", "settings.sqlite"), dirs.DatabaseFile())
	assert.Equal(t, filepath.Join(base, "state", "poricom", "preview.css"), dirs.PreviewCSSFile())
	assert.Equal(t, filepath.Join(base, "share", "man", "man1"), dirs.ManDir())
}

func TestXDGDirs_Ensure(t *testing.T) {
	base := t.TempDir()
	dirs := &XDGDirs{
		ConfigHome: filepath.Join(base, "c"),
		DataHome:   filepath.Join(base, "d"),
		StateHome:  filepath.Join(base, "s"),
	}

	require.NoError(t, dirs.Ensure())
	assert.DirExists(t, dirs.ConfigHome)
	assert.DirExists(t, dirs.DataHome)
	assert.DirExists(t, dirs.StateHome)
}
