package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		switch strings.TrimSpace(line) {
		case "[appearance.palette]", "[logging]", "[preview]", "[store]":
			sections = append(sections, strings.TrimSpace(line))
		}
	}
	assert.Equal(t, []string{"[appearance.palette]", "[logging]", "[preview]", "[store]"}, sections)
	assert.Contains(t, string(content), "#4ade80")

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[view]
previewPadding = 10

  [view.previewFont]
  family = 'Arial'

[hotkey]
startCaptureAlt = true
`
	got := sortTOMLSections(input)

	hotkey := strings.Index(got, "[hotkey]")
	view := strings.Index(got, "[view]")
	font := strings.Index(got, "[view.previewFont]")
	assert.True(t, strings.HasPrefix(got, "title = 'x'"))
	assert.Less(t, hotkey, view)
	assert.Less(t, view, font)
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.False(t, strings.HasSuffix(got, "\n\n"))
}

func TestWriteFileAtomic_ReplacesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "view.toml")

	require.NoError(t, writeFileAtomic(path, []byte("[view]\npreviewPadding = 10\n")))
	require.NoError(t, writeFileAtomic(path, []byte("[view]\npreviewPadding = 20\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[view]\npreviewPadding = 20\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are renamed or removed")
	assert.Equal(t, "view.toml", entries[0].Name())
}
