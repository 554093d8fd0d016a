package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/poricom/poricom/internal/cli/styles"
	"github.com/poricom/poricom/internal/domain/build"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/infrastructure/config"
)

func TestNewTheme_FallsBackToDark(t *testing.T) {
	theme := styles.NewTheme(nil)
	assert.Equal(t, lipgloss.Color("#4ade80"), theme.Accent)
	assert.Equal(t, theme.Accent, theme.Success)
}

func TestNewTheme_UsesConfiguredPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#ff00ff"

	theme := styles.NewTheme(cfg)
	assert.Equal(t, lipgloss.Color("#ff00ff"), theme.Accent)
}

func TestTheme_SwatchBadge(t *testing.T) {
	theme := styles.NewTheme(nil)
	out := theme.SwatchBadge(entity.RGBA(0, 128, 255, 60))
	assert.Contains(t, out, "#0080ff3c")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))
	out := r.Render(build.Info{Version: "v0.3.0", Commit: "1a2b3c4d5e", GoVersion: "go1.25.3"})
	assert.Contains(t, out, "v0.3.0 (1a2b3c4)")
	assert.Contains(t, out, "go1.25.3")
	assert.NotContains(t, out, "Built")
}
