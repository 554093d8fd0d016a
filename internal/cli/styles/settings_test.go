package styles_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/application/usecase"
	"github.com/poricom/poricom/internal/cli/styles"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/infrastructure/config"
)

func newMenu(t *testing.T) *usecase.SettingsMenu {
	t.Helper()
	store, err := config.NewFileStore(t.TempDir())
	require.NoError(t, err)

	menu, err := usecase.NewSettingsMenu(usecase.SettingsMenuConfig{Store: store})
	require.NoError(t, err)
	require.NoError(t, menu.Load(context.Background()))
	return menu
}

func TestSettingsRenderer_RenderGroup(t *testing.T) {
	menu := newMenu(t)
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))

	out := r.RenderGroup(menu.View().Group())
	assert.Contains(t, out, "VIEW")
	assert.Contains(t, out, "previewPadding")
	assert.Contains(t, out, "write-through")

	out = r.RenderGroup(menu.OCR().Group())
	assert.Contains(t, out, "buffered")
	assert.NotContains(t, out, "unsaved")
}

func TestSettingsRenderer_RenderGroupDirty(t *testing.T) {
	menu := newMenu(t)
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))

	g := menu.Hotkeys().Group()
	require.NoError(t, g.Set(context.Background(), "startCaptureKey", entity.EnumIndex(3)))

	assert.Contains(t, r.RenderGroup(g), "unsaved")
}

func TestSettingsRenderer_RenderTabs(t *testing.T) {
	menu := newMenu(t)
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))

	out := r.RenderTabs(menu.Tabs(), "view")
	for _, g := range menu.Tabs() {
		assert.Contains(t, out, g.Name())
	}
}

func TestSettingsRenderer_RenderBindings(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))

	out := r.RenderBindings([]entity.ShortcutBinding{
		{Action: "startCapture", Label: "Start Capture", Accelerator: "<ctrl>+S"},
		{Action: "toggleMagicLens", Label: "Toggle Magic Lens"},
	})
	assert.Contains(t, out, "<ctrl>+S")
	assert.Contains(t, out, entity.UnmappedKey)
	assert.Contains(t, out, "toggleMagicLens")
}

func TestSettingsRenderer_RenderPreview(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))

	frame := port.PreviewFrame{
		Style: entity.PreviewStyle{Overlay: entity.OverlayGeometry(800, 600)},
		CSS:   "#liveView {}",
	}
	out := r.RenderPreview(frame, "/tmp/preview.css")
	assert.Contains(t, out, "w=200.0")
	assert.Contains(t, out, "#liveView {}")
	assert.Contains(t, out, "/tmp/preview.css")
}

func TestSettingsRenderer_RenderError(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestSettingsRenderer_RenderGroupMarksFixedProperties(t *testing.T) {
	menu := newMenu(t)
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))

	assert.Contains(t, r.RenderGroup(menu.Hotkeys().Group()), "fixed")
	assert.NotContains(t, r.RenderGroup(menu.View().Group()), "fixed")
}

func TestSettingsRenderer_RenderValueShowsDescription(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(config.DefaultConfig()))
	p, ok := entity.ViewCatalog.Lookup(entity.PropPreviewPadding)
	require.True(t, ok)

	out := r.RenderValue(p, entity.Distance(12))
	assert.Contains(t, out, p.Description)
	assert.Contains(t, out, "12")
}
