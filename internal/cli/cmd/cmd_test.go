package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/poricom/poricom/internal/application/port/mocks"
	"github.com/poricom/poricom/internal/application/usecase"
	"github.com/poricom/poricom/internal/cli"
	"github.com/poricom/poricom/internal/domain/entity"
	repomocks "github.com/poricom/poricom/internal/domain/repository/mocks"
	"github.com/poricom/poricom/internal/infrastructure/config"
)

func appFactory(dir string) func() (*cli.App, error) {
	return func() (*cli.App, error) {
		mgr, err := config.NewManagerWithDirs(config.SingleDir(dir))
		if err != nil {
			return nil, err
		}
		return cli.NewAppWithManager(mgr)
	}
}

func executeCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	prev := newApp
	newApp = appFactory(dir)
	previewWidth, previewHeight = 0, 0
	t.Cleanup(func() { newApp = prev })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if app != nil {
		_ = app.Close()
		app = nil
	}
	return out.String(), err
}

func newTestApp(t *testing.T, dir string) *cli.App {
	t.Helper()
	a, err := appFactory(dir)()
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestSettingsShow(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, dir, "settings", "show")
	require.NoError(t, err)
	for _, want := range []string{"HOTKEYS", "VIEW", "OCR", "startCaptureKey", "previewFont", "engine"} {
		assert.Contains(t, out, want)
	}

	out, err = executeCommand(t, dir, "settings", "show", "ocr")
	require.NoError(t, err)
	assert.Contains(t, out, "manga-ocr")
	assert.NotContains(t, out, "previewFont")
}

func TestSettingsSetAndGet(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, dir, "settings", "set", "view", "previewPadding", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "view.")
	assert.Contains(t, out, "24")

	out, err = executeCommand(t, dir, "settings", "get", "view", "previewPadding")
	require.NoError(t, err)
	assert.Contains(t, out, "24")
	assert.Contains(t, out, "distance")
}

func TestSettingsSet_BufferedGroupIsSaved(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, dir, "settings", "set", "hotkeys", "toggleLoggingKey", "L")
	require.NoError(t, err)
	_, err = executeCommand(t, dir, "settings", "set", "hotkeys", "toggleLoggingCtrl", "true")
	require.NoError(t, err)

	files, err := config.NewFileStore(filepath.Join(dir, "settings"))
	require.NoError(t, err)
	raw, found, err := files.Get(context.Background(), entity.SectionHotkey, "toggleLoggingKey")
	require.NoError(t, err)
	require.True(t, found)
	assert.EqualValues(t, 12, raw)

	out, err := executeCommand(t, dir, "hotkeys")
	require.NoError(t, err)
	assert.Contains(t, out, "<ctrl>+L")
	assert.Contains(t, out, "<alt>+Q")
}

func TestSettingsSet_Rejects(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, dir, "settings", "set", "view", "previewPadding", "500")
	require.ErrorIs(t, err, entity.ErrInvalidValue)

	_, err = executeCommand(t, dir, "settings", "set", "view", "volume", "3")
	require.ErrorIs(t, err, entity.ErrUnknownProperty)

	_, err = executeCommand(t, dir, "settings", "get", "audio", "volume")
	require.Error(t, err)

	out, err := executeCommand(t, dir, "settings", "get", "view", "previewPadding")
	require.NoError(t, err)
	assert.Contains(t, out, "10")
}

func TestSettingsReset(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, dir, "settings", "set", "ocr", "engine", "tesseract")
	require.NoError(t, err)

	out, err := executeCommand(t, dir, "settings", "reset", "ocr")
	require.NoError(t, err)
	assert.Contains(t, out, "restored to defaults")

	out, err = executeCommand(t, dir, "settings", "get", "ocr", "engine")
	require.NoError(t, err)
	assert.Contains(t, out, "manga-ocr")
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, dir, "preview", "--width", "1000", "--height", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "x=725.0 y=25.0 w=250.0 h=450.0")
	assert.Contains(t, out, "#liveView")
	assert.FileExists(t, filepath.Join(dir, "preview.css"))
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, dir, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config.toml"))
	assert.Contains(t, out, filepath.Join(dir, "settings"))

	out, err = executeCommand(t, dir, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "config.schema.json")
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))
}

func TestEditProperty(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	ctx := context.Background()
	vp := portmocks.NewMockValuePicker(t)

	vp.EXPECT().
		PickDistance(mock.Anything, mock.Anything, entity.Distance(10)).
		Return(entity.Distance(30), true, nil).
		Once()

	var out bytes.Buffer
	require.NoError(t, editProperty(ctx, a, vp, &out, "view", entity.PropPreviewPadding))

	v, err := a.Menu.View().Group().Get(entity.PropPreviewPadding)
	require.NoError(t, err)
	assert.Equal(t, entity.Distance(30), v)
	assert.Equal(t, entity.Distance(30), a.Menu.View().Style().Padding)
}

func TestEditProperty_CancelLeavesGroupClean(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	ctx := context.Background()
	vp := portmocks.NewMockValuePicker(t)

	vp.EXPECT().
		PickIndex(mock.Anything, mock.Anything, entity.EnumIndex(1)).
		Return(entity.EnumIndex(0), false, nil).
		Once()

	var out bytes.Buffer
	require.NoError(t, editProperty(ctx, a, vp, &out, "ocr", entity.PropEngine))

	assert.Contains(t, out.String(), "unchanged")
	assert.False(t, a.Menu.Dirty())
	assert.Equal(t, "manga-ocr", a.Host.Engine())
}

func TestEditProperty_BufferedIsSaved(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	ctx := context.Background()
	vp := portmocks.NewMockValuePicker(t)

	vp.EXPECT().
		PickIndex(mock.Anything, mock.Anything, entity.EnumIndex(1)).
		Return(entity.EnumIndex(2), true, nil).
		Once()

	var out bytes.Buffer
	require.NoError(t, editProperty(ctx, a, vp, &out, "ocr", entity.PropEngine))

	assert.False(t, a.Menu.Dirty())
	assert.Equal(t, "tesseract", a.Host.Engine())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchSettings_ReloadsExternalEdits(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- watchSettings(ctx, a, out) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Watching")
	}, 2*time.Second, 10*time.Millisecond)

	// Another process edits the OCR file.
	other, err := config.NewFileStore(a.Config.Store.SettingsDir)
	require.NoError(t, err)
	require.NoError(t, other.Set(context.Background(), entity.SectionOCR, entity.PropEngine, int64(2)))

	require.Eventually(t, func() bool {
		return a.Host.Engine() == "tesseract"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Contains(t, out.String(), "OCR reloaded")
}

func TestWatchSettings_RequiresFileBackend(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	a.Files = nil

	err := watchSettings(context.Background(), a, &bytes.Buffer{})
	assert.ErrorContains(t, err, "file")
}

func TestCommit_FailedSaveDiscardsEdits(t *testing.T) {
	ctx := context.Background()
	store := repomocks.NewMockPropertyStore(t)
	store.EXPECT().Get(mock.Anything, "ocr", entity.PropEngine).Return(int64(2), true, nil).Once()
	store.EXPECT().Set(mock.Anything, "ocr", entity.PropEngine, mock.Anything).Return(errors.New("disk full")).Once()

	g, err := usecase.NewSettingsGroup(usecase.GroupConfig{
		Name:    "OCR",
		Section: "ocr",
		Catalog: entity.OCRCatalog,
		Policy:  usecase.Buffered,
		Store:   store,
	})
	require.NoError(t, err)
	g.Load(ctx)
	require.NoError(t, g.Set(ctx, entity.PropEngine, entity.EnumIndex(1)))
	require.True(t, g.Dirty())

	err = commit(ctx, g)

	require.Error(t, err)
	assert.False(t, g.Dirty())
	v, err := g.Get(entity.PropEngine)
	require.NoError(t, err)
	assert.Equal(t, entity.EnumIndex(2), v)
}

func TestSettingsSet_ForcedPropertyIsRefused(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, dir, "settings", "set", "hotkeys", "startCaptureKey", "W")
	require.ErrorIs(t, err, entity.ErrInvalidValue)
	assert.Contains(t, err.Error(), "fixed to Q")

	out, err := executeCommand(t, dir, "hotkeys")
	require.NoError(t, err)
	assert.Contains(t, out, "<alt>+Q")

	// Restating the fixed value is accepted.
	_, err = executeCommand(t, dir, "settings", "set", "hotkeys", "startCaptureKey", "Q")
	require.NoError(t, err)
}

func TestEditProperty_ForcedPropertySkipsPicker(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, t.TempDir())
	vp := portmocks.NewMockValuePicker(t)

	var out bytes.Buffer
	err := editProperty(ctx, a, vp, &out, "hotkeys", "startCaptureAlt")

	require.ErrorIs(t, err, entity.ErrInvalidValue)
	assert.Empty(t, out.String())
}
