package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/poricom/poricom/internal/application/port/mocks"
	"github.com/poricom/poricom/internal/application/usecase"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHotkeySettings_DefaultBindings(t *testing.T) {
	ctx := testContext()
	hs, err := usecase.NewHotkeySettings(newMemStore(), nil)
	require.NoError(t, err)
	hs.Group().Load(ctx)

	bindings := hs.Bindings()

	require.Len(t, bindings, len(entity.HotkeyActions))
	assert.Equal(t, entity.ShortcutBinding{Action: "startCapture", Label: "Start Capture", Accelerator: "<alt>+Q"}, bindings[0])
	for _, b := range bindings[1:] {
		assert.Empty(t, b.Accelerator, b.Action)
	}
}

func TestHotkeySettings_SaveRegistersAccelerators(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	host := portmocks.NewMockHostApplication(t)

	host.EXPECT().RegisterShortcuts(mock.Anything, []entity.ShortcutBinding{
		{Action: "startCapture", Label: "Start Capture", Accelerator: "<alt>+Q"},
		{Action: "openSettings", Label: "Open Settings", Accelerator: "<shift>+<ctrl>+S"},
		{Action: "toggleLogging", Label: "Toggle Logging", Accelerator: ""},
		{Action: "closeApplication", Label: "Close Application", Accelerator: ""},
	}).Return(nil).Once()

	hs, err := usecase.NewHotkeySettings(store, host)
	require.NoError(t, err)
	hs.Group().Load(ctx)

	g := hs.Group()
	require.NoError(t, g.Set(ctx, "openSettingsCtrl", entity.Flag(true)))
	require.NoError(t, g.Set(ctx, "openSettingsShift", entity.Flag(true)))
	require.NoError(t, g.Set(ctx, "openSettingsKey", entity.EnumIndex(19)))

	require.NoError(t, g.Save(ctx))

	assert.Equal(t, int64(19), store.data[entity.SectionHotkey]["openSettingsKey"])
	assert.Equal(t, true, store.data[entity.SectionHotkey]["openSettingsCtrl"])
}

func TestHotkeySettings_ForcedOverrideOnLoad(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(entity.SectionHotkey, "startCaptureKey", int64(1))
	store.put(entity.SectionHotkey, "startCaptureAlt", false)
	store.put(entity.SectionHotkey, "startCaptureCtrl", true)

	hs, err := usecase.NewHotkeySettings(store, nil)
	require.NoError(t, err)
	hs.Group().Load(ctx)

	// Ctrl is not forced and keeps its stored value.
	assert.Equal(t, "<ctrl>+<alt>+Q", hs.Shortcut("Start Capture").Accelerator())
}

func TestHotkeySettings_HostErrorIsWrapped(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockHostApplication(t)
	host.EXPECT().RegisterShortcuts(mock.Anything, mock.Anything).Return(errors.New("grab failed"))

	hs, err := usecase.NewHotkeySettings(newMemStore(), host)
	require.NoError(t, err)
	hs.Group().Load(ctx)

	err = hs.Apply(ctx)
	assert.ErrorContains(t, err, "failed to register shortcuts")
}
