package usecase

import (
	"context"
	"fmt"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

// HotkeySettings is the buffered group of keyboard shortcuts. Saving it
// re-registers every action's accelerator with the host.
type HotkeySettings struct {
	group *SettingsGroup
	host  port.HostApplication
}

// NewHotkeySettings creates the hotkey group over store. host may be nil.
func NewHotkeySettings(store repository.PropertyStore, host port.HostApplication) (*HotkeySettings, error) {
	hs := &HotkeySettings{host: host}

	group, err := NewSettingsGroup(GroupConfig{
		Name:    "HOTKEYS",
		Section: entity.SectionHotkey,
		Catalog: entity.HotkeyCatalog,
		Policy:  Buffered,
		Store:   store,
		OnSave: func(ctx context.Context, _ *SettingsGroup) error {
			return hs.Apply(ctx)
		},
	})
	if err != nil {
		return nil, err
	}
	hs.group = group
	return hs, nil
}

// Group returns the underlying settings group.
func (hs *HotkeySettings) Group() *SettingsGroup { return hs.group }

// Shortcut assembles the shortcut of an action label from the current values.
func (hs *HotkeySettings) Shortcut(label string) entity.Shortcut {
	action := entity.ActionName(label)
	values := hs.group.Values()

	flag := func(suffix string) bool {
		f, _ := values[action+suffix].(entity.Flag)
		return bool(f)
	}
	key, _ := values[action+entity.SuffixKey].(entity.EnumIndex)

	return entity.Shortcut{
		Shift: flag(entity.SuffixShift),
		Ctrl:  flag(entity.SuffixCtrl),
		Alt:   flag(entity.SuffixAlt),
		Cmd:   flag(entity.SuffixCmd),
		Key:   int(key),
	}
}

// Bindings computes the accelerator of every action in declaration order.
func (hs *HotkeySettings) Bindings() []entity.ShortcutBinding {
	bindings := make([]entity.ShortcutBinding, 0, len(entity.HotkeyActions))
	for _, label := range entity.HotkeyActions {
		bindings = append(bindings, entity.ShortcutBinding{
			Action:      entity.ActionName(label),
			Label:       label,
			Accelerator: hs.Shortcut(label).Accelerator(),
		})
	}
	return bindings
}

// Apply registers the current bindings with the host.
func (hs *HotkeySettings) Apply(ctx context.Context) error {
	log := logging.FromContext(ctx)
	if hs.host == nil {
		log.Debug().Msg("no host application, skipping shortcut registration")
		return nil
	}

	bindings := hs.Bindings()
	if err := hs.host.RegisterShortcuts(ctx, bindings); err != nil {
		return fmt.Errorf("failed to register shortcuts: %w", err)
	}

	for _, b := range bindings {
		log.Debug().Str("action", b.Action).Str("accelerator", b.Accelerator).Msg("shortcut registered")
	}
	return nil
}
