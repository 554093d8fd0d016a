package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

// SettingsMenuConfig wires the settings groups to their collaborators.
type SettingsMenuConfig struct {
	Store     repository.PropertyStore
	Preview   port.PreviewTarget
	RenderCSS CSSRenderer
	Host      port.HostApplication
}

// SettingsMenu owns the three settings groups, ordered as the tabs
// HOTKEYS, VIEW and OCR.
type SettingsMenu struct {
	view    *ViewSettings
	hotkeys *HotkeySettings
	ocr     *OCRSettings
	tabs    []*SettingsGroup
}

// NewSettingsMenu creates every group over the shared store. Nothing is
// loaded until Load.
func NewSettingsMenu(cfg SettingsMenuConfig) (*SettingsMenu, error) {
	view, err := NewViewSettings(cfg.Store, cfg.Preview, cfg.RenderCSS)
	if err != nil {
		return nil, fmt.Errorf("failed to create view settings: %w", err)
	}
	hotkeys, err := NewHotkeySettings(cfg.Store, cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to create hotkey settings: %w", err)
	}
	ocr, err := NewOCRSettings(cfg.Store, cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to create OCR settings: %w", err)
	}

	return &SettingsMenu{
		view:    view,
		hotkeys: hotkeys,
		ocr:     ocr,
		tabs:    []*SettingsGroup{hotkeys.Group(), view.Group(), ocr.Group()},
	}, nil
}

// Load resolves every group and pushes the loaded state to the preview and
// the host, the way the application configures itself at startup.
func (m *SettingsMenu) Load(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := m.view.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("initial preview not applied")
	}
	m.hotkeys.Group().Load(ctx)
	m.ocr.Group().Load(ctx)

	if err := m.hotkeys.Apply(ctx); err != nil {
		return err
	}
	return m.ocr.Apply(ctx)
}

// Reload re-resolves the group stored under section after an external change
// and pushes the result to the preview or the host. It must be called from
// the same goroutine as every other group operation.
func (m *SettingsMenu) Reload(ctx context.Context, section string) (*SettingsGroup, error) {
	switch section {
	case m.view.Group().Section():
		return m.view.Group(), m.view.Load(ctx)
	case m.hotkeys.Group().Section():
		m.hotkeys.Group().Load(ctx)
		return m.hotkeys.Group(), m.hotkeys.Apply(ctx)
	case m.ocr.Group().Section():
		m.ocr.Group().Load(ctx)
		return m.ocr.Group(), m.ocr.Apply(ctx)
	default:
		return nil, fmt.Errorf("unknown settings section %q", section)
	}
}

// Tabs returns the groups in tab order.
func (m *SettingsMenu) Tabs() []*SettingsGroup {
	out := make([]*SettingsGroup, len(m.tabs))
	copy(out, m.tabs)
	return out
}

// Group finds a group by display name or section, ignoring case.
func (m *SettingsMenu) Group(name string) (*SettingsGroup, bool) {
	for _, g := range m.tabs {
		if strings.EqualFold(g.Name(), name) || strings.EqualFold(g.Section(), name) {
			return g, true
		}
	}
	return nil, false
}

// View returns the view group.
func (m *SettingsMenu) View() *ViewSettings { return m.view }

// Hotkeys returns the hotkey group.
func (m *SettingsMenu) Hotkeys() *HotkeySettings { return m.hotkeys }

// OCR returns the OCR group.
func (m *SettingsMenu) OCR() *OCRSettings { return m.ocr }

// Dirty reports whether any buffered group has unsaved edits.
func (m *SettingsMenu) Dirty() bool {
	for _, g := range m.tabs {
		if g.Dirty() {
			return true
		}
	}
	return false
}

// SaveAll saves every buffered group, continuing past failures.
func (m *SettingsMenu) SaveAll(ctx context.Context) error {
	var errs []error
	for _, g := range m.tabs {
		if g.Policy() != Buffered {
			continue
		}
		if err := g.Save(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
