package usecase

import (
	"context"
	"fmt"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

// Default live view size used until the host reports one.
const (
	DefaultPreviewWidth  = 800
	DefaultPreviewHeight = 600
)

// CSSRenderer turns a composed style into a stylesheet.
type CSSRenderer func(style entity.PreviewStyle) string

// ViewSettings is the write-through group styling the live preview. Every
// accepted change recomposes the preview and hands it to the target.
type ViewSettings struct {
	group  *SettingsGroup
	target port.PreviewTarget
	render CSSRenderer
	width  float64
	height float64
	last   port.PreviewFrame
}

// NewViewSettings creates the view group over store. target and render may be nil.
func NewViewSettings(store repository.PropertyStore, target port.PreviewTarget, render CSSRenderer) (*ViewSettings, error) {
	group, err := NewSettingsGroup(GroupConfig{
		Name:    "VIEW",
		Section: entity.SectionView,
		Catalog: entity.ViewCatalog,
		Policy:  WriteThrough,
		Store:   store,
	})
	if err != nil {
		return nil, err
	}

	vs := &ViewSettings{
		group:  group,
		target: target,
		render: render,
		width:  DefaultPreviewWidth,
		height: DefaultPreviewHeight,
	}
	group.Observe(vs.onChange)
	return vs, nil
}

// Group returns the underlying settings group.
func (vs *ViewSettings) Group() *SettingsGroup { return vs.group }

// Load resolves the view properties and applies the first preview frame.
func (vs *ViewSettings) Load(ctx context.Context) error {
	vs.group.Load(ctx)
	return vs.Refresh(ctx)
}

// Style composes the current preview style.
func (vs *ViewSettings) Style() entity.PreviewStyle {
	return entity.NewPreviewStyle(vs.group.Values(), entity.OverlayGeometry(vs.width, vs.height))
}

// LastFrame returns the most recently applied frame.
func (vs *ViewSettings) LastFrame() port.PreviewFrame { return vs.last }

// Resize records the live view size and re-applies the preview with the new
// overlay geometry.
func (vs *ViewSettings) Resize(ctx context.Context, width, height float64) error {
	logging.FromContext(ctx).Debug().
		Float64("width", width).
		Float64("height", height).
		Msg("live view resized")

	vs.width, vs.height = width, height
	return vs.Refresh(ctx)
}

// Refresh recomposes the preview and applies it to the target.
func (vs *ViewSettings) Refresh(ctx context.Context) error {
	style := vs.Style()
	frame := port.PreviewFrame{Style: style}
	if vs.render != nil {
		frame.CSS = vs.render(style)
	}
	vs.last = frame

	if vs.target == nil {
		logging.FromContext(ctx).Debug().Msg("no preview target, skipping apply")
		return nil
	}
	if err := vs.target.Apply(ctx, frame); err != nil {
		return fmt.Errorf("failed to apply preview: %w", err)
	}
	return nil
}

func (vs *ViewSettings) onChange(ctx context.Context, name string, _ entity.Value) {
	if err := vs.Refresh(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("property", name).Msg("preview not updated")
	}
}
