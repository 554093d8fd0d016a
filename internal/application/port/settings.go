package port

import (
	"context"

	"github.com/poricom/poricom/internal/domain/entity"
)

// PreviewFrame is one composed rendering of the view settings.
type PreviewFrame struct {
	Style entity.PreviewStyle
	// CSS is the stylesheet generated from Style.
	CSS string
}

// PreviewTarget receives every recomposed preview frame. Apply is called
// synchronously from the settings control thread.
type PreviewTarget interface {
	Apply(ctx context.Context, frame PreviewFrame) error
}

// HostApplication is the running application the settings groups reconfigure
// when buffered edits are saved.
type HostApplication interface {
	// RegisterShortcuts replaces the active keyboard shortcuts. Bindings with an
	// empty accelerator are unmapped.
	RegisterShortcuts(ctx context.Context, bindings []entity.ShortcutBinding) error

	// SetOCREngine switches the OCR dispatcher. An empty name selects its default.
	SetOCREngine(ctx context.Context, name string) error
}

// ValuePicker presents a modal editor seeded with the current value.
// accepted is false when the user cancels; cancellation is not an error.
type ValuePicker interface {
	PickColor(ctx context.Context, p entity.Property, current entity.Color) (entity.Color, bool, error)
	PickFont(ctx context.Context, p entity.Property, current entity.Font) (entity.Font, bool, error)
	PickDistance(ctx context.Context, p entity.Property, current entity.Distance) (entity.Distance, bool, error)
	PickIndex(ctx context.Context, p entity.Property, current entity.EnumIndex) (entity.EnumIndex, bool, error)
	PickFlag(ctx context.Context, p entity.Property, current entity.Flag) (entity.Flag, bool, error)
	PickText(ctx context.Context, p entity.Property, current entity.Text) (entity.Text, bool, error)
}

// FontLister lists the font families a font picker can offer.
type FontLister interface {
	ListFontFamilies(ctx context.Context) ([]string, error)
}
