package entity

// PreviewStyle is the composed look of the live preview: the preview text
// region, the selection band and the capture window tint, placed by Overlay.
type PreviewStyle struct {
	Font       Font
	TextColor  Color
	Background Color
	Padding    Distance

	SelectionBorderColor     Color
	SelectionBorderThickness Distance
	SelectionBackground      Color

	WindowColor Color

	Overlay Rect
}

// NewPreviewStyle composes a style from view property values keyed by
// property name. Missing or mistyped entries fall back to the catalog default.
func NewPreviewStyle(values map[string]Value, overlay Rect) PreviewStyle {
	return PreviewStyle{
		Font:                     valueOr[Font](values, PropPreviewFont),
		TextColor:                valueOr[Color](values, PropPreviewColor),
		Background:               valueOr[Color](values, PropPreviewBackground),
		Padding:                  valueOr[Distance](values, PropPreviewPadding),
		SelectionBorderColor:     valueOr[Color](values, PropSelectionBorderColor),
		SelectionBorderThickness: valueOr[Distance](values, PropSelectionBorderThickness),
		SelectionBackground:      valueOr[Color](values, PropSelectionBackground),
		WindowColor:              valueOr[Color](values, PropWindowColor),
		Overlay:                  overlay,
	}
}

func valueOr[T Value](values map[string]Value, name string) T {
	if v, ok := values[name].(T); ok {
		return v
	}
	if p, ok := ViewCatalog.Lookup(name); ok {
		if v, ok := p.Default.(T); ok {
			return v
		}
	}
	var zero T
	return zero
}
