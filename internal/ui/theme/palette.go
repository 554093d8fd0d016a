// Package theme generates the stylesheet of the live preview.
package theme

import (
	"fmt"
	"strings"

	"github.com/poricom/poricom/internal/domain/entity"
)

// Palette holds the preview color tokens as CSS color strings.
type Palette struct {
	Text                string // Preview text color
	Background          string // Preview text background
	SelectionBorder     string // Selection band outline
	SelectionBackground string // Selection band fill
	Window              string // Capture window tint
}

// PaletteFromStyle extracts the color tokens of a preview style.
func PaletteFromStyle(style entity.PreviewStyle) Palette {
	return Palette{
		Text:                style.TextColor.CSS(),
		Background:          style.Background.CSS(),
		SelectionBorder:     style.SelectionBorderColor.CSS(),
		SelectionBackground: style.SelectionBackground.CSS(),
		Window:              style.WindowColor.CSS(),
	}
}

// ToCSSVars renders the palette as custom property declarations.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	writeVar := func(name, value string) {
		fmt.Fprintf(&sb, "\t--%s: %s;\n", name, value)
	}
	writeVar("preview-color", p.Text)
	writeVar("preview-background", p.Background)
	writeVar("selection-border", p.SelectionBorder)
	writeVar("selection-background", p.SelectionBackground)
	writeVar("window-color", p.Window)
	return sb.String()
}
