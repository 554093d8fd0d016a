package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/poricom/poricom/internal/domain/entity"
)

// KindBadge renders the property kind.
func (t *Theme) KindBadge(kind entity.Kind) string {
	return t.BadgeMuted.Render(kind.String())
}

// PolicyBadge renders the persistence policy of a group.
func (t *Theme) PolicyBadge(policy string) string {
	return t.Badge.Render(policy)
}

// DirtyBadge renders a marker for unsaved edits.
func (t *Theme) DirtyBadge() string {
	return t.StatusBadge("unsaved", t.Background, t.Warning)
}

// SwatchBadge renders a color sample with its value.
func (t *Theme) SwatchBadge(c entity.Color) string {
	hex := lipgloss.Color(hexColor(c))
	fg := lipgloss.Color("#000000")
	if luminance(c) < 128 {
		fg = lipgloss.Color("#ffffff")
	}
	return t.StatusBadge(c.String(), fg, hex)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

func hexColor(c entity.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func luminance(c entity.Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
