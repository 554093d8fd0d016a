package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/application/usecase"
	"github.com/poricom/poricom/internal/domain/entity"
)

// SettingsRenderer renders settings groups and command results.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a new settings renderer with the given theme.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// RenderTabs renders the tab bar with the active group highlighted.
func (r *SettingsRenderer) RenderTabs(tabs []*usecase.SettingsGroup, active string) string {
	parts := make([]string, 0, len(tabs))
	for _, g := range tabs {
		if strings.EqualFold(g.Name(), active) {
			parts = append(parts, r.theme.ActiveTab.Render(g.Name()))
			continue
		}
		parts = append(parts, r.theme.InactiveTab.Render(g.Name()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderGroup renders every property of a group in catalog order.
func (r *SettingsRenderer) RenderGroup(g *usecase.SettingsGroup) string {
	header := fmt.Sprintf("%s %s %s",
		r.theme.Title.Render(g.Name()),
		r.theme.Subtle.Render("["+g.Section()+"]"),
		r.theme.PolicyBadge(g.Policy().String()),
	)
	if g.Dirty() {
		header += " " + r.theme.DirtyBadge()
	}

	props := g.Catalog().Properties()
	width := 0
	for _, p := range props {
		width = max(width, lipgloss.Width(p.Name))
	}

	var sb strings.Builder
	sb.WriteString("\n  " + header + "\n\n")
	for _, p := range props {
		v, err := g.Get(p.Name)
		if err != nil {
			continue
		}
		note := r.theme.Subtle.Render(p.Range())
		if p.Forced != nil {
			note = r.theme.WarningStyle.Render("fixed")
		}
		sb.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
			r.theme.Highlight.Render(IconCursor),
			r.theme.Normal.Render(p.Name+strings.Repeat(" ", width-lipgloss.Width(p.Name))),
			r.renderValue(p, v),
			note,
		))
	}
	return sb.String()
}

// RenderValue renders a single property value with its kind.
func (r *SettingsRenderer) RenderValue(p entity.Property, v entity.Value) string {
	return fmt.Sprintf("\n  %s %s %s\n  %s\n",
		r.theme.Title.Render(p.Name),
		r.renderValue(p, v),
		r.theme.KindBadge(p.Kind),
		r.theme.Subtitle.Render(p.Description),
	)
}

// RenderStored renders the confirmation after a value was stored.
func (r *SettingsRenderer) RenderStored(g *usecase.SettingsGroup, p entity.Property, v entity.Value) string {
	return fmt.Sprintf("\n  %s %s.%s = %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(g.Section()),
		r.theme.Highlight.Render(p.Name),
		r.renderValue(p, v),
	)
}

// RenderUnchanged renders the message shown when an edit is cancelled.
func (r *SettingsRenderer) RenderUnchanged(p entity.Property) string {
	return fmt.Sprintf("\n  %s %s unchanged\n",
		r.theme.Subtle.Render(IconUndo),
		r.theme.Normal.Render(p.Name),
	)
}

// RenderReset renders the confirmation after a group was reset.
func (r *SettingsRenderer) RenderReset(g *usecase.SettingsGroup) string {
	return fmt.Sprintf("\n  %s %s restored to defaults\n",
		r.theme.SuccessStyle.Render(IconRefresh),
		r.theme.Highlight.Render(g.Name()),
	)
}

// RenderBindings renders the computed shortcut accelerators.
func (r *SettingsRenderer) RenderBindings(bindings []entity.ShortcutBinding) string {
	width := 0
	for _, b := range bindings {
		width = max(width, lipgloss.Width(b.Label))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		r.theme.Highlight.Render(IconKeyboard),
		r.theme.Title.Render("Shortcuts"),
	))
	for _, b := range bindings {
		accel := r.theme.Normal.Render(b.Accelerator)
		if b.Accelerator == "" {
			accel = r.theme.Subtle.Render(entity.UnmappedKey)
		}
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			r.theme.Normal.Render(b.Label+strings.Repeat(" ", width-lipgloss.Width(b.Label))),
			accel,
			r.theme.Subtle.Render(b.Action),
		))
	}
	return sb.String()
}

// RenderPreview renders the overlay geometry followed by the stylesheet.
func (r *SettingsRenderer) RenderPreview(frame port.PreviewFrame, path string) string {
	o := frame.Style.Overlay
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		r.theme.Highlight.Render(IconEye),
		r.theme.Title.Render("Preview"),
		r.theme.Subtle.Render(path),
	))
	sb.WriteString(fmt.Sprintf("  overlay x=%.1f y=%.1f w=%.1f h=%.1f\n\n", o.X, o.Y, o.W, o.H))
	sb.WriteString(frame.CSS)
	return sb.String()
}

// RenderChanged renders a store change notification.
func (r *SettingsRenderer) RenderChanged(g *usecase.SettingsGroup) string {
	return fmt.Sprintf("  %s %s reloaded\n",
		r.theme.Highlight.Render(IconRefresh),
		r.theme.Normal.Render(g.Name()),
	)
}

// RenderPath renders a labelled filesystem path.
func (r *SettingsRenderer) RenderPath(label, path string) string {
	icon := IconFolder
	switch label {
	case "Config", "Schema":
		icon = IconConfig
	case "Database":
		icon = IconDatabase
	}
	return fmt.Sprintf("  %s %s %s\n",
		r.theme.Highlight.Render(icon),
		r.theme.Normal.Render(label),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *SettingsRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

func (r *SettingsRenderer) renderValue(p entity.Property, v entity.Value) string {
	if c, ok := v.(entity.Color); ok {
		return r.theme.SwatchBadge(c)
	}
	return r.theme.Highlight.Render(entity.FormatValue(p, v))
}
