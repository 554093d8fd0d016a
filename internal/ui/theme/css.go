package theme

import (
	"fmt"
	"strings"

	"github.com/poricom/poricom/internal/domain/entity"
)

// Element IDs styled by the preview stylesheet.
const (
	LiveViewID      = "liveView"
	PreviewTextID   = "previewText"
	SelectionBandID = "selectionBand"
)

// GeneratePreviewCSS creates the stylesheet for the live view, the preview
// text and the selection band. The window tint fills the live view and is
// layered over both nested regions so it reads the same everywhere.
func GeneratePreviewCSS(style entity.PreviewStyle) string {
	var sb strings.Builder

	sb.WriteString("/* Preview variables */\n")
	sb.WriteString(":root {\n")
	sb.WriteString(PaletteFromStyle(style).ToCSSVars())
	sb.WriteString("}\n\n")

	sb.WriteString(generateLiveViewCSS())
	sb.WriteString("\n")
	sb.WriteString(generatePreviewTextCSS(style))
	sb.WriteString("\n")
	sb.WriteString(generateSelectionBandCSS(style))

	return sb.String()
}

func generateLiveViewCSS() string {
	return fmt.Sprintf(`/* Live view */
#%s {
	background-color: var(--window-color);
}
`, LiveViewID)
}

// generatePreviewTextCSS styles the recognized text label.
func generatePreviewTextCSS(style entity.PreviewStyle) string {
	return fmt.Sprintf(`/* Preview text */
#%s #%s {
	color: var(--preview-color);
	background-color: var(--preview-background);
	background-image: %s;
	padding: %s;
	font-family: %s;
	font-size: %dpt;
	margin-top: 0.02em;
	margin-left: 0.02em;
}
`, LiveViewID, PreviewTextID, windowTint(), style.Padding.Pixels(), quoteFamily(style.Font.Family), style.Font.PointSize)
}

func generateSelectionBandCSS(style entity.PreviewStyle) string {
	return fmt.Sprintf(`/* Selection band */
#%s #%s {
	background-color: var(--selection-background);
	background-image: %s;
	border: %s solid var(--selection-border);
}
`, LiveViewID, SelectionBandID, windowTint(), style.SelectionBorderThickness.Pixels())
}

func windowTint() string {
	return "linear-gradient(var(--window-color), var(--window-color))"
}

var familyEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteFamily quotes font families containing anything but letters and digits.
// Backslashes and quotes are escaped so the string always terminates.
func quoteFamily(family string) string {
	for _, r := range family {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
			return `"` + familyEscaper.Replace(family) + `"`
		}
	}
	return family
}
