package styles

import (
	"fmt"
	"strings"

	"github.com/poricom/poricom/internal/domain/build"
)

// AboutRenderer renders version and build information.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders the build information box.
func (r *AboutRenderer) Render(info build.Info) string {
	rows := [][2]string{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
	}

	var sb strings.Builder
	sb.WriteString(r.theme.BoxHeader.Render("poricom " + info.Short()))
	sb.WriteString("\n")
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s\n",
			r.theme.Subtle.Render(fmt.Sprintf("%-8s", row[0])),
			r.theme.Normal.Render(row[1]),
		))
	}
	return r.theme.Box.Render(strings.TrimSuffix(sb.String(), "\n"))
}
