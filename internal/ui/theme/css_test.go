package theme

import (
	"strings"
	"testing"

	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func defaultStyle() entity.PreviewStyle {
	return entity.NewPreviewStyle(nil, entity.OverlayGeometry(800, 600))
}

func TestGeneratePreviewCSS_Defaults(t *testing.T) {
	css := GeneratePreviewCSS(defaultStyle())

	assert.Contains(t, css, "--preview-color: rgba(239, 240, 241, 255);")
	assert.Contains(t, css, "--preview-background: rgba(72, 75, 106, 230);")
	assert.Contains(t, css, "--selection-border: rgba(0, 128, 255, 60);")
	assert.Contains(t, css, "--selection-background: rgba(0, 128, 255, 255);")
	assert.Contains(t, css, "--window-color: rgba(255, 255, 255, 3);")
	assert.Contains(t, css, "padding: 10px;")
	assert.Contains(t, css, "font-family: Arial;")
	assert.Contains(t, css, "font-size: 16pt;")
	assert.Contains(t, css, "border: 2px solid var(--selection-border);")
}

func TestGeneratePreviewCSS_WindowColorReachesEveryRegion(t *testing.T) {
	css := GeneratePreviewCSS(defaultStyle())

	for _, id := range []string{"#liveView {", "#liveView #previewText {", "#liveView #selectionBand {"} {
		start := strings.Index(css, id)
		if !assert.GreaterOrEqual(t, start, 0, id) {
			continue
		}
		block := css[start : start+strings.Index(css[start:], "}")]
		assert.Contains(t, block, "var(--window-color)", id)
	}
}

func TestGeneratePreviewCSS_FollowsStyle(t *testing.T) {
	style := entity.NewPreviewStyle(map[string]entity.Value{
		entity.PropPreviewFont:              entity.Font{Family: "Noto Sans CJK JP", PointSize: 22},
		entity.PropPreviewPadding:           entity.Distance(25),
		entity.PropSelectionBorderThickness: entity.Distance(7),
		entity.PropWindowColor:              entity.RGBA(0, 0, 0, 128),
	}, entity.Rect{})

	css := GeneratePreviewCSS(style)

	assert.Contains(t, css, `font-family: "Noto Sans CJK JP";`)
	assert.Contains(t, css, "font-size: 22pt;")
	assert.Contains(t, css, "padding: 25px;")
	assert.Contains(t, css, "border: 7px solid")
	assert.Contains(t, css, "--window-color: rgba(0, 0, 0, 128);")
}

func TestQuoteFamily(t *testing.T) {
	assert.Equal(t, "Arial", quoteFamily("Arial"))
	assert.Equal(t, `"Comic Sans"`, quoteFamily("Comic Sans"))
	assert.Equal(t, `"a\"b"`, quoteFamily(`a"b`))
}

func TestQuoteFamily_EscapesBackslashes(t *testing.T) {
	assert.Equal(t, `"Foo\\"`, quoteFamily(`Foo\`))
	assert.Equal(t, `"a\\\"b"`, quoteFamily(`a\"b`))
}

func TestGeneratePreviewCSS_FamilyStaysInsideItsString(t *testing.T) {
	tests := []struct {
		name   string
		family string
		want   string
	}{
		{name: "trailing backslash", family: `Foo\`, want: `font-family: "Foo\\";`},
		{
			name:   "escaped quote",
			family: `Foo\"; } #x { color: red; } #y {`,
			want:   `font-family: "Foo\\\"; } #x { color: red; } #y {";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := entity.NewPreviewStyle(map[string]entity.Value{
				entity.PropPreviewFont: entity.Font{Family: tt.family, PointSize: 12},
			}, entity.Rect{})

			css := GeneratePreviewCSS(style)

			assert.Contains(t, css, tt.want)
			assert.NotContains(t, css, "\n#x {")
			assert.Contains(t, css, "#liveView #selectionBand {")
		})
	}
}
