package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#4ade80"))
	assert.False(t, IsHexColor("#4ade8"))
	assert.False(t, IsHexColor("4ade80"))
	assert.False(t, IsHexColor("#4ade80ff"))
}

func TestValidatePaletteHex(t *testing.T) {
	ok := "#000000"
	assert.Empty(t, ValidatePaletteHex("appearance.palette", ok, ok, ok, ok, ok, ok, ok))

	errs := ValidatePaletteHex("appearance.palette", ok, "red", ok, ok, ok, ok, "")
	assert.Equal(t, []string{
		"appearance.palette.surface must be a hex color like #RRGGBB",
		"appearance.palette.border must be a hex color like #RRGGBB",
	}, errs)
}

func TestValidateFontFamily(t *testing.T) {
	assert.Empty(t, ValidateFontFamily("previewFont", "Noto Sans CJK JP"))
	assert.Len(t, ValidateFontFamily("previewFont", "  "), 1)
	assert.Len(t, ValidateFontFamily("previewFont", "a\nb"), 1)
	assert.Len(t, ValidateFontFamily("previewFont", strings.Repeat("x", 201)), 1)
}
