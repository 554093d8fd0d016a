package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#0080ff":            RGBA(0, 128, 255, 255),
		"#0080FF3C":          RGBA(0, 128, 255, 60),
		"rgba(0,128,255,60)": RGBA(0, 128, 255, 60),
		"rgb(1, 2, 3)":       RGBA(1, 2, 3, 255),
		" 9, 8, 7, 6 ":       RGBA(9, 8, 7, 6),
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "#12345", "#zzzzzz", "1,2", "rgba(1,2,3,300)", "red"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFont(t *testing.T) {
	f, err := ParseFont("Noto Sans, 18")
	require.NoError(t, err)
	assert.Equal(t, Font{Family: "Noto Sans", PointSize: 18}, f)

	f, err = ParseFont("Arial,12pt")
	require.NoError(t, err)
	assert.Equal(t, 12, f.PointSize)

	_, err = ParseFont("Arial")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	padding, _ := ViewCatalog.Lookup(PropPreviewPadding)
	key, _ := HotkeyCatalog.Lookup("closeApplicationKey")
	engine, _ := OCRCatalog.Lookup(PropEngine)

	v, err := ParseValue(padding, "25")
	require.NoError(t, err)
	assert.Equal(t, Distance(25), v)

	_, err = ParseValue(padding, "3")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseValue(padding, "lots")
	assert.ErrorIs(t, err, ErrInvalidValue)

	v, err = ParseValue(key, "x")
	require.NoError(t, err)
	assert.Equal(t, EnumIndex(24), v)

	v, err = ParseValue(engine, "tesseract")
	require.NoError(t, err)
	assert.Equal(t, EnumIndex(2), v)
	assert.Equal(t, "tesseract", FormatValue(engine, v))
}
