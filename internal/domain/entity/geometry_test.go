package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayGeometry(t *testing.T) {
	r := OverlayGeometry(800, 600)
	assert.InDelta(t, 200, r.W, 1e-9)
	assert.InDelta(t, 30, r.Y, 1e-9)
	assert.InDelta(t, 570, r.X, 1e-9)
	assert.InDelta(t, 540, r.H, 1e-9)

	assert.Equal(t, Rect{}, OverlayGeometry(0, 600))
	assert.Equal(t, Rect{}, OverlayGeometry(800, -1))
}

func TestOverlayGeometry_ResizeLaw(t *testing.T) {
	sizes := []struct{ w, h float64 }{
		{1, 1},
		{640, 480},
		{1920, 1080},
		{3840, 2160},
		{1000, 10},
		{10, 1000},
		{333.3, 777.7},
		{0.5, 0.25},
	}

	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%gx%g", sz.w, sz.h), func(t *testing.T) {
			r := OverlayGeometry(sz.w, sz.h)
			eps := 1e-9 * max(sz.w, sz.h, 1)

			assert.InDelta(t, 0.25*sz.w, r.W, eps)
			assert.InDelta(t, 0.05*sz.h, r.Y, eps)
			assert.InDelta(t, sz.w-r.W-r.Y, r.X, eps)
			assert.InDelta(t, sz.h-2*r.Y, r.H, eps)
			// Right inset equals the top and bottom insets.
			assert.InDelta(t, r.Y, sz.w-(r.X+r.W), eps)
			assert.InDelta(t, sz.h, r.Y+r.H+r.Y, eps)
		})
	}
}

func TestNewPreviewStyle(t *testing.T) {
	overlay := OverlayGeometry(1000, 500)
	style := NewPreviewStyle(map[string]Value{
		PropPreviewPadding: Distance(40),
		PropWindowColor:    RGBA(1, 2, 3, 4),
		PropPreviewColor:   Distance(9),
	}, overlay)

	assert.Equal(t, Distance(40), style.Padding)
	assert.Equal(t, RGBA(1, 2, 3, 4), style.WindowColor)
	// Mistyped and missing entries use the defaults.
	assert.Equal(t, RGBA(239, 240, 241, 255), style.TextColor)
	assert.Equal(t, Font{Family: "Arial", PointSize: 16}, style.Font)
	assert.Equal(t, overlay, style.Overlay)
}
