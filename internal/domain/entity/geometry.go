package entity

// Overlay placement as fractions of the live view size.
const (
	OverlayWidthFraction = 0.25
	OverlayInsetFraction = 0.05
)

// Rect is a rectangle in live-view coordinates.
type Rect struct {
	X, Y, W, H float64
}

// OverlayGeometry places the selection overlay inside a live view of the
// given size: a quarter of the width, inset from the top, right and bottom
// edges by 5% of the height. Non-positive sizes yield an empty Rect.
func OverlayGeometry(width, height float64) Rect {
	if width <= 0 || height <= 0 {
		return Rect{}
	}
	w := OverlayWidthFraction * width
	y := OverlayInsetFraction * height
	return Rect{
		X: width - w - y,
		Y: y,
		W: w,
		H: height - 2*y,
	}
}
