package entity

import (
	"fmt"
	"strconv"
)

// Value is the tagged union of property values. The dynamic type always
// matches the property Kind: Color, Distance, Font, Flag, EnumIndex or Text.
type Value interface {
	Kind() Kind
	String() string
}

// Color is an RGBA color; each channel is in [0,255] by construction.
type Color struct {
	R, G, B, A uint8
}

// Distance is a length in pixels, bounded per property.
type Distance int

// Font is a font family with a point size.
type Font struct {
	Family    string
	PointSize int
}

// Flag is a boolean toggle.
type Flag bool

// EnumIndex indexes a fixed label list; 0 means unset.
type EnumIndex int

// Text is an arbitrary string.
type Text string

func (Color) Kind() Kind     { return KindColor }
func (Distance) Kind() Kind  { return KindDistance }
func (Font) Kind() Kind      { return KindFont }
func (Flag) Kind() Kind      { return KindFlag }
func (EnumIndex) Kind() Kind { return KindEnumIndex }
func (Text) Kind() Kind      { return KindText }

// RGBA builds a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// String renders the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// CSS renders the color as an rgba() expression with a 0-255 alpha.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func (d Distance) String() string { return strconv.Itoa(int(d)) }

// Pixels renders the distance as a CSS pixel length.
func (d Distance) Pixels() string { return strconv.Itoa(int(d)) + "px" }

func (f Font) String() string { return fmt.Sprintf("%s,%d", f.Family, f.PointSize) }

func (f Flag) String() string { return strconv.FormatBool(bool(f)) }

func (i EnumIndex) String() string { return strconv.Itoa(int(i)) }

func (t Text) String() string { return string(t) }
