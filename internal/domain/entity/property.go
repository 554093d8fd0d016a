// Package entity defines domain entities for the settings subsystem.
package entity

import "fmt"

// Kind is the semantic type of a settings property.
type Kind int

const (
	KindColor Kind = iota + 1
	KindDistance
	KindFont
	KindFlag
	KindEnumIndex
	KindText
)

// String returns the kind name used in logs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindDistance:
		return "distance"
	case KindFont:
		return "font"
	case KindFlag:
		return "flag"
	case KindEnumIndex:
		return "enum"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Property declares one typed setting. Properties are values: once placed in a
// Catalog they are never mutated.
type Property struct {
	Name        string
	Kind        Kind
	Default     Value
	Description string

	// Min and Max bound Distance values (inclusive).
	Min, Max int

	// Labels is the ordered label list of an EnumIndex property.
	// Index 0 is reserved for the unset/unmapped entry.
	Labels []string

	// Forced, when set, wins over any stored value on load.
	Forced Value
}

// Label returns the enum label for an index, or "" when out of range.
func (p Property) Label(index int) string {
	if index < 0 || index >= len(p.Labels) {
		return ""
	}
	return p.Labels[index]
}

// Range describes the accepted values in human form ("5-100", "26 options").
func (p Property) Range() string {
	switch p.Kind {
	case KindDistance:
		return fmt.Sprintf("%d-%d", p.Min, p.Max)
	case KindEnumIndex:
		return fmt.Sprintf("0-%d", len(p.Labels)-1)
	case KindColor:
		return "0-255 per channel"
	default:
		return ""
	}
}
