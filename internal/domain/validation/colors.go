// Package validation holds field checks shared by the entities and the
// application config.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every color of a CLI palette.
func ValidatePaletteHex(
	prefix string,
	background string,
	surface string,
	surfaceVariant string,
	text string,
	muted string,
	accent string,
	border string,
) []string {
	var errs []string

	fields := []struct {
		name  string
		value string
	}{
		{"background", background},
		{"surface", surface},
		{"surface_variant", surfaceVariant},
		{"text", text},
		{"muted", muted},
		{"accent", accent},
		{"border", border},
	}
	for _, f := range fields {
		if !IsHexColor(f.value) {
			errs = append(errs, prefix+"."+f.name+" must be a hex color like #RRGGBB")
		}
	}

	return errs
}
