package validation

import "strings"

const maxFontFamilyLength = 200

// ValidateFontFamily reports the problems of a font family name.
func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" font family cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" font family must not contain newlines")
	}

	if len(value) > maxFontFamilyLength {
		errs = append(errs, field+" font family is too long")
	}

	return errs
}
