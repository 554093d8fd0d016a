package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hexColorRegex matches #RRGGBB and #RRGGBBAA.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ParseColor parses "#RRGGBB", "#RRGGBBAA", "rgba(r, g, b, a)", "rgb(r, g, b)"
// or a bare "r,g,b,a" list. Alpha defaults to 255.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		if !hexColorRegex.MatchString(s) {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}
		n, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}
		if len(s) == 7 {
			return RGBA(uint8(n>>16), uint8(n>>8), uint8(n), 255), nil
		}
		return RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
	}

	body := s
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("invalid color %q: expected 3 or 4 channels", s)
	}

	rgba := [4]uint8{0, 0, 0, 255}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: channel %d: %w", s, i, err)
		}
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: color %q: channel %d out of range", ErrInvalidValue, s, i)
		}
		rgba[i] = uint8(n)
	}
	return RGBA(rgba[0], rgba[1], rgba[2], rgba[3]), nil
}

// ParseFont parses "Family,Size". The family may itself contain spaces.
func ParseFont(s string) (Font, error) {
	idx := strings.LastIndex(s, ",")
	if idx < 0 {
		return Font{}, fmt.Errorf("invalid font %q: expected Family,Size", s)
	}
	family := strings.TrimSpace(s[:idx])
	size, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s[idx+1:]), "pt")))
	if err != nil {
		return Font{}, fmt.Errorf("invalid font size in %q: %w", s, err)
	}
	return Font{Family: family, PointSize: size}, nil
}

// ParseValue parses user input for p and validates the result.
// Enum values may be given by index or by label.
func ParseValue(p Property, input string) (Value, error) {
	input = strings.TrimSpace(input)

	var (
		v   Value
		err error
	)
	switch p.Kind {
	case KindColor:
		v, err = ParseColor(input)
	case KindDistance:
		var n int
		n, err = strconv.Atoi(input)
		v = Distance(n)
	case KindFont:
		v, err = ParseFont(input)
	case KindFlag:
		var b bool
		b, err = strconv.ParseBool(input)
		v = Flag(b)
	case KindEnumIndex:
		if i, ok := lookupLabel(p, input); ok {
			v = EnumIndex(i)
			break
		}
		var n int
		n, err = strconv.Atoi(input)
		v = EnumIndex(n)
	case KindText:
		v = Text(input)
	default:
		err = fmt.Errorf("unsupported kind %s", p.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, p.Name, err)
	}

	if err := Validate(p, v); err != nil {
		return nil, err
	}
	return v, nil
}

// FormatValue renders v for display, using enum labels where available.
func FormatValue(p Property, v Value) string {
	if v == nil {
		return ""
	}
	if idx, ok := v.(EnumIndex); ok {
		if label := p.Label(int(idx)); label != "" {
			return label
		}
	}
	return v.String()
}
