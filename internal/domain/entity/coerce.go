package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/poricom/poricom/internal/domain/validation"
)

var (
	// ErrInvalidValue is returned when a value violates its property constraints.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownProperty is returned when a property name is not in the catalog.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrCoercion matches every *CoercionError through errors.Is.
	ErrCoercion = errors.New("value cannot be coerced")
)

// CoercionError describes a stored raw value that could not be turned into a
// valid Value for its property.
type CoercionError struct {
	Property string
	Kind     Kind
	Raw      any
	Err      error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("coerce %s (%s) from %T: %v", e.Property, e.Kind, e.Raw, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// Is reports ErrCoercion as a match.
func (e *CoercionError) Is(target error) bool { return target == ErrCoercion }

// Validate checks v against the kind and constraints of p.
func Validate(p Property, v Value) error {
	if v == nil {
		return fmt.Errorf("%w: %s: missing value", ErrInvalidValue, p.Name)
	}
	if v.Kind() != p.Kind {
		return fmt.Errorf("%w: %s: expected %s, got %s", ErrInvalidValue, p.Name, p.Kind, v.Kind())
	}

	switch val := v.(type) {
	case Distance:
		if int(val) < p.Min || int(val) > p.Max {
			return fmt.Errorf("%w: %s: %d outside %d-%d", ErrInvalidValue, p.Name, int(val), p.Min, p.Max)
		}
	case Font:
		if errs := validation.ValidateFontFamily(p.Name, val.Family); len(errs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidValue, errs[0])
		}
		if val.PointSize <= 0 {
			return fmt.Errorf("%w: %s: point size must be positive, got %d", ErrInvalidValue, p.Name, val.PointSize)
		}
	case EnumIndex:
		if int(val) < 0 || int(val) >= len(p.Labels) {
			return fmt.Errorf("%w: %s: index %d outside 0-%d", ErrInvalidValue, p.Name, int(val), len(p.Labels)-1)
		}
	}
	return nil
}

// TryCoerce converts a raw store value into a validated Value for p.
// Every failure is reported as a *CoercionError.
func TryCoerce(p Property, raw any) (Value, error) {
	v, err := coerce(p, raw)
	if err == nil {
		err = Validate(p, v)
	}
	if err != nil {
		return nil, &CoercionError{Property: p.Name, Kind: p.Kind, Raw: raw, Err: err}
	}
	return v, nil
}

func coerce(p Property, raw any) (Value, error) {
	if raw == nil {
		return nil, errors.New("nil value")
	}

	switch p.Kind {
	case KindColor:
		return coerceColor(raw)
	case KindDistance:
		n, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		return Distance(n), nil
	case KindFont:
		return coerceFont(raw)
	case KindFlag:
		switch raw.(type) {
		case bool, string:
		default:
			return nil, fmt.Errorf("expected boolean, got %T", raw)
		}
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, err
		}
		return Flag(b), nil
	case KindEnumIndex:
		if s, ok := raw.(string); ok {
			if i, found := lookupLabel(p, s); found {
				return EnumIndex(i), nil
			}
		}
		n, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		return EnumIndex(n), nil
	case KindText:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		return Text(s), nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", p.Kind)
	}
}

func coerceColor(raw any) (Value, error) {
	if s, ok := raw.(string); ok {
		return ParseColor(s)
	}

	channels, err := toSlice(raw)
	if err != nil {
		return nil, err
	}
	if len(channels) != 4 {
		return nil, fmt.Errorf("expected 4 channels, got %d", len(channels))
	}

	var rgba [4]uint8
	for i, ch := range channels {
		n, err := toInt(ch)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("%w: channel %d out of range: %d", ErrInvalidValue, i, n)
		}
		rgba[i] = uint8(n)
	}
	return RGBA(rgba[0], rgba[1], rgba[2], rgba[3]), nil
}

func coerceFont(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return ParseFont(v)
	case map[string]any:
		family, err := cast.ToStringE(v["family"])
		if err != nil {
			return nil, fmt.Errorf("family: %w", err)
		}
		size, err := toInt(v["point_size"])
		if err != nil {
			return nil, fmt.Errorf("point_size: %w", err)
		}
		return Font{Family: family, PointSize: size}, nil
	default:
		return nil, fmt.Errorf("expected font table, got %T", raw)
	}
}

// toInt accepts integral numbers (including integral floats decoded from JSON)
// and numeric strings; booleans and fractional numbers are rejected.
func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, errors.New("nil value")
	case bool:
		return 0, fmt.Errorf("expected integer, got boolean %v", v)
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
	case float32:
		f := float64(v)
		if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
	case string:
		// Decimal only: cast would read "010" as octal and "0x10" as hex.
		return strconv.Atoi(strings.TrimSpace(v))
	}
	return cast.ToIntE(raw)
}

func toSlice(raw any) ([]any, error) {
	switch v := raw.(type) {
	case []any:
		return v, nil
	case []int64:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, nil
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, nil
	case []float64:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, nil
	}
	return cast.ToSliceE(raw)
}

func lookupLabel(p Property, label string) (int, bool) {
	for i, l := range p.Labels {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return i, true
		}
	}
	return 0, false
}

// Encode converts a Value into a store-native representation that TryCoerce
// decodes back to the same Value.
func Encode(v Value) any {
	switch val := v.(type) {
	case Color:
		return []int64{int64(val.R), int64(val.G), int64(val.B), int64(val.A)}
	case Distance:
		return int64(val)
	case Font:
		return map[string]any{
			"family":     val.Family,
			"point_size": int64(val.PointSize),
		}
	case Flag:
		return bool(val)
	case EnumIndex:
		return int64(val)
	case Text:
		return string(val)
	default:
		return nil
	}
}
