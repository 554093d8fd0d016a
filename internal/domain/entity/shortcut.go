package entity

import (
	"fmt"
	"strings"
	"unicode"
)

// UnmappedKey is the label of key index 0.
const UnmappedKey = "<Unmapped>"

// KeyLabels is the ordered list of assignable keys. Index 0 leaves the action unmapped.
var KeyLabels = []string{
	UnmappedKey, "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// Property name suffixes of a shortcut.
const (
	SuffixShift = "Shift"
	SuffixCtrl  = "Ctrl"
	SuffixAlt   = "Alt"
	SuffixCmd   = "Cmd"
	SuffixKey   = "Key"
)

// Shortcut is one action-to-keystroke binding.
type Shortcut struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Cmd   bool
	Key   int // index into KeyLabels
}

// KeyLabel returns the key token, or "" when the key is unmapped.
func (s Shortcut) KeyLabel() string {
	if s.Key <= 0 || s.Key >= len(KeyLabels) {
		return ""
	}
	return KeyLabels[s.Key]
}

// IsUnmapped reports whether the shortcut has no key.
func (s Shortcut) IsUnmapped() bool {
	return s.KeyLabel() == ""
}

// Accelerator serializes the shortcut as "<shift>+<ctrl>+<alt>+<cmd>+KEY",
// listing only the active modifiers. An unmapped key yields "".
func (s Shortcut) Accelerator() string {
	key := s.KeyLabel()
	if key == "" {
		return ""
	}

	var sb strings.Builder
	if s.Shift {
		sb.WriteString("<shift>+")
	}
	if s.Ctrl {
		sb.WriteString("<ctrl>+")
	}
	if s.Alt {
		sb.WriteString("<alt>+")
	}
	if s.Cmd {
		sb.WriteString("<cmd>+")
	}
	sb.WriteString(key)
	return sb.String()
}

// ParseAccelerator is the inverse of Accelerator. Modifiers are accepted with
// or without angle brackets and in any case; win/super/meta map to cmd.
func ParseAccelerator(accel string) (Shortcut, error) {
	accel = strings.TrimSpace(accel)
	if accel == "" {
		return Shortcut{}, nil
	}

	parts := strings.Split(accel, "+")
	var s Shortcut
	for _, p := range parts[:len(parts)-1] {
		mod := strings.Trim(strings.ToLower(strings.TrimSpace(p)), "<>")
		switch mod {
		case "shift":
			s.Shift = true
		case "ctrl", "control":
			s.Ctrl = true
		case "alt":
			s.Alt = true
		case "cmd", "win", "super", "meta":
			s.Cmd = true
		case "":
		default:
			return Shortcut{}, fmt.Errorf("unknown modifier %q", p)
		}
	}

	key := strings.ToUpper(strings.TrimSpace(parts[len(parts)-1]))
	for i, label := range KeyLabels[1:] {
		if label == key {
			s.Key = i + 1
			return s, nil
		}
	}
	return Shortcut{}, fmt.Errorf("unknown key %q", key)
}

// ShortcutBinding is the computed binding handed to the host application.
type ShortcutBinding struct {
	Action      string // camelCase action name, e.g. "startCapture"
	Label       string // display label, e.g. "Start Capture"
	Accelerator string // "" when unmapped
}

// ActionName converts a display label like "Start Capture" into the
// camelCase action name "startCapture" used as property-name prefix.
func ActionName(label string) string {
	words := strings.Fields(label)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	return sb.String()
}

// ShortcutProperties declares the five properties of an action's shortcut.
// The forced values, keyed by suffix, override any stored state on load.
func ShortcutProperties(label string, forced map[string]Value) []Property {
	action := ActionName(label)

	flag := func(suffix string) Property {
		p := Property{
			Name:        action + suffix,
			Kind:        KindFlag,
			Default:     Flag(false),
			Description: fmt.Sprintf("%s modifier for %s", suffix, label),
		}
		if v, ok := forced[suffix]; ok {
			p.Default, p.Forced = v, v
		}
		return p
	}

	key := Property{
		Name:        action + SuffixKey,
		Kind:        KindEnumIndex,
		Default:     EnumIndex(0),
		Labels:      KeyLabels,
		Description: fmt.Sprintf("Key for %s", label),
	}
	if v, ok := forced[SuffixKey]; ok {
		key.Default, key.Forced = v, v
	}

	return []Property{
		flag(SuffixShift),
		flag(SuffixCtrl),
		flag(SuffixAlt),
		flag(SuffixCmd),
		key,
	}
}
