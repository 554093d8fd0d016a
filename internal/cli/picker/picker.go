// Package picker implements port.ValuePicker with huh forms.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/logging"
)

// Option configures a Picker.
type Option func(*Picker)

// WithAccessible switches the forms to plain line prompts.
func WithAccessible(accessible bool) Option {
	return func(p *Picker) { p.accessible = accessible }
}

// WithIO redirects the form input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *Picker) {
		p.input = in
		p.output = out
	}
}

// WithFonts offers the families of lister in the font picker.
func WithFonts(lister port.FontLister) Option {
	return func(p *Picker) { p.fonts = lister }
}

// Picker presents one modal huh form per edit.
type Picker struct {
	accessible bool
	input      io.Reader
	output     io.Writer
	fonts      port.FontLister
}

// New creates a Picker.
func New(opts ...Option) *Picker {
	p := &Picker{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PickColor asks for a color in any accepted notation.
func (p *Picker) PickColor(ctx context.Context, prop entity.Property, current entity.Color) (entity.Color, bool, error) {
	text := current.String()
	field := huh.NewInput().
		Title(prop.Description).
		Description("#RRGGBBAA, #RRGGBB, rgba(r, g, b, a) or r,g,b,a").
		Value(&text).
		Validate(func(s string) error {
			_, err := entity.ParseColor(s)
			return err
		})

	ok, err := p.run(ctx, field)
	if !ok || err != nil {
		return current, false, err
	}
	c, err := entity.ParseColor(text)
	if err != nil {
		return current, false, err
	}
	return c, true, nil
}

// PickFont asks for a family and a point size.
func (p *Picker) PickFont(ctx context.Context, prop entity.Property, current entity.Font) (entity.Font, bool, error) {
	family := current.Family
	size := strconv.Itoa(current.PointSize)

	var familyField huh.Field = huh.NewInput().
		Title(prop.Description).
		Description("Family").
		Value(&family).
		Validate(notBlank)
	if families := p.families(ctx); len(families) > 0 {
		familyField = huh.NewSelect[string]().
			Title(prop.Description).
			Description("Family").
			Options(FamilyOptions(families, current.Family)...).
			Filtering(true).
			Value(&family)
	}
	sizeField := huh.NewInput().
		Title("Point size").
		Value(&size).
		Validate(positiveInt)

	ok, err := p.run(ctx, familyField, sizeField)
	if !ok || err != nil {
		return current, false, err
	}
	font, err := entity.ParseFont(strings.TrimSpace(family) + "," + strings.TrimSpace(size))
	if err != nil {
		return current, false, err
	}
	return font, true, nil
}

// PickDistance asks for a pixel length within the property bounds.
func (p *Picker) PickDistance(ctx context.Context, prop entity.Property, current entity.Distance) (entity.Distance, bool, error) {
	text := current.String()
	field := huh.NewInput().
		Title(prop.Description).
		Description(fmt.Sprintf("Pixels, %s", prop.Range())).
		Value(&text).
		Validate(func(s string) error {
			_, err := entity.ParseValue(prop, s)
			return err
		})

	ok, err := p.run(ctx, field)
	if !ok || err != nil {
		return current, false, err
	}
	v, err := entity.ParseValue(prop, text)
	if err != nil {
		return current, false, err
	}
	return v.(entity.Distance), true, nil
}

// PickIndex offers the property labels as a selection list.
func (p *Picker) PickIndex(ctx context.Context, prop entity.Property, current entity.EnumIndex) (entity.EnumIndex, bool, error) {
	selected := int(current)
	field := huh.NewSelect[int]().
		Title(prop.Description).
		Options(IndexOptions(prop)...).
		Value(&selected)

	ok, err := p.run(ctx, field)
	if !ok || err != nil {
		return current, false, err
	}
	return entity.EnumIndex(selected), true, nil
}

// PickFlag asks a yes/no question.
func (p *Picker) PickFlag(ctx context.Context, prop entity.Property, current entity.Flag) (entity.Flag, bool, error) {
	value := bool(current)
	field := huh.NewConfirm().
		Title(prop.Description).
		Affirmative("On").
		Negative("Off").
		Value(&value)

	ok, err := p.run(ctx, field)
	if !ok || err != nil {
		return current, false, err
	}
	return entity.Flag(value), true, nil
}

// PickText asks for free text.
func (p *Picker) PickText(ctx context.Context, prop entity.Property, current entity.Text) (entity.Text, bool, error) {
	text := string(current)
	field := huh.NewInput().
		Title(prop.Description).
		Value(&text)

	ok, err := p.run(ctx, field)
	if !ok || err != nil {
		return current, false, err
	}
	return entity.Text(text), true, nil
}

// IndexOptions builds the selection options of an enum property.
func IndexOptions(prop entity.Property) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(prop.Labels))
	for i, label := range prop.Labels {
		options = append(options, huh.NewOption(label, i))
	}
	return options
}

// FamilyOptions builds the family options, keeping current selectable even
// when it is not installed.
func FamilyOptions(families []string, current string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(families)+1)
	found := false
	for _, f := range families {
		found = found || f == current
		options = append(options, huh.NewOption(f, f))
	}
	if !found && strings.TrimSpace(current) != "" {
		options = append([]huh.Option[string]{huh.NewOption(current, current)}, options...)
	}
	return options
}

func (p *Picker) families(ctx context.Context) []string {
	if p.fonts == nil {
		return nil
	}
	families, err := p.fonts.ListFontFamilies(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("font families unavailable, using free text")
		return nil
	}
	return families
}

// run shows the fields as one form. A user abort reports ok=false without error.
func (p *Picker) run(ctx context.Context, fields ...huh.Field) (bool, error) {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(p.accessible)
	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, huh.ErrUserAborted):
		return false, nil
	default:
		return false, err
	}
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("must be a positive integer")
	}
	return nil
}

var _ port.ValuePicker = (*Picker)(nil)
