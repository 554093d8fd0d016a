package usecase

import (
	"context"
	"fmt"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/logging"
)

// EditPropertyUseCase edits one property through a modal picker seeded with
// its current value.
type EditPropertyUseCase struct {
	picker port.ValuePicker
}

// NewEditPropertyUseCase creates a new EditPropertyUseCase.
func NewEditPropertyUseCase(picker port.ValuePicker) *EditPropertyUseCase {
	return &EditPropertyUseCase{picker: picker}
}

// EditPropertyInput names the property to edit.
type EditPropertyInput struct {
	Group    *SettingsGroup
	Property string
}

// EditPropertyOutput reports the outcome of the edit.
type EditPropertyOutput struct {
	// Accepted is false when the picker was cancelled.
	Accepted bool
	Value    entity.Value
}

// Execute opens the picker for the property kind and applies an accepted
// value with Set. Cancelling leaves the group untouched.
func (uc *EditPropertyUseCase) Execute(ctx context.Context, input EditPropertyInput) (*EditPropertyOutput, error) {
	if uc == nil || uc.picker == nil {
		return nil, fmt.Errorf("value picker is nil")
	}
	if input.Group == nil {
		return nil, fmt.Errorf("settings group is nil")
	}

	g := input.Group
	p, ok := g.Catalog().Lookup(input.Property)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", entity.ErrUnknownProperty, g.Section(), input.Property)
	}
	current, err := g.Get(p.Name)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("property", p.Name).Str("kind", p.Kind.String()).Msg("opening picker")

	value, accepted, err := uc.pick(ctx, p, current)
	if err != nil {
		return nil, fmt.Errorf("failed to pick %s: %w", p.Name, err)
	}
	if !accepted {
		log.Debug().Str("property", p.Name).Msg("picker cancelled")
		return &EditPropertyOutput{Value: current}, nil
	}

	if err := g.Set(ctx, p.Name, value); err != nil {
		return nil, err
	}
	return &EditPropertyOutput{Accepted: true, Value: value}, nil
}

func (uc *EditPropertyUseCase) pick(ctx context.Context, p entity.Property, current entity.Value) (entity.Value, bool, error) {
	switch cur := current.(type) {
	case entity.Color:
		return wrapPick[entity.Color](uc.picker.PickColor(ctx, p, cur))
	case entity.Font:
		return wrapPick[entity.Font](uc.picker.PickFont(ctx, p, cur))
	case entity.Distance:
		return wrapPick[entity.Distance](uc.picker.PickDistance(ctx, p, cur))
	case entity.EnumIndex:
		return wrapPick[entity.EnumIndex](uc.picker.PickIndex(ctx, p, cur))
	case entity.Flag:
		return wrapPick[entity.Flag](uc.picker.PickFlag(ctx, p, cur))
	case entity.Text:
		return wrapPick[entity.Text](uc.picker.PickText(ctx, p, cur))
	default:
		return nil, false, fmt.Errorf("no picker for kind %s", p.Kind)
	}
}

func wrapPick[T entity.Value](v T, accepted bool, err error) (entity.Value, bool, error) {
	if err != nil || !accepted {
		return nil, false, err
	}
	return v, true, nil
}
