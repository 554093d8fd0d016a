package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

// ErrNotLoaded is returned by group operations that need loaded values.
var ErrNotLoaded = errors.New("settings group not loaded")

// Policy decides when a group's edits reach the store.
type Policy int

const (
	// WriteThrough persists every accepted Set immediately.
	WriteThrough Policy = iota
	// Buffered keeps edits in memory until Save.
	Buffered
)

func (p Policy) String() string {
	if p == Buffered {
		return "buffered"
	}
	return "write-through"
}

// State is the lifecycle position of a group.
type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateEditing:
		return "editing"
	default:
		return "uninitialized"
	}
}

// Observer is notified after a property value changed in memory.
type Observer func(ctx context.Context, name string, value entity.Value)

// SaveHook runs after a buffered group persisted its values.
type SaveHook func(ctx context.Context, g *SettingsGroup) error

// GroupConfig describes one settings group.
type GroupConfig struct {
	// Name is the display name, e.g. "VIEW".
	Name    string
	Section string
	Catalog *entity.Catalog
	Policy  Policy
	Store   repository.PropertyStore
	// OnSave is optional and only used by buffered groups.
	OnSave SaveHook
}

// SettingsGroup holds the current values of one catalog and mediates every
// change to them. It is not safe for concurrent use; all calls are expected
// from a single control thread.
type SettingsGroup struct {
	cfg       GroupConfig
	resolver  *PropertyResolver
	state     State
	values    map[string]entity.Value
	baseline  map[string]entity.Value
	dirty     map[string]struct{}
	observers []Observer
}

// NewSettingsGroup creates an unloaded group.
func NewSettingsGroup(cfg GroupConfig) (*SettingsGroup, error) {
	switch {
	case cfg.Store == nil:
		return nil, fmt.Errorf("settings group %q: store is nil", cfg.Name)
	case cfg.Catalog == nil:
		return nil, fmt.Errorf("settings group %q: catalog is nil", cfg.Name)
	case cfg.Section == "":
		return nil, fmt.Errorf("settings group %q: section is empty", cfg.Name)
	}
	if cfg.Name == "" {
		cfg.Name = cfg.Section
	}

	return &SettingsGroup{
		cfg:      cfg,
		resolver: NewPropertyResolver(cfg.Store),
		values:   make(map[string]entity.Value, cfg.Catalog.Len()),
		baseline: make(map[string]entity.Value, cfg.Catalog.Len()),
		dirty:    make(map[string]struct{}),
	}, nil
}

// Name returns the display name.
func (g *SettingsGroup) Name() string { return g.cfg.Name }

// Section returns the persistence section.
func (g *SettingsGroup) Section() string { return g.cfg.Section }

// Catalog returns the property declarations.
func (g *SettingsGroup) Catalog() *entity.Catalog { return g.cfg.Catalog }

// Policy returns the persistence policy.
func (g *SettingsGroup) Policy() Policy { return g.cfg.Policy }

// State returns the lifecycle state.
func (g *SettingsGroup) State() State { return g.state }

// Dirty reports whether a buffered group has unsaved edits.
func (g *SettingsGroup) Dirty() bool { return len(g.dirty) > 0 }

// Observe registers fn to run after every in-memory change, in registration order.
func (g *SettingsGroup) Observe(fn Observer) {
	g.observers = append(g.observers, fn)
}

// Load resolves every property from the store, discarding unsaved edits.
func (g *SettingsGroup) Load(ctx context.Context) {
	ctx = logging.WithGroup(ctx, g.cfg.Section)
	log := logging.FromContext(ctx)

	for _, p := range g.cfg.Catalog.Properties() {
		v := g.resolver.Resolve(ctx, g.cfg.Section, p)
		g.values[p.Name] = v
		g.baseline[p.Name] = v
	}
	clear(g.dirty)
	g.state = StateLoaded

	log.Debug().Int("properties", len(g.values)).Msg("settings group loaded")
}

// Get returns the current in-memory value of name.
func (g *SettingsGroup) Get(name string) (entity.Value, error) {
	if _, ok := g.cfg.Catalog.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %s.%s", entity.ErrUnknownProperty, g.cfg.Section, name)
	}
	if g.state == StateUninitialized {
		return nil, ErrNotLoaded
	}
	return g.values[name], nil
}

// Values returns a copy of the current values keyed by property name.
func (g *SettingsGroup) Values() map[string]entity.Value {
	out := make(map[string]entity.Value, len(g.values))
	for k, v := range g.values {
		out[k] = v
	}
	return out
}

// Set validates and applies a new value. Write-through groups persist it
// before memory changes; a store failure leaves the previous value in place.
// Buffered groups only mark the property dirty. Observers run before Set returns.
func (g *SettingsGroup) Set(ctx context.Context, name string, value entity.Value) error {
	p, ok := g.cfg.Catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", entity.ErrUnknownProperty, g.cfg.Section, name)
	}
	if g.state == StateUninitialized {
		return ErrNotLoaded
	}
	if err := entity.Validate(p, value); err != nil {
		return err
	}

	ctx = logging.WithGroup(ctx, g.cfg.Section)
	log := logging.FromContext(ctx)

	switch g.cfg.Policy {
	case WriteThrough:
		if err := g.cfg.Store.Set(ctx, g.cfg.Section, name, entity.Encode(value)); err != nil {
			return fmt.Errorf("failed to store %s.%s: %w", g.cfg.Section, name, err)
		}
		g.baseline[name] = value
	case Buffered:
		if value == g.baseline[name] {
			delete(g.dirty, name)
		} else {
			g.dirty[name] = struct{}{}
		}
		if g.Dirty() {
			g.state = StateEditing
		} else {
			g.state = StateLoaded
		}
	}

	g.values[name] = value
	log.Debug().Str("property", name).Str("value", value.String()).Msg("property set")

	g.notify(ctx, name, value)
	return nil
}

// Save persists a buffered group key by key and then runs its save hook.
// Write-through groups have nothing to persist and return nil.
func (g *SettingsGroup) Save(ctx context.Context) error {
	if g.state == StateUninitialized {
		return ErrNotLoaded
	}
	if g.cfg.Policy != Buffered {
		return nil
	}

	ctx = logging.WithGroup(ctx, g.cfg.Section)
	log := logging.FromContext(ctx)

	for _, p := range g.cfg.Catalog.Properties() {
		v := g.values[p.Name]
		if err := g.cfg.Store.Set(ctx, g.cfg.Section, p.Name, entity.Encode(v)); err != nil {
			return fmt.Errorf("failed to save %s.%s: %w", g.cfg.Section, p.Name, err)
		}
		g.baseline[p.Name] = v
		delete(g.dirty, p.Name)
	}
	g.state = StateLoaded
	log.Info().Msg("settings saved")

	if g.cfg.OnSave != nil {
		if err := g.cfg.OnSave(ctx, g); err != nil {
			return fmt.Errorf("failed to apply %s settings: %w", g.cfg.Section, err)
		}
	}
	return nil
}

// Discard reverts unsaved edits to the last loaded or saved values.
func (g *SettingsGroup) Discard(ctx context.Context) {
	if !g.Dirty() {
		return
	}
	ctx = logging.WithGroup(ctx, g.cfg.Section)

	for _, p := range g.cfg.Catalog.Properties() {
		if _, changed := g.dirty[p.Name]; !changed {
			continue
		}
		g.values[p.Name] = g.baseline[p.Name]
		g.notify(ctx, p.Name, g.values[p.Name])
	}
	clear(g.dirty)
	g.state = StateLoaded

	logging.FromContext(ctx).Debug().Msg("unsaved edits discarded")
}

// Reset deletes every stored key of the group and reloads, so each property
// is restored to its default (or forced) value and written back.
func (g *SettingsGroup) Reset(ctx context.Context) error {
	for _, name := range g.cfg.Catalog.Names() {
		if err := g.cfg.Store.Delete(ctx, g.cfg.Section, name); err != nil {
			return fmt.Errorf("failed to reset %s.%s: %w", g.cfg.Section, name, err)
		}
	}
	g.Load(ctx)

	ctx = logging.WithGroup(ctx, g.cfg.Section)
	for _, name := range g.cfg.Catalog.Names() {
		g.notify(ctx, name, g.values[name])
	}
	logging.FromContext(ctx).Info().Msg("settings reset to defaults")
	return nil
}

func (g *SettingsGroup) notify(ctx context.Context, name string, value entity.Value) {
	for _, fn := range g.observers {
		fn(ctx, name, value)
	}
}
