// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"

	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

// PropertyResolver turns stored raw values into validated property values.
// Resolve never fails: absent or unusable stored values are replaced by the
// property default, which is written back so the store heals itself.
type PropertyResolver struct {
	store repository.PropertyStore
}

// NewPropertyResolver creates a resolver reading from store.
func NewPropertyResolver(store repository.PropertyStore) *PropertyResolver {
	return &PropertyResolver{store: store}
}

// Resolve returns the effective value of p in section.
func (r *PropertyResolver) Resolve(ctx context.Context, section string, p entity.Property) entity.Value {
	log := logging.FromContext(ctx).With().
		Str("section", section).
		Str("property", p.Name).
		Logger()

	raw, found, err := r.store.Get(ctx, section, p.Name)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read property, using default")
		return r.heal(ctx, section, p, fallback(p))
	}

	if p.Forced != nil {
		if found {
			if v, cerr := entity.TryCoerce(p, raw); cerr == nil && v == p.Forced {
				return v
			}
		}
		log.Debug().Str("value", p.Forced.String()).Msg("applying forced value")
		return r.heal(ctx, section, p, p.Forced)
	}

	if !found {
		log.Debug().Msg("property not stored, writing default")
		return r.heal(ctx, section, p, p.Default)
	}

	v, err := entity.TryCoerce(p, raw)
	if err != nil {
		log.Warn().Err(err).Msg("stored value unusable, restoring default")
		return r.heal(ctx, section, p, p.Default)
	}
	return v
}

// heal writes v back to the store and returns it. Write failures are logged
// and otherwise ignored.
func (r *PropertyResolver) heal(ctx context.Context, section string, p entity.Property, v entity.Value) entity.Value {
	if err := r.store.Set(ctx, section, p.Name, entity.Encode(v)); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("section", section).
			Str("property", p.Name).
			Msg("failed to write back property")
	}
	return v
}

func fallback(p entity.Property) entity.Value {
	if p.Forced != nil {
		return p.Forced
	}
	return p.Default
}
