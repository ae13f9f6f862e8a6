package registry

import (
	"slices"

	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
)

// Filter selects definitions. All criteria are ANDed; zero criteria select
// every definition.
type Filter struct {
	// Targets keeps definitions sharing at least one target with the list.
	// Returned copies have their Targets narrowed to the intersection.
	Targets []model.Target
	// Surfaces keeps definitions whose visibility flag equals the given value
	// for every listed surface.
	Surfaces map[model.Surface]bool
}

// ForTargets returns a filter on the given targets.
func ForTargets(targets ...model.Target) Filter {
	return Filter{Targets: targets}
}

// Shown returns a copy of f that additionally requires the field to be
// visible on surface s.
func (f Filter) Shown(s model.Surface) Filter {
	surfaces := make(map[model.Surface]bool, len(f.Surfaces)+1)
	for k, v := range f.Surfaces {
		surfaces[k] = v
	}
	surfaces[s] = true
	return Filter{Targets: slices.Clone(f.Targets), Surfaces: surfaces}
}

// Hidden returns a copy of f that additionally requires the field to be
// hidden on surface s.
func (f Filter) Hidden(s model.Surface) Filter {
	out := f.Shown(s)
	out.Surfaces[s] = false
	return out
}

func (f Filter) match(def model.FieldDefinition) (model.FieldDefinition, bool) {
	for s, want := range f.Surfaces {
		if def.Visible(s) != want {
			return def, false
		}
	}
	if len(f.Targets) == 0 {
		return def, true
	}

	narrowed := make([]model.Target, 0, len(def.Targets))
	for _, t := range def.Targets {
		if slices.Contains(f.Targets, t) {
			narrowed = append(narrowed, t)
		}
	}
	if len(narrowed) == 0 {
		return def, false
	}
	def.Targets = narrowed
	return def, true
}

// Query returns deep copies of the definitions matching f, in registration
// order. It never returns nil.
func (r *Registry) Query(f Filter) []model.FieldDefinition {
	out := make([]model.FieldDefinition, 0, len(r.fields))
	for _, def := range r.fields {
		matched, ok := f.match(def.Clone())
		if !ok {
			continue
		}
		out = append(out, matched)
	}
	return out
}

// QueryVariations expands each definition matching f into one variation per
// remaining target, keyed by slug. Iteration follows query order, then each
// definition's target order. A repeated slug replaces the earlier value but
// keeps its position.
func (r *Registry) QueryVariations(f Filter, usePrefix bool) *ordered.Map[model.FieldVariation] {
	out := ordered.New[model.FieldVariation]()
	for _, def := range r.Query(f) {
		for _, t := range def.Targets {
			v := def.Variation(t, usePrefix)
			out.Set(v.Slug, v)
		}
	}
	return out
}

// All returns deep copies of every registered definition.
func (r *Registry) All() []model.FieldDefinition {
	return r.Query(Filter{})
}
