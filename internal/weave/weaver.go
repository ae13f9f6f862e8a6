package weave

import (
	"log/slog"

	"github.com/specialistvlad/checkoutfields/internal/addressformat"
	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/i18n"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
	"github.com/specialistvlad/checkoutfields/internal/registry"
)

// MetaReader reads stored field values, such as customer or order meta.
type MetaReader interface {
	Get(key string) (string, bool)
}

// MetaEraser deletes stored field values.
type MetaEraser interface {
	Delete(key string)
}

// Session holds values a guest entered during checkout.
type Session interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// ArgsFunc may rewrite the config built for a variation before it is merged.
// Returning false drops the variation from the form. country is only set for
// address forms.
type ArgsFunc func(cfg form.Config, v model.FieldVariation, country string) (form.Config, bool)

// PropLabelFunc may rewrite the label of a privacy export property.
type PropLabelFunc func(label string, v model.FieldVariation) string

// Weaver merges the fields of one registry into host mappings.
type Weaver struct {
	reg           *registry.Registry
	logger        *slog.Logger
	labels        i18n.Labels
	args          map[model.Surface]ArgsFunc
	propLabel     PropLabelFunc
	formatOptions []addressformat.Option
}

// Option configures a Weaver.
type Option func(*Weaver)

// WithLogger sets the logger merge decisions are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Weaver) { w.logger = logger }
}

// WithLabels sets the language of the target words added to labels.
func WithLabels(labels i18n.Labels) Option {
	return func(w *Weaver) { w.labels = labels }
}

// WithFieldArgs installs a config hook for one surface.
func WithFieldArgs(s model.Surface, fn ArgsFunc) Option {
	return func(w *Weaver) { w.args[s] = fn }
}

// WithPropLabel installs a hook over privacy export property labels.
func WithPropLabel(fn PropLabelFunc) Option {
	return func(w *Weaver) { w.propLabel = fn }
}

// WithAddressFormatOptions passes options through to addressformat.Rewrite.
func WithAddressFormatOptions(opts ...addressformat.Option) Option {
	return func(w *Weaver) { w.formatOptions = append(w.formatOptions, opts...) }
}

// New creates a Weaver over reg.
func New(reg *registry.Registry, opts ...Option) *Weaver {
	w := &Weaver{
		reg:    reg,
		logger: slog.Default(),
		labels: i18n.NewLabels(""),
		args:   make(map[model.Surface]ArgsFunc),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// fieldArgs runs the surface hook, if any.
func (w *Weaver) fieldArgs(s model.Surface, cfg form.Config, v model.FieldVariation, country string) (form.Config, bool) {
	fn, ok := w.args[s]
	if !ok {
		return cfg, true
	}
	out, keep := fn(cfg, v, country)
	if !keep {
		w.logger.Debug("Field dropped by args hook.", "surface", s.String(), "slug", v.Slug)
	}
	return out, keep
}

// formConfig is the base config of a checkout, address or order form entry.
func formConfig(v model.FieldVariation, priority int) form.Config {
	return form.Config{
		"label":          v.Label,
		"description":    v.Description,
		"placeholder":    v.Placeholder,
		"required":       v.Required,
		"type":           v.Type,
		"options":        v.Options.Clone(),
		"default":        v.Default,
		"class":          append([]string{}, v.Classes...),
		form.PriorityKey: priority,
	}
}

// userConfig is the base config of an admin user profile entry.
func userConfig(v model.FieldVariation) form.Config {
	return form.Config{
		"label":       v.Label,
		"description": "",
		"type":        v.Type,
		"options":     v.Options.Clone(),
		"default":     v.Default,
	}
}

// adminOrderConfig is the base config of an admin order address entry.
func adminOrderConfig(v model.FieldVariation) form.Config {
	return form.Config{
		"label":         v.Label,
		"type":          v.Type,
		"wrapper_class": "form-field-wide",
		"show":          v.ShowAfterFormattedAdminOrderAddress,
		"options":       v.Options.Clone(),
		"default":       v.Default,
	}
}

// one wraps a single entry for the splice helpers.
func one[V any](key string, value V) *ordered.Map[V] {
	return ordered.FromPairs(ordered.Pair[V]{Key: key, Value: value})
}
