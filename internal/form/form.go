// Package form holds the presentation config the host attaches to every
// entry of a form mapping (label, type, priority, classes, ...). The core
// treats it as opaque apart from the numeric priority.
package form

import (
	"math"
	"strconv"

	"github.com/specialistvlad/checkoutfields/internal/ordered"
)

// PriorityKey is the config key carrying an entry's numeric sort key.
const PriorityKey = "priority"

// Config is the presentation config of one form entry.
type Config map[string]any

// Fields is an ordered form mapping keyed by field slug.
type Fields = ordered.Map[Config]

// NewFields returns an empty form mapping.
func NewFields() *Fields {
	return ordered.New[Config]()
}

// Groups holds one form mapping per target, e.g. the billing, shipping and
// order sections of a checkout form.
type Groups = ordered.Map[*Fields]

// NewGroups returns an empty set of groups.
func NewGroups() *Groups {
	return ordered.New[*Fields]()
}

// Priority returns the entry's priority and whether it carries one.
// Whole numbers of any numeric kind and numeric strings are accepted;
// fractional values are truncated.
func (c Config) Priority() (int, bool) {
	raw, ok := c[PriorityKey]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(math.Trunc(float64(v))), true
	case float64:
		return int(math.Trunc(v)), true
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return int(math.Trunc(n)), true
		}
	}
	return 0, false
}

// Clone copies the config. Nested maps and slices are copied recursively so
// callers can extend the result without touching the source.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case Config:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case *ordered.Map[string]:
		return t.Clone()
	default:
		return v
	}
}

// Merge overlays overrides on defaults, key by key. Explicit keys in
// overrides win; nested values are replaced, never merged.
func Merge(overrides, defaults Config) Config {
	out := make(Config, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = cloneValue(v)
	}
	for k, v := range overrides {
		out[k] = cloneValue(v)
	}
	return out
}
