package placement

import (
	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/model"
)

// ResolvePriority returns the numeric priority for a field placed at pos in
// the given target, relative to the entries already in existing.
//
//   - Last: one above the highest priority in existing, or 0 when none carries one.
//   - Before: one below the first entry (in existing's order) whose key is
//     "<target>_<key>" for any of the keys, or 0 when nothing matches.
//   - After: one above that entry, or 0 when nothing matches.
//   - First: 0.
//
// A matched entry without a priority counts as 0. An empty target matches
// bare keys.
func ResolvePriority(pos model.Position, target model.Target, existing *form.Fields) int {
	// An unmatched Before/After falls back to 0 rather than -1/+1; see
	// "Unmatched Before/After priority" in DESIGN.md.
	switch pos.Mode {
	case model.PositionFirst:
		return 0
	case model.PositionBefore:
		if p, ok := priorityOf(existing, slugs(target, pos.Keys)); ok {
			return p - 1
		}
		return 0
	case model.PositionAfter:
		if p, ok := priorityOf(existing, slugs(target, pos.Keys)); ok {
			return p + 1
		}
		return 0
	default:
		if highest, ok := HighestPriority(existing); ok {
			return highest + 1
		}
		return 0
	}
}

// HighestPriority returns the largest priority carried by any entry.
func HighestPriority(fields *form.Fields) (int, bool) {
	highest, found := 0, false
	for _, cfg := range fields.All() {
		p, ok := cfg.Priority()
		if !ok {
			continue
		}
		if !found || p > highest {
			highest, found = p, true
		}
	}
	return highest, found
}

// priorityOf finds the first entry whose key is one of candidates.
func priorityOf(fields *form.Fields, candidates map[string]struct{}) (int, bool) {
	for key, cfg := range fields.All() {
		if _, ok := candidates[key]; !ok {
			continue
		}
		p, _ := cfg.Priority()
		return p, true
	}
	return 0, false
}

func slugs(target model.Target, keys []string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if target == "" {
			out[k] = struct{}{}
			continue
		}
		out[target.Slug(k)] = struct{}{}
	}
	return out
}
