// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Position, the declarative placement instruction of a
// field relative to the stock fields of a form.
//
// Before and after keys are stored bare ("company", not "billing_company").
// Target prefixes are added by the placement engine when a variation is
// merged, because the same definition is merged into several targets.
package model

import (
	"slices"
	"strings"
)

// PositionMode selects one of the four placement strategies.
type PositionMode int

const (
	// PositionLast is the zero value: append after every existing field.
	PositionLast PositionMode = iota
	PositionFirst
	PositionBefore
	PositionAfter
)

// String returns the keyword for the mode.
func (m PositionMode) String() string {
	switch m {
	case PositionFirst:
		return "first"
	case PositionBefore:
		return "before"
	case PositionAfter:
		return "after"
	default:
		return "last"
	}
}

// Position is exactly one placement mode. Keys is set only for Before/After
// and is never empty for those modes.
type Position struct {
	Mode PositionMode
	Keys []string
}

// First places the field ahead of every existing field.
func First() Position { return Position{Mode: PositionFirst} }

// Last places the field after every existing field.
func Last() Position { return Position{Mode: PositionLast} }

// Before places the field in front of the first existing field matching any key.
// Without keys the position degrades to Last.
func Before(keys ...string) Position {
	return withKeys(PositionBefore, keys)
}

// After places the field behind an existing field matching any key.
// Without keys the position degrades to Last.
func After(keys ...string) Position {
	return withKeys(PositionAfter, keys)
}

func withKeys(mode PositionMode, keys []string) Position {
	clean := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			clean = append(clean, k)
		}
	}
	if len(clean) == 0 {
		return Last()
	}
	return Position{Mode: mode, Keys: clean}
}

// ParsePosition maps the "first"/"last" keywords to a Position. Anything else
// falls through to Last.
func ParsePosition(keyword string) Position {
	if strings.EqualFold(strings.TrimSpace(keyword), "first") {
		return First()
	}
	return Last()
}

// IsRelative reports whether the position references other fields.
func (p Position) IsRelative() bool {
	return p.Mode == PositionBefore || p.Mode == PositionAfter
}

// Clone returns a copy that shares no memory with p.
func (p Position) Clone() Position {
	return Position{Mode: p.Mode, Keys: slices.Clone(p.Keys)}
}

// String renders the position for logs, e.g. "before(company,last_name)".
func (p Position) String() string {
	if !p.IsRelative() {
		return p.Mode.String()
	}
	return p.Mode.String() + "(" + strings.Join(p.Keys, ",") + ")"
}
