// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Target, the form context a field is woven into.
package model

// Target is a context a field can appear in. Unknown targets are accepted
// as-is so integrators can address host forms this package does not know.
type Target string

const (
	TargetBilling  Target = "billing"
	TargetShipping Target = "shipping"
	TargetOrder    Target = "order"
	TargetAccount  Target = "account"
)

// DefaultTargets is the target list of a field that declares none.
func DefaultTargets() []Target {
	return []Target{TargetBilling, TargetShipping}
}

// Targets converts plain strings into a Target list, dropping empty strings.
func Targets(names ...string) []Target {
	out := make([]Target, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		out = append(out, Target(n))
	}
	return out
}

// Slug returns the composite key of a field name within this target.
func (t Target) Slug(name string) string {
	return string(t) + "_" + name
}
