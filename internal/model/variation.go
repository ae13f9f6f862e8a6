// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FieldVariation, a FieldDefinition projected onto one
// target. Variations are what host handlers iterate over: one definition
// targeting billing and shipping yields billing_<name> and shipping_<name>.
package model

// FieldVariation is a FieldDefinition bound to a single Target.
// The embedded definition's Targets holds exactly that target.
type FieldVariation struct {
	FieldDefinition
	Target Target
	Slug   string
}

// Variation projects f onto target t. With usePrefix the slug is
// "<target>_<name>", otherwise the bare name.
func (f FieldDefinition) Variation(t Target, usePrefix bool) FieldVariation {
	def := f.Clone()
	def.Targets = []Target{t}

	slug := f.Name
	if usePrefix {
		slug = t.Slug(f.Name)
	}
	return FieldVariation{
		FieldDefinition: def,
		Target:          t,
		Slug:            slug,
	}
}
