// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of declaratively registered
// checkout fields. Its core purpose is to turn field declarations, whether
// built in Go with functional options or decoded from .hcl, .yaml or .json
// files, into strongly-typed FieldDefinition values with every default
// applied.
//
// # Core Concepts
//
//   - FieldDefinition: one logical custom field and every context it appears
//     in. It carries presentation metadata that the placement engine never
//     interprets (type, label, options, classes) plus the two things it does
//     interpret: the target list and the Position.
//
//   - Target: a form context a field is woven into (billing, shipping, order).
//
//   - Position: where the field goes relative to the stock fields of a form.
//     Exactly one of first, last, before(keys) or after(keys).
//
//   - Surface: one of the seven presentation surfaces a field can be hidden
//     from (address form, order form, formatted address, admin user form,
//     admin order form, and the two privacy exports).
//
//   - FieldVariation: a FieldDefinition projected onto a single Target. It is
//     derived on every query and never stored.
//
// Why a separate model package?
//
// Field files are read once at startup, but their contents are consulted on
// every form render. Normalising everything here (scalar targets become lists,
// before/after force the position mode, missing flags take their defaults)
// keeps the registry and placement code free of format-specific checks.
package model
