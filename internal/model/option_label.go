// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// OptionLabel returns the text to show for a stored value. Choice fields
// store option keys, so the key is looked up in Options and an unknown key
// yields "". Every other type returns raw unchanged.
func OptionLabel(f FieldDefinition, raw string) string {
	if !f.IsChoice() {
		return raw
	}
	label, ok := f.Options.Get(raw)
	if !ok {
		return ""
	}
	return label
}
