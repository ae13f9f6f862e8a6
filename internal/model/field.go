// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FieldDefinition and the functional options used to build
// one.
//
// Why functional options?
//
// Every attribute of a field has a documented default, and most declarations
// override only two or three of them. Starting from DefaultField and applying
// options field by field gives the "explicit value wins, else default" rule
// without a merge step, and boolean flags can be set to false explicitly
// without being mistaken for "unset".
package model

import (
	"slices"

	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
)

// Field types with special handling. Any other type string is accepted and
// passed to the host unchanged.
const (
	TypeText   = "text"
	TypeSelect = "select"
	TypeRadio  = "radio"
)

// DefaultDelimiter separates a field from its neighbour in formatted-address templates.
const DefaultDelimiter = "\n"

// FieldDefinition is the full declarative configuration of one custom field.
type FieldDefinition struct {
	// Name is unique per target, not globally.
	Name    string
	Targets []Target

	Type        string
	Label       string
	Description string
	Placeholder string
	Required    bool
	Default     string
	// Options maps stored value to display label for select/radio fields.
	Options *ordered.Map[string]
	Classes []string

	Position Position

	FormattedAddressDelimiter string

	ShowInAddressForm         bool
	ShowInOrderForm           bool
	ShowInFormattedAddress    bool
	ShowInAdminUserForm       bool
	ShowInAdminOrderForm      bool
	ShowInPrivacyCustomerData bool
	ShowInPrivacyOrderData    bool

	// ShowAfterFormattedAdminOrderAddress shows the value below the formatted
	// address on the admin order screen.
	ShowAfterFormattedAdminOrderAddress bool
	// ShowFormattedAddressLabel prefixes the value with "Label: " in formatted addresses.
	ShowFormattedAddressLabel bool

	// Overrides applied over the generated presentation config, per surface.
	OrderFieldConfig      form.Config
	AddressFieldConfig    form.Config
	UserFieldConfig       form.Config
	AdminOrderFieldConfig form.Config

	Source *FSInfo
}

// FieldOption sets one attribute of a FieldDefinition.
type FieldOption func(*FieldDefinition)

// DefaultField returns a definition with every documented default applied.
func DefaultField() FieldDefinition {
	return FieldDefinition{
		Targets:                   DefaultTargets(),
		Type:                      TypeText,
		Options:                   ordered.New[string](),
		Classes:                   []string{},
		Position:                  Last(),
		FormattedAddressDelimiter: DefaultDelimiter,
		ShowInAddressForm:         true,
		ShowInOrderForm:           true,
		ShowInFormattedAddress:    true,
		ShowInAdminUserForm:       true,
		ShowInAdminOrderForm:      true,
		ShowInPrivacyCustomerData: true,
		ShowInPrivacyOrderData:    true,
		OrderFieldConfig:          form.Config{},
		AddressFieldConfig:        form.Config{},
		UserFieldConfig:           form.Config{},
		AdminOrderFieldConfig:     form.Config{},
	}
}

// NewField builds a definition named name from the defaults and opts.
func NewField(name string, opts ...FieldOption) FieldDefinition {
	f := DefaultField()
	f.Name = name
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithTargets sets the targets. An empty list keeps the current targets.
func WithTargets(targets ...Target) FieldOption {
	return func(f *FieldDefinition) {
		clean := make([]Target, 0, len(targets))
		for _, t := range targets {
			if t != "" {
				clean = append(clean, t)
			}
		}
		if len(clean) > 0 {
			f.Targets = clean
		}
	}
}

func WithType(typ string) FieldOption {
	return func(f *FieldDefinition) { f.Type = typ }
}

func WithLabel(label string) FieldOption {
	return func(f *FieldDefinition) { f.Label = label }
}

func WithDescription(description string) FieldOption {
	return func(f *FieldDefinition) { f.Description = description }
}

func WithPlaceholder(placeholder string) FieldOption {
	return func(f *FieldDefinition) { f.Placeholder = placeholder }
}

func WithRequired(required bool) FieldOption {
	return func(f *FieldDefinition) { f.Required = required }
}

func WithDefault(value string) FieldOption {
	return func(f *FieldDefinition) { f.Default = value }
}

func WithClasses(classes ...string) FieldOption {
	return func(f *FieldDefinition) { f.Classes = slices.Clone(classes) }
}

// WithOption appends one choice; a repeated value replaces the label in place.
func WithOption(value, label string) FieldOption {
	return func(f *FieldDefinition) {
		if f.Options == nil {
			f.Options = ordered.New[string]()
		}
		f.Options.Set(value, label)
	}
}

func WithPosition(p Position) FieldOption {
	return func(f *FieldDefinition) { f.Position = p.Clone() }
}

func WithDelimiter(delimiter string) FieldOption {
	return func(f *FieldDefinition) { f.FormattedAddressDelimiter = delimiter }
}

// WithVisibility shows or hides the field on one surface.
func WithVisibility(s Surface, shown bool) FieldOption {
	return func(f *FieldDefinition) { f.SetVisible(s, shown) }
}

func WithFormattedAddressLabel(show bool) FieldOption {
	return func(f *FieldDefinition) { f.ShowFormattedAddressLabel = show }
}

func WithAfterFormattedAdminOrderAddress(show bool) FieldOption {
	return func(f *FieldDefinition) { f.ShowAfterFormattedAdminOrderAddress = show }
}

func WithOrderFieldConfig(cfg form.Config) FieldOption {
	return func(f *FieldDefinition) { f.OrderFieldConfig = cfg.Clone() }
}

func WithAddressFieldConfig(cfg form.Config) FieldOption {
	return func(f *FieldDefinition) { f.AddressFieldConfig = cfg.Clone() }
}

func WithUserFieldConfig(cfg form.Config) FieldOption {
	return func(f *FieldDefinition) { f.UserFieldConfig = cfg.Clone() }
}

func WithAdminOrderFieldConfig(cfg form.Config) FieldOption {
	return func(f *FieldDefinition) { f.AdminOrderFieldConfig = cfg.Clone() }
}

// Visible reports whether the field is shown on surface s.
func (f FieldDefinition) Visible(s Surface) bool {
	switch s {
	case SurfaceAddressForm:
		return f.ShowInAddressForm
	case SurfaceOrderForm:
		return f.ShowInOrderForm
	case SurfaceFormattedAddress:
		return f.ShowInFormattedAddress
	case SurfaceAdminUserForm:
		return f.ShowInAdminUserForm
	case SurfaceAdminOrderForm:
		return f.ShowInAdminOrderForm
	case SurfacePrivacyCustomerExport:
		return f.ShowInPrivacyCustomerData
	case SurfacePrivacyOrderExport:
		return f.ShowInPrivacyOrderData
	}
	return false
}

// SetVisible sets the flag for surface s.
func (f *FieldDefinition) SetVisible(s Surface, shown bool) {
	switch s {
	case SurfaceAddressForm:
		f.ShowInAddressForm = shown
	case SurfaceOrderForm:
		f.ShowInOrderForm = shown
	case SurfaceFormattedAddress:
		f.ShowInFormattedAddress = shown
	case SurfaceAdminUserForm:
		f.ShowInAdminUserForm = shown
	case SurfaceAdminOrderForm:
		f.ShowInAdminOrderForm = shown
	case SurfacePrivacyCustomerExport:
		f.ShowInPrivacyCustomerData = shown
	case SurfacePrivacyOrderExport:
		f.ShowInPrivacyOrderData = shown
	}
}

// HasTarget reports whether t is one of the field's targets.
func (f FieldDefinition) HasTarget(t Target) bool {
	return slices.Contains(f.Targets, t)
}

// IsChoice reports whether stored values are option keys.
func (f FieldDefinition) IsChoice() bool {
	return f.Type == TypeSelect || f.Type == TypeRadio
}

// Clone returns a deep copy of f. Source is shared; it is immutable.
func (f FieldDefinition) Clone() FieldDefinition {
	out := f
	out.Targets = slices.Clone(f.Targets)
	out.Classes = slices.Clone(f.Classes)
	out.Options = f.Options.Clone()
	out.Position = f.Position.Clone()
	out.OrderFieldConfig = f.OrderFieldConfig.Clone()
	out.AddressFieldConfig = f.AddressFieldConfig.Clone()
	out.UserFieldConfig = f.UserFieldConfig.Clone()
	out.AdminOrderFieldConfig = f.AdminOrderFieldConfig.Clone()
	return out
}
