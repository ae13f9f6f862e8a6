// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes field definitions from YAML and JSON documents.
//
//	fields:
//	  - name: vat_id
//	    target: billing
//	    label: VAT ID
//	    after: [company]
//	    options: {b2b: Business, b2c: Consumer}
//
// Pointer fields distinguish "absent" from "explicitly false/empty" so the
// documented defaults apply only to keys the document leaves out.
package model

import (
	"bytes"
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/specialistvlad/checkoutfields/internal/ctxlog"
	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
	"gopkg.in/yaml.v3"
)

// DocumentFormat names a structured definition file format.
type DocumentFormat string

const (
	FormatYAML DocumentFormat = "yaml"
	FormatJSON DocumentFormat = "json"
)

type fieldDocument struct {
	Fields []fieldDecl `yaml:"fields" json:"fields"`
}

type fieldDecl struct {
	Name        string     `yaml:"name" json:"name"`
	Target      stringList `yaml:"target" json:"target"`
	Targets     stringList `yaml:"targets" json:"targets"`
	Type        *string    `yaml:"type" json:"type"`
	Label       *string    `yaml:"label" json:"label"`
	Description *string    `yaml:"description" json:"description"`
	Placeholder *string    `yaml:"placeholder" json:"placeholder"`
	Required    *bool      `yaml:"required" json:"required"`
	Default     *string    `yaml:"default" json:"default"`
	Class       stringList `yaml:"class" json:"class"`

	Options *ordered.Map[string] `yaml:"options" json:"options"`

	Position *string    `yaml:"position" json:"position"`
	Before   stringList `yaml:"before" json:"before"`
	After    stringList `yaml:"after" json:"after"`

	FormattedAddressDelimiter *string `yaml:"formatted_address_delimiter" json:"formatted_address_delimiter"`

	ShowInAddressForm                   *bool `yaml:"show_in_address_form" json:"show_in_address_form"`
	ShowInOrderForm                     *bool `yaml:"show_in_order_form" json:"show_in_order_form"`
	ShowInFormattedAddress              *bool `yaml:"show_in_formatted_address" json:"show_in_formatted_address"`
	ShowInAdminUserForm                 *bool `yaml:"show_in_admin_user_form" json:"show_in_admin_user_form"`
	ShowInAdminOrderForm                *bool `yaml:"show_in_admin_order_form" json:"show_in_admin_order_form"`
	ShowInPrivacyCustomerData           *bool `yaml:"show_in_privacy_customer_data" json:"show_in_privacy_customer_data"`
	ShowInPrivacyOrderData              *bool `yaml:"show_in_privacy_order_data" json:"show_in_privacy_order_data"`
	ShowAfterFormattedAdminOrderAddress *bool `yaml:"show_after_formatted_admin_order_address" json:"show_after_formatted_admin_order_address"`
	ShowFormattedAddressLabel           *bool `yaml:"show_formatted_address_label" json:"show_formatted_address_label"`

	OrderFieldConfig      map[string]any `yaml:"order_field_config" json:"order_field_config"`
	AddressFieldConfig    map[string]any `yaml:"address_field_config" json:"address_field_config"`
	UserFieldConfig       map[string]any `yaml:"user_field_config" json:"user_field_config"`
	AdminOrderFieldConfig map[string]any `yaml:"admin_order_field_config" json:"admin_order_field_config"`
}

// stringList accepts either a scalar or a sequence. A nil stringList means
// the key was absent.
type stringList []string

func (l *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		*l = stringList{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(stringList, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected a string", item.Line)
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	}
	return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
}

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = stringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	*l = list
	return nil
}

// DecodeFieldDocument decodes every entry of the document's `fields` list.
func DecodeFieldDocument(ctx context.Context, data []byte, format DocumentFormat, filePath string) ([]FieldDefinition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding field document", "file_path", filePath, "format", format)

	var doc fieldDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode YAML field document %s: %w", filePath, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON field document %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported field document format %q", format)
	}

	fields := make([]FieldDefinition, 0, len(doc.Fields))
	for i, decl := range doc.Fields {
		if decl.Target != nil && decl.Targets != nil {
			return nil, fmt.Errorf("%s: field #%d (%q) sets both 'target' and 'targets'", filePath, i, decl.Name)
		}
		def := decl.definition()
		def.Source = NewFSInfo(filePath)
		fields = append(fields, def)
	}

	logger.Debug("Successfully decoded field document", "count", len(fields))
	return fields, nil
}

func (d fieldDecl) definition() FieldDefinition {
	def := NewField(d.Name)

	WithTargets(Targets(d.Target...)...)(&def)
	WithTargets(Targets(d.Targets...)...)(&def)

	setString(&def.Type, d.Type)
	setString(&def.Label, d.Label)
	setString(&def.Description, d.Description)
	setString(&def.Placeholder, d.Placeholder)
	setBool(&def.Required, d.Required)
	setString(&def.Default, d.Default)
	if d.Class != nil {
		def.Classes = []string(d.Class)
	}
	if d.Options != nil {
		def.Options = d.Options
	}

	if d.Position != nil {
		def.Position = ParsePosition(*d.Position)
	}
	if d.After != nil {
		def.Position = After(d.After...)
	}
	if d.Before != nil {
		def.Position = Before(d.Before...)
	}

	setString(&def.FormattedAddressDelimiter, d.FormattedAddressDelimiter)

	setBool(&def.ShowInAddressForm, d.ShowInAddressForm)
	setBool(&def.ShowInOrderForm, d.ShowInOrderForm)
	setBool(&def.ShowInFormattedAddress, d.ShowInFormattedAddress)
	setBool(&def.ShowInAdminUserForm, d.ShowInAdminUserForm)
	setBool(&def.ShowInAdminOrderForm, d.ShowInAdminOrderForm)
	setBool(&def.ShowInPrivacyCustomerData, d.ShowInPrivacyCustomerData)
	setBool(&def.ShowInPrivacyOrderData, d.ShowInPrivacyOrderData)
	setBool(&def.ShowAfterFormattedAdminOrderAddress, d.ShowAfterFormattedAdminOrderAddress)
	setBool(&def.ShowFormattedAddressLabel, d.ShowFormattedAddressLabel)

	setConfig(&def.OrderFieldConfig, d.OrderFieldConfig)
	setConfig(&def.AddressFieldConfig, d.AddressFieldConfig)
	setConfig(&def.UserFieldConfig, d.UserFieldConfig)
	setConfig(&def.AdminOrderFieldConfig, d.AdminOrderFieldConfig)

	return def
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setConfig(dst *form.Config, v map[string]any) {
	if v != nil {
		*dst = form.Config(v)
	}
}
