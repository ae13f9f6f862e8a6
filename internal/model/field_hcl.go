// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes `field` blocks from HCL files.
//
//	field "vat_id" {
//	  target   = ["billing"]
//	  label    = "VAT ID"
//	  required = true
//	  after    = "company"
//
//	  option "b2b" { label = "Business" }
//
//	  address_field_config = { class = ["form-row-wide"] }
//	}
//
// Attributes mirror the declaration keys of the YAML/JSON format. Scalar
// `target`, `before` and `after` values are normalised to single-element
// lists. `before` wins over `after`, and either wins over `position`.
package model

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/checkoutfields/internal/ctxlog"
	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/zclconf/go-cty/cty"
)

// fieldRootSchema defines the top-level structure of a file: one or more
// 'field' blocks.
type fieldRootSchema struct {
	Fields []*hclField `hcl:"field,block"`
	Remain hcl.Body    `hcl:",remain"`
}

// hclField represents a single 'field' block for decoding purposes.
type hclField struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// fieldBodySchema is the HCL schema for the body of a `field` block.
var fieldBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "target"},
		{Name: "targets"},
		{Name: "type"},
		{Name: "label"},
		{Name: "description"},
		{Name: "placeholder"},
		{Name: "required"},
		{Name: "default"},
		{Name: "class"},
		{Name: "position"},
		{Name: "before"},
		{Name: "after"},
		{Name: "formatted_address_delimiter"},
		{Name: "show_in_address_form"},
		{Name: "show_in_order_form"},
		{Name: "show_in_formatted_address"},
		{Name: "show_in_admin_user_form"},
		{Name: "show_in_admin_order_form"},
		{Name: "show_in_privacy_customer_data"},
		{Name: "show_in_privacy_order_data"},
		{Name: "show_after_formatted_admin_order_address"},
		{Name: "show_formatted_address_label"},
		{Name: "order_field_config"},
		{Name: "address_field_config"},
		{Name: "user_field_config"},
		{Name: "admin_order_field_config"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "option", LabelNames: []string{"value"}},
	},
}

// optionBlock is the body of an `option "<value>" {}` block.
type optionBlock struct {
	Label string `hcl:"label,optional"`
}

// ParseFieldFile decodes every `field` block of an already parsed HCL file.
func ParseFieldFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]FieldDefinition, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing field definitions from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	root := &fieldRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, root)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	fields := make([]FieldDefinition, 0, len(root.Fields))
	for _, parsed := range root.Fields {
		content, contentDiags := parsed.Body.Content(fieldBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue // Skip this field but keep reporting on the others.
		}

		def := NewField(parsed.Name)
		def.Source = NewFSInfo(filePath)

		allDiags = append(allDiags, applyHCLAttributes(&def, content.Attributes)...)
		allDiags = append(allDiags, applyHCLOptions(&def, content.Blocks)...)

		fields = append(fields, def)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed field definitions", "count", len(fields))
	return fields, allDiags
}

func applyHCLAttributes(def *FieldDefinition, attrs hcl.Attributes) hcl.Diagnostics {
	var diags hcl.Diagnostics

	decodeString := func(name string, dst *string) {
		if attr, ok := attrs[name]; ok {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, dst)...)
		}
	}
	decodeBool := func(name string, dst *bool) {
		if attr, ok := attrs[name]; ok {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, dst)...)
		}
	}
	decodeList := func(name string) ([]string, bool) {
		attr, ok := attrs[name]
		if !ok {
			return nil, false
		}
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			return nil, false
		}
		list, err := ctyToStringList(val)
		if err != nil {
			diags = append(diags, attrError(attr, err))
			return nil, false
		}
		return list, true
	}
	decodeConfig := func(name string, dst *form.Config) {
		attr, ok := attrs[name]
		if !ok {
			return
		}
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			return
		}
		cfg, err := ctyToConfig(val)
		if err != nil {
			diags = append(diags, attrError(attr, err))
			return
		}
		*dst = cfg
	}

	if _, both := attrs["targets"]; both {
		if _, dup := attrs["target"]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Conflicting target attributes",
				Detail:   fmt.Sprintf("Field %q sets both 'target' and 'targets'; use one of them.", def.Name),
				Subject:  attrs["targets"].Range.Ptr(),
			})
		}
	}
	for _, name := range []string{"target", "targets"} {
		if list, ok := decodeList(name); ok {
			WithTargets(Targets(list...)...)(def)
		}
	}

	decodeString("type", &def.Type)
	decodeString("label", &def.Label)
	decodeString("description", &def.Description)
	decodeString("placeholder", &def.Placeholder)
	decodeBool("required", &def.Required)
	decodeString("default", &def.Default)
	if list, ok := decodeList("class"); ok {
		def.Classes = list
	}

	var keyword string
	decodeString("position", &keyword)
	if keyword != "" {
		def.Position = ParsePosition(keyword)
	}
	if keys, ok := decodeList("after"); ok {
		def.Position = After(keys...)
	}
	if keys, ok := decodeList("before"); ok {
		def.Position = Before(keys...)
	}

	if attr, ok := attrs["formatted_address_delimiter"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &def.FormattedAddressDelimiter)...)
	}

	for _, s := range Surfaces() {
		if attr, ok := attrs[s.String()]; ok {
			var shown bool
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &shown)...)
			def.SetVisible(s, shown)
		}
	}
	decodeBool("show_after_formatted_admin_order_address", &def.ShowAfterFormattedAdminOrderAddress)
	decodeBool("show_formatted_address_label", &def.ShowFormattedAddressLabel)

	decodeConfig("order_field_config", &def.OrderFieldConfig)
	decodeConfig("address_field_config", &def.AddressFieldConfig)
	decodeConfig("user_field_config", &def.UserFieldConfig)
	decodeConfig("admin_order_field_config", &def.AdminOrderFieldConfig)

	return diags
}

func applyHCLOptions(def *FieldDefinition, blocks hcl.Blocks) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, block := range blocks {
		if block.Type != "option" {
			continue
		}
		var opt optionBlock
		blockDiags := gohcl.DecodeBody(block.Body, nil, &opt)
		diags = append(diags, blockDiags...)
		if blockDiags.HasErrors() {
			continue
		}
		WithOption(block.Labels[0], opt.Label)(def)
	}
	return diags
}

func ctyToConfig(v cty.Value) (form.Config, error) {
	native, err := ctyToNative(v)
	if err != nil {
		return nil, err
	}
	if native == nil {
		return form.Config{}, nil
	}
	m, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an object, got %s", v.Type().FriendlyName())
	}
	return form.Config(m), nil
}

func attrError(attr *hcl.Attribute, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid value for '%s'", attr.Name),
		Detail:   err.Error(),
		Subject:  attr.Expr.Range().Ptr(),
	}
}
