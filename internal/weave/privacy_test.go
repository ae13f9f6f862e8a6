package weave

import (
	"testing"

	"github.com/specialistvlad/checkoutfields/internal/i18n"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
	"github.com/specialistvlad/checkoutfields/internal/registry"
	"github.com/specialistvlad/checkoutfields/internal/sessionstore"
	"github.com/stretchr/testify/assert"
)

func customerProps() *ordered.Map[string] {
	return ordered.FromPairs(
		ordered.Pair[string]{Key: "billing_first_name", Value: "Billing First Name"},
		ordered.Pair[string]{Key: "billing_company", Value: "Billing Company"},
		ordered.Pair[string]{Key: "billing_city", Value: "Billing City"},
		ordered.Pair[string]{Key: "shipping_first_name", Value: "Shipping First Name"},
		ordered.Pair[string]{Key: "shipping_city", Value: "Shipping City"},
	)
}

func TestPrivacyCustomerProps(t *testing.T) {
	t.Parallel()
	w := newWeaver(t,
		model.NewField("vat", model.WithLabel("VAT"), model.WithTargets(model.TargetBilling), model.WithPosition(model.After("company"))),
		model.NewField("ref", model.WithLabel("Ref"), model.WithPosition(model.First())),
		model.NewField("note", model.WithLabel("Note")),
		model.NewField("hidden", model.WithVisibility(model.SurfacePrivacyCustomerExport, false)),
	)

	got := w.PrivacyCustomerProps(customerProps())
	assert.Equal(t, []string{
		"billing_ref", "billing_first_name", "billing_company", "billing_vat", "billing_city", "billing_note",
		"shipping_ref", "shipping_first_name", "shipping_city", "shipping_note",
	}, got.Keys())

	label, _ := got.Get("billing_vat")
	assert.Equal(t, "Billing VAT", label)
	label, _ = got.Get("shipping_note")
	assert.Equal(t, "Shipping Note", label)
}

func TestPrivacyCustomerProps_AfterUsesFirstMatch(t *testing.T) {
	t.Parallel()
	w := newWeaver(t,
		model.NewField("vat", model.WithTargets(model.TargetBilling), model.WithPosition(model.After("address"))),
		model.NewField("note", model.WithTargets(model.TargetBilling)),
	)

	props := ordered.FromPairs(
		ordered.Pair[string]{Key: "billing_first_name", Value: "Billing First Name"},
		ordered.Pair[string]{Key: "billing_address_1", Value: "Billing Address 1"},
		ordered.Pair[string]{Key: "billing_address_2", Value: "Billing Address 2"},
		ordered.Pair[string]{Key: "billing_city", Value: "Billing City"},
	)
	assert.Equal(t, []string{
		"billing_first_name", "billing_address_1", "billing_vat", "billing_address_2", "billing_city", "billing_note",
	}, w.PrivacyCustomerProps(props).Keys())
}

func TestPrivacyCustomerProps_NoTargetGroupMeansNoInsert(t *testing.T) {
	t.Parallel()
	w := newWeaver(t, model.NewField("note", model.WithTargets(model.TargetShipping)))

	props := ordered.FromPairs(ordered.Pair[string]{Key: "billing_city", Value: "Billing City"})
	assert.Equal(t, []string{"billing_city"}, w.PrivacyCustomerProps(props).Keys())
}

func TestPrivacyCustomerProps_LabelsAndHook(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	reg.Register(model.NewField("vat", model.WithLabel("USt-IdNr."), model.WithTargets(model.TargetBilling)))
	w := New(reg,
		WithLabels(i18n.NewLabels("de")),
		WithPropLabel(func(label string, v model.FieldVariation) string { return label + " (" + v.Slug + ")" }),
	)

	got := w.PrivacyCustomerProps(customerProps())
	label, _ := got.Get("billing_vat")
	assert.Equal(t, "Rechnung USt-IdNr. (billing_vat)", label)
}

func TestPrivacyCustomerValueAndErase(t *testing.T) {
	t.Parallel()
	w := newWeaver(t,
		model.NewField("kind", model.WithType(model.TypeRadio), model.WithOption("b2b", "Business")),
		model.NewField("secret", model.WithVisibility(model.SurfacePrivacyCustomerExport, false)),
		model.NewField("po", model.WithTargets(model.TargetOrder)),
	)
	meta := sessionstore.FromMap(map[string]string{
		"billing_kind":   "b2b",
		"billing_secret": "s3cr3t",
		"order_po":       "42",
	})

	v, ok := w.PrivacyCustomerValue("billing_kind", meta)
	assert.True(t, ok)
	assert.Equal(t, "Business", v)

	v, ok = w.PrivacyCustomerValue("shipping_kind", meta)
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = w.PrivacyCustomerValue("billing_secret", meta)
	assert.False(t, ok)
	_, ok = w.PrivacyCustomerValue("order_po", meta)
	assert.False(t, ok)

	assert.True(t, w.PrivacyEraseCustomerProp("billing_secret", meta), "erasure ignores export visibility")
	assert.False(t, w.PrivacyEraseCustomerProp("order_po", meta))
	assert.Equal(t, []string{"billing_kind", "order_po"}, meta.Keys())
}

func TestPrivacyOrder(t *testing.T) {
	t.Parallel()
	w := newWeaver(t,
		model.NewField("vat", model.WithLabel("VAT"), model.WithTargets(model.TargetBilling)),
		model.NewField("po", model.WithLabel("PO"), model.WithTargets(model.TargetOrder), model.WithType(model.TypeSelect), model.WithOption("a", "Alpha")),
		model.NewField("hidden", model.WithTargets(model.TargetOrder), model.WithVisibility(model.SurfacePrivacyOrderExport, false)),
		model.NewField("newsletter", model.WithTargets(model.TargetAccount)),
	)

	props := ordered.FromPairs(ordered.Pair[string]{Key: "order_total", Value: "Total"})
	got := w.PrivacyOrderProps(props)
	assert.Equal(t, []string{"order_total", "billing_vat", "order_po"}, got.Keys())
	label, _ := got.Get("order_po")
	assert.Equal(t, "Order PO", label)

	meta := sessionstore.FromMap(map[string]string{"_order_po": "a"})
	v, ok := w.PrivacyOrderValue("order_po", meta)
	assert.True(t, ok)
	assert.Equal(t, "Alpha", v)
	_, ok = w.PrivacyOrderValue("order_hidden", meta)
	assert.False(t, ok)

	removed := w.OrderMetaToRemove(map[string]string{"_billing_email": "email"})
	assert.Equal(t, map[string]string{
		"_billing_email": "email",
		"_billing_vat":   "text",
		"_order_po":      "text",
		"_order_hidden":  "text",
	}, removed)
}
