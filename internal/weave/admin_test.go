package weave

import (
	"testing"

	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminUserGroups(t *testing.T) *form.Groups {
	groups := form.NewGroups()
	groups.Set("billing", testutil.Fields(t, "billing_first_name", "billing_company", "billing_city"))
	groups.Set("shipping", testutil.Fields(t, "copy_billing", "shipping_first_name", "shipping_company", "shipping_city"))
	return groups
}

func TestAddCustomerMetaFields_Positions(t *testing.T) {
	t.Parallel()
	w := newWeaver(t,
		model.NewField("vat", model.WithPosition(model.After("company"))),
		model.NewField("title", model.WithPosition(model.Before("first_name"))),
		model.NewField("ref", model.WithPosition(model.First())),
		model.NewField("note"),
		model.NewField("missing_anchor", model.WithPosition(model.After("nope"))),
	)

	got := w.AddCustomerMetaFields(adminUserGroups(t))

	billing, _ := got.Get("billing")
	testutil.AssertKeys(t, []string{
		"billing_ref", "billing_title", "billing_first_name", "billing_company", "billing_vat", "billing_city", "billing_note",
	}, billing)

	shipping, _ := got.Get("shipping")
	testutil.AssertKeys(t, []string{
		"copy_billing", "shipping_ref", "shipping_title", "shipping_first_name", "shipping_company", "shipping_vat", "shipping_city", "shipping_note",
	}, shipping)
}

func TestAddCustomerMetaFields_Config(t *testing.T) {
	t.Parallel()
	w := newWeaver(t,
		model.NewField("kind",
			model.WithTargets(model.TargetBilling),
			model.WithType(model.TypeSelect),
			model.WithLabel("Kind"),
			model.WithDescription("not shown in admin"),
			model.WithOption("b2b", "Business"),
			model.WithUserFieldConfig(form.Config{"class": "wide"}),
		),
		model.NewField("hidden", model.WithVisibility(model.SurfaceAdminUserForm, false)),
		model.NewField("order_only", model.WithTargets(model.TargetOrder)),
	)

	got := w.AddCustomerMetaFields(adminUserGroups(t))
	billing, _ := got.Get("billing")
	testutil.AssertKeys(t, []string{"billing_first_name", "billing_company", "billing_city", "billing_kind"}, billing)

	cfg, _ := billing.Get("billing_kind")
	assert.Equal(t, "Kind", cfg["label"])
	assert.Equal(t, "", cfg["description"])
	assert.Equal(t, "wide", cfg["class"])
	assert.NotContains(t, cfg, form.PriorityKey)
}

func TestAddCustomerMetaFields_AfterUsesFirstMatch(t *testing.T) {
	t.Parallel()
	w := newWeaver(t, model.NewField("vat", model.WithPosition(model.After("address"))))

	groups := form.NewGroups()
	groups.Set("billing", testutil.Fields(t, "billing_first_name", "billing_address_1", "billing_address_2", "billing_city"))
	groups.Set("shipping", testutil.Fields(t, "copy_billing", "shipping_address_1", "shipping_address_2"))

	got := w.AddCustomerMetaFields(groups)

	billing, _ := got.Get("billing")
	testutil.AssertKeys(t, []string{"billing_first_name", "billing_address_1", "billing_vat", "billing_address_2", "billing_city"}, billing)
	shipping, _ := got.Get("shipping")
	testutil.AssertKeys(t, []string{"copy_billing", "shipping_address_1", "shipping_vat", "shipping_address_2"}, shipping)
}

func TestAddAdminOrderFields(t *testing.T) {
	t.Parallel()
	w := newWeaver(t,
		model.NewField("vat", model.WithPosition(model.After("company"))),
		model.NewField("title", model.WithPosition(model.Before("first_name")), model.WithAfterFormattedAdminOrderAddress(true)),
		model.NewField("ref", model.WithPosition(model.First())),
		model.NewField("note", model.WithAdminOrderFieldConfig(form.Config{"wrapper_class": "form-field-half"})),
		model.NewField("shipping_only", model.WithTargets(model.TargetShipping)),
	)

	fields := testutil.Fields(t, "first_name", "last_name", "company", "address_1")
	got := w.AddAdminOrderFields(model.TargetBilling, fields)

	testutil.AssertKeys(t, []string{"ref", "title", "first_name", "last_name", "company", "vat", "address_1", "note"}, got)
	testutil.AssertKeys(t, []string{"first_name", "last_name", "company", "address_1"}, fields)

	title, _ := got.Get("title")
	assert.Equal(t, true, title["show"])
	assert.Equal(t, "form-field-wide", title["wrapper_class"])

	note, _ := got.Get("note")
	assert.Equal(t, "form-field-half", note["wrapper_class"])
	assert.Equal(t, false, note["show"])
}

func TestAddAdminOrderFields_ArgsCanDrop(t *testing.T) {
	t.Parallel()
	reg := newWeaver(t, model.NewField("vat")).reg
	w := New(reg, WithFieldArgs(model.SurfaceAdminOrderForm, func(form.Config, model.FieldVariation, string) (form.Config, bool) {
		return nil, false
	}))

	got := w.AddAdminOrderFields(model.TargetBilling, testutil.Fields(t, "company"))
	testutil.AssertKeys(t, []string{"company"}, got)
	require.NotNil(t, got)
}

func TestAddAdminOrderFields_AfterUsesFirstMatch(t *testing.T) {
	t.Parallel()
	w := newWeaver(t, model.NewField("vat", model.WithPosition(model.After("address"))))

	got := w.AddAdminOrderFields(model.TargetBilling, testutil.Fields(t, "first_name", "address_1", "address_2", "city"))
	testutil.AssertKeys(t, []string{"first_name", "address_1", "vat", "address_2", "city"}, got)
}
