package weave

import (
	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/placement"
	"github.com/specialistvlad/checkoutfields/internal/registry"
)

// copyBillingKey is the stock "copy from billing" control heading the
// shipping section of the admin user screen.
const copyBillingKey = "copy_billing"

// AddCustomerMetaFields merges billing and shipping fields shown on the admin
// user screen into its sections. This screen keeps insertion order, so
// fields are spliced rather than prioritised: First lands at the top of the
// section (below copy_billing for shipping), Last at the bottom. After
// anchors on the first matching key.
func (w *Weaver) AddCustomerMetaFields(groups *form.Groups) *form.Groups {
	out := cloneGroups(groups)
	filter := registry.ForTargets(model.TargetBilling, model.TargetShipping).Shown(model.SurfaceAdminUserForm)

	for slug, v := range w.reg.QueryVariations(filter, true).All() {
		cfg, keep := w.fieldArgs(model.SurfaceAdminUserForm, form.Merge(v.UserFieldConfig, userConfig(v)), v, "")
		if !keep {
			continue
		}

		fields, _ := out.Get(string(v.Target))
		entry := one(slug, cfg)

		switch v.Position.Mode {
		case model.PositionBefore:
			fields = placement.InsertBefore(fields, placement.TargetKeys(v.Target, v.Position.Keys), entry)
		case model.PositionAfter:
			fields = placement.InsertAfterFirst(fields, placement.TargetKeys(v.Target, v.Position.Keys), entry)
		case model.PositionFirst:
			if v.Target == model.TargetShipping {
				fields = placement.InsertAfter(fields, []string{placement.LiteralKey(copyBillingKey)}, entry)
			} else {
				fields = placement.Prepend(fields, entry)
			}
		default:
			fields = placement.Append(fields, entry)
		}

		out.Set(string(v.Target), fields)
		w.logger.Debug("Merged customer meta field.", "slug", slug, "position", v.Position.String())
	}
	return out
}

// AddAdminOrderFields merges fields of target shown on the admin order screen
// into its address section. Entries are keyed by bare field name and
// position keys are matched without a target prefix. After anchors on the
// first matching key.
func (w *Weaver) AddAdminOrderFields(target model.Target, fields *form.Fields) *form.Fields {
	out := fields.Clone()
	filter := registry.ForTargets(target).Shown(model.SurfaceAdminOrderForm)

	for _, v := range w.reg.QueryVariations(filter, true).All() {
		cfg, keep := w.fieldArgs(model.SurfaceAdminOrderForm, form.Merge(v.AdminOrderFieldConfig, adminOrderConfig(v)), v, "")
		if !keep {
			continue
		}

		entry := one(v.Name, cfg)
		switch v.Position.Mode {
		case model.PositionBefore:
			out = placement.InsertBefore(out, placement.LiteralKeys(v.Position.Keys), entry)
		case model.PositionAfter:
			out = placement.InsertAfterFirst(out, placement.LiteralKeys(v.Position.Keys), entry)
		case model.PositionFirst:
			out = placement.Prepend(out, entry)
		default:
			out = placement.Append(out, entry)
		}
		w.logger.Debug("Merged admin order field.", "name", v.Name, "target", target, "position", v.Position.String())
	}
	return out
}
