package weave

import (
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
	"github.com/specialistvlad/checkoutfields/internal/placement"
	"github.com/specialistvlad/checkoutfields/internal/registry"
)

var (
	customerTargets = []model.Target{model.TargetBilling, model.TargetShipping}
	orderTargets    = []model.Target{model.TargetBilling, model.TargetShipping, model.TargetOrder}
)

// propLabelFor prefixes the label with the translated target word and runs the
// label hook.
func (w *Weaver) propLabelFor(v model.FieldVariation) string {
	label := w.labels.Prefix(v.Target, v.Label)
	if w.propLabel != nil {
		label = w.propLabel(label, v)
	}
	return label
}

// PrivacyCustomerProps merges billing and shipping fields exported with
// customer data into the export's prop => label list. Without a relative
// position a field lands at the edge of its target's group: First in front
// of the first "<target>_" prop, Last behind the last one. When the list has
// no prop of that target the field is not added. A relative After anchors on
// the first matching prop.
func (w *Weaver) PrivacyCustomerProps(props *ordered.Map[string]) *ordered.Map[string] {
	out := props.Clone()
	filter := registry.ForTargets(customerTargets...).Shown(model.SurfacePrivacyCustomerExport)

	for slug, v := range w.reg.QueryVariations(filter, true).All() {
		entry := one(slug, w.propLabelFor(v))

		switch v.Position.Mode {
		case model.PositionBefore:
			out = placement.InsertBefore(out, placement.TargetKeys(v.Target, v.Position.Keys), entry)
		case model.PositionAfter:
			out = placement.InsertAfterFirst(out, placement.TargetKeys(v.Target, v.Position.Keys), entry)
		case model.PositionFirst:
			out = placement.InsertBefore(out, []string{placement.TargetGroup(v.Target)}, entry)
		default:
			out = placement.InsertAfter(out, []string{placement.TargetGroup(v.Target)}, entry)
		}
		w.logger.Debug("Merged privacy customer prop.", "slug", slug, "position", v.Position.String(), "added", out.Has(slug))
	}
	return out
}

// PrivacyCustomerValue returns the export value of prop when it is a
// registered customer field. Choice fields export their option label.
func (w *Weaver) PrivacyCustomerValue(prop string, meta MetaReader) (string, bool) {
	filter := registry.ForTargets(customerTargets...).Shown(model.SurfacePrivacyCustomerExport)
	v, ok := w.reg.QueryVariations(filter, true).Get(prop)
	if !ok {
		return "", false
	}
	raw, _ := meta.Get(prop)
	return model.OptionLabel(v.FieldDefinition, raw), true
}

// PrivacyEraseCustomerProp deletes the customer meta behind prop when it is a
// registered billing or shipping field, regardless of export visibility.
func (w *Weaver) PrivacyEraseCustomerProp(prop string, meta MetaEraser) bool {
	if !w.reg.QueryVariations(registry.ForTargets(customerTargets...), true).Has(prop) {
		return false
	}
	meta.Delete(prop)
	w.logger.Debug("Erased customer meta.", "prop", prop)
	return true
}

// PrivacyOrderProps appends billing, shipping and order fields exported with
// order data to the export's prop => label list.
func (w *Weaver) PrivacyOrderProps(props *ordered.Map[string]) *ordered.Map[string] {
	out := props.Clone()
	filter := registry.ForTargets(orderTargets...).Shown(model.SurfacePrivacyOrderExport)

	for slug, v := range w.reg.QueryVariations(filter, true).All() {
		out.Set(slug, w.propLabelFor(v))
	}
	return out
}

// PrivacyOrderValue returns the export value of prop when it is a registered
// order field. Order meta is stored under "_<slug>".
func (w *Weaver) PrivacyOrderValue(prop string, meta MetaReader) (string, bool) {
	filter := registry.ForTargets(orderTargets...).Shown(model.SurfacePrivacyOrderExport)
	v, ok := w.reg.QueryVariations(filter, true).Get(prop)
	if !ok {
		return "", false
	}
	raw, _ := meta.Get(OrderMetaKey(prop))
	return model.OptionLabel(v.FieldDefinition, raw), true
}

// OrderMetaToRemove returns a copy of meta with every registered order meta
// key marked for anonymisation as "text".
func (w *Weaver) OrderMetaToRemove(meta map[string]string) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	for slug := range w.reg.QueryVariations(registry.ForTargets(orderTargets...), true).All() {
		out[OrderMetaKey(slug)] = "text"
	}
	return out
}

// OrderMetaKey returns the order meta key a slug is stored under.
func OrderMetaKey(slug string) string {
	return "_" + slug
}
