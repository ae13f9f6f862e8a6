package weave

import (
	"github.com/specialistvlad/checkoutfields/internal/form"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/placement"
	"github.com/specialistvlad/checkoutfields/internal/registry"
)

// AddOrderFields merges order-target fields shown in the order form into the
// checkout groups. Each variation's priority is resolved against its group as
// it stands at that point, so later fields see earlier ones.
func (w *Weaver) AddOrderFields(groups *form.Groups) *form.Groups {
	out := cloneGroups(groups)
	filter := registry.ForTargets(model.TargetOrder).Shown(model.SurfaceOrderForm)

	for slug, v := range w.reg.QueryVariations(filter, true).All() {
		group, ok := out.Get(string(v.Target))
		if !ok {
			group = form.NewFields()
			out.Set(string(v.Target), group)
		}

		priority := placement.ResolvePriority(v.Position, v.Target, group)
		cfg, keep := w.fieldArgs(model.SurfaceOrderForm, form.Merge(v.OrderFieldConfig, formConfig(v, priority)), v, "")
		if !keep {
			continue
		}
		group.Set(slug, cfg)
		w.logger.Debug("Merged order field.", "slug", slug, "position", v.Position.String(), "priority", priority)
	}
	return out
}

// AddAddressFields merges fields of target shown in address forms into an
// edit-address form.
func (w *Weaver) AddAddressFields(target model.Target, fields *form.Fields, country string) *form.Fields {
	out := fields.Clone()
	filter := registry.ForTargets(target).Shown(model.SurfaceAddressForm)

	for slug, v := range w.reg.QueryVariations(filter, true).All() {
		priority := placement.ResolvePriority(v.Position, v.Target, out)
		cfg, keep := w.fieldArgs(model.SurfaceAddressForm, form.Merge(v.AddressFieldConfig, formConfig(v, priority)), v, country)
		if !keep {
			continue
		}
		out.Set(slug, cfg)
		w.logger.Debug("Merged address field.", "slug", slug, "country", country, "position", v.Position.String(), "priority", priority)
	}
	return out
}

// CaptureGuestCheckout copies submitted values of order-form fields into the
// guest session. Logged-in customers are skipped; their values are stored by
// the host.
func (w *Weaver) CaptureGuestCheckout(loggedIn bool, data map[string]string, s Session) {
	if loggedIn {
		return
	}
	filter := registry.Filter{}.Shown(model.SurfaceOrderForm)
	for slug := range w.reg.QueryVariations(filter, true).All() {
		raw, ok := data[slug]
		if !ok {
			continue
		}
		s.Set(slug, Sanitize(raw))
	}
}

// GuestCheckoutValue returns the value to prefill input with. A non-nil value
// or a logged-in customer wins; otherwise registered order-form slugs are
// read from the guest session. nil means no value.
func (w *Weaver) GuestCheckoutValue(value *string, loggedIn bool, input string, s Session) *string {
	if value != nil || loggedIn {
		return value
	}
	filter := registry.Filter{}.Shown(model.SurfaceOrderForm)
	if !w.reg.QueryVariations(filter, true).Has(input) {
		return value
	}
	stored, ok := s.Get(input)
	if !ok {
		return nil
	}
	return &stored
}

func cloneGroups(groups *form.Groups) *form.Groups {
	out := form.NewGroups()
	for target, fields := range groups.All() {
		out.Set(target, fields.Clone())
	}
	return out
}
