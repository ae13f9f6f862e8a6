package weave

import (
	"maps"

	"github.com/specialistvlad/checkoutfields/internal/addressformat"
	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
	"github.com/specialistvlad/checkoutfields/internal/registry"
)

// FormattedCustomerAddress adds the values of target's fields shown in
// formatted addresses to a customer's address args. Values are read from
// customer meta by slug.
func (w *Weaver) FormattedCustomerAddress(target model.Target, address map[string]string, meta MetaReader) map[string]string {
	return w.formattedAddress(target, address, meta, func(slug string) string { return slug })
}

// FormattedOrderAddress adds the values of target's fields shown in formatted
// addresses to an order's address args. Values are read from order meta.
func (w *Weaver) FormattedOrderAddress(target model.Target, address map[string]string, meta MetaReader) map[string]string {
	return w.formattedAddress(target, address, meta, OrderMetaKey)
}

func (w *Weaver) formattedAddress(target model.Target, address map[string]string, meta MetaReader, metaKey func(string) string) map[string]string {
	out := maps.Clone(address)
	if out == nil {
		out = make(map[string]string)
	}
	filter := registry.ForTargets(target).Shown(model.SurfaceFormattedAddress)

	for slug, v := range w.reg.QueryVariations(filter, true).All() {
		raw, _ := meta.Get(metaKey(slug))
		value := model.OptionLabel(v.FieldDefinition, raw)
		if value == "" {
			continue
		}
		if v.ShowFormattedAddressLabel {
			value = v.Label + ": " + value
		}
		out[v.Name] = value
	}
	return out
}

// formattedAddressFields are the definitions shown in formatted addresses.
func (w *Weaver) formattedAddressFields() []model.FieldDefinition {
	return w.reg.Query(registry.Filter{}.Shown(model.SurfaceFormattedAddress))
}

// LocalisationFormats adds field placeholders to every country's address
// template.
func (w *Weaver) LocalisationFormats(formats *ordered.Map[string]) *ordered.Map[string] {
	return addressformat.Rewrite(formats, w.formattedAddressFields(), w.formatOptions...)
}

// AddressReplacements fills the placeholders added by LocalisationFormats
// from the address args.
func (w *Weaver) AddressReplacements(replace, args map[string]string) map[string]string {
	return addressformat.Replacements(replace, args, w.formattedAddressFields())
}
