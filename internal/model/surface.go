// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Surface, the presentation surfaces a field can be shown
// on or hidden from.
package model

// Surface identifies one presentation surface.
type Surface int

const (
	SurfaceAddressForm Surface = iota
	SurfaceOrderForm
	SurfaceFormattedAddress
	SurfaceAdminUserForm
	SurfaceAdminOrderForm
	SurfacePrivacyCustomerExport
	SurfacePrivacyOrderExport
)

// Surfaces lists every surface in declaration order.
func Surfaces() []Surface {
	return []Surface{
		SurfaceAddressForm,
		SurfaceOrderForm,
		SurfaceFormattedAddress,
		SurfaceAdminUserForm,
		SurfaceAdminOrderForm,
		SurfacePrivacyCustomerExport,
		SurfacePrivacyOrderExport,
	}
}

// String returns the declaration attribute name of the surface flag.
func (s Surface) String() string {
	switch s {
	case SurfaceAddressForm:
		return "show_in_address_form"
	case SurfaceOrderForm:
		return "show_in_order_form"
	case SurfaceFormattedAddress:
		return "show_in_formatted_address"
	case SurfaceAdminUserForm:
		return "show_in_admin_user_form"
	case SurfaceAdminOrderForm:
		return "show_in_admin_order_form"
	case SurfacePrivacyCustomerExport:
		return "show_in_privacy_customer_data"
	case SurfacePrivacyOrderExport:
		return "show_in_privacy_order_data"
	default:
		return "unknown_surface"
	}
}

// SurfaceByName looks up a surface by its declaration attribute name.
func SurfaceByName(name string) (Surface, bool) {
	for _, s := range Surfaces() {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
