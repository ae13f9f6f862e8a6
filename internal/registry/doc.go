// Package registry holds the field definitions woven into host forms.
//
// The Registry is populated once during application startup, either
// programmatically through Register or from definition files through
// LoadFieldsRecursively. It is append-only: definitions are never removed or
// reordered, and registration order is the order every query returns.
//
// After Seal the registry is immutable and may be shared by concurrent readers.
// Every query returns deep copies, so callers can extend results freely
// without affecting the registry.
package registry
