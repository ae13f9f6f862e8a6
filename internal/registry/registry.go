package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/checkoutfields/internal/model"
)

// Module is implemented by anything that contributes field definitions in Go
// code rather than through definition files.
type Module interface {
	Register(r *Registry)
}

// ModuleFunc adapts a plain function to the Module interface.
type ModuleFunc func(r *Registry)

// Register calls f(r).
func (f ModuleFunc) Register(r *Registry) { f(r) }

// Registry is the append-only store of field definitions.
type Registry struct {
	fields []model.FieldDefinition
	sealed bool
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register appends a deep copy of def. Registering into a sealed registry is
// a programming error and panics.
func (r *Registry) Register(def model.FieldDefinition) {
	if r.sealed {
		panic(fmt.Sprintf("field '%s' registered after the registry was sealed", def.Name))
	}
	slog.Debug("Registering field definition.", "name", def.Name, "targets", def.Targets, "position", def.Position.String(), "source", def.Source.String())
	r.fields = append(r.fields, def.Clone())
}

// Seal ends the registration phase.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.fields)
}
