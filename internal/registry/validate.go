package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/checkoutfields/internal/ctxlog"
)

// knownTypes are the field types host forms render natively.
var knownTypes = map[string]struct{}{
	"text": {}, "textarea": {}, "password": {}, "email": {}, "tel": {},
	"number": {}, "date": {}, "hidden": {}, "checkbox": {}, "select": {},
	"radio": {}, "country": {}, "state": {},
}

// ValidateRegistry checks every definition for structural problems. Errors
// that would break placement are aggregated into one error; questionable but
// workable declarations are only logged.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	names := make(map[string]struct{}, len(r.fields))
	for _, def := range r.fields {
		names[def.Name] = struct{}{}
	}

	seenSlugs := make(map[string]string, len(r.fields))
	for i, def := range r.fields {
		where := fmt.Sprintf("field #%d '%s' (%s)", i, def.Name, def.Source)

		if strings.TrimSpace(def.Name) == "" {
			errs = append(errs, fmt.Sprintf("%s: name must not be empty", where))
			continue
		}
		if len(def.Targets) == 0 {
			errs = append(errs, fmt.Sprintf("%s: at least one target is required", where))
			continue
		}
		if def.Position.IsRelative() && len(def.Position.Keys) == 0 {
			errs = append(errs, fmt.Sprintf("%s: %s position without keys", where, def.Position.Mode))
		}

		if _, ok := knownTypes[def.Type]; !ok {
			logger.Warn("Field declares a type host forms may not render.", "field", def.Name, "type", def.Type)
		}
		if def.IsChoice() && def.Options.Len() == 0 {
			logger.Warn("Choice field declares no options.", "field", def.Name, "type", def.Type)
		}

		for _, t := range def.Targets {
			slug := t.Slug(def.Name)
			if prev, dup := seenSlugs[slug]; dup {
				logger.Warn("Duplicate field slug; the later definition wins in merged forms.", "slug", slug, "first", prev, "again", where)
				continue
			}
			seenSlugs[slug] = where
		}

		for _, key := range def.Position.Keys {
			if _, ok := names[key]; !ok {
				logger.Debug("Position key is not a registered field; assuming a stock form key.", "field", def.Name, "key", key)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "fields", len(r.fields))
	return nil
}
