package addressformat

import (
	"maps"
	"slices"
	"strings"

	"github.com/specialistvlad/checkoutfields/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Replacements returns a copy of replace with "{name}" and "{name_upper}"
// entries for every field. Values come from args by field name; a field
// without a value gets empty strings for both so its placeholder vanishes.
func Replacements(replace, args map[string]string, fields []model.FieldDefinition) map[string]string {
	upper := cases.Upper(language.Und)

	out := make(map[string]string, len(replace)+2*len(fields))
	maps.Copy(out, replace)

	for _, field := range fields {
		value, ok := args[field.Name]
		if !ok {
			out["{"+field.Name+"}"] = ""
			out["{"+field.Name+"_upper}"] = ""
			continue
		}
		out["{"+field.Name+"}"] = value
		out["{"+field.Name+"_upper}"] = upper.String(value)
	}
	return out
}

// Format fills a template from a replacement table. Runs of spaces collapse,
// lines are trimmed and lines left empty are dropped, the way host address
// formatters do.
func Format(template string, replace map[string]string) string {
	keys := slices.Sorted(maps.Keys(replace))
	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, k, replace[k])
	}
	filled := strings.NewReplacer(oldnew...).Replace(template)

	var lines []string
	for _, line := range strings.Split(filled, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
