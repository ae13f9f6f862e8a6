package addressformat

import (
	"testing"

	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestReplacements(t *testing.T) {
	t.Parallel()
	replace := map[string]string{"{city}": "Wien"}
	args := map[string]string{"vat_id": "atu123", "title": "straße"}
	fields := []model.FieldDefinition{model.NewField("vat_id"), model.NewField("title"), model.NewField("missing")}

	got := Replacements(replace, args, fields)
	assert.Equal(t, map[string]string{
		"{city}":          "Wien",
		"{vat_id}":        "atu123",
		"{vat_id_upper}":  "ATU123",
		"{title}":         "straße",
		"{title_upper}":   "STRASSE",
		"{missing}":       "",
		"{missing_upper}": "",
	}, got)
	assert.Len(t, replace, 1, "input is not modified")
}

func TestFormat(t *testing.T) {
	t.Parallel()
	template := "{company}\n{vat_id}\n{first_name}  {last_name}\n{city}"
	got := Format(template, map[string]string{
		"{company}":    "",
		"{vat_id}":     "ATU123",
		"{first_name}": "Ada",
		"{last_name}":  "Lovelace",
		"{city}":       "Wien",
	})
	assert.Equal(t, "ATU123\nAda Lovelace\nWien", got)
}
