package addressformat

import (
	"testing"

	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
	"github.com/stretchr/testify/assert"
)

const deTemplate = "{company}\n{name}\n{address_1}\n{postcode} {city}\n{country}"

func formats(pairs ...string) *ordered.Map[string] {
	out := ordered.New[string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		out.Set(pairs[i], pairs[i+1])
	}
	return out
}

func rewriteOne(template string, fields ...model.FieldDefinition) string {
	got := Rewrite(formats("DE", template), fields)
	v, _ := got.Get("DE")
	return v
}

func TestRewrite_Positions(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		field model.FieldDefinition
		want  string
	}{
		{
			name:  "after",
			field: model.NewField("vat_id", model.WithPosition(model.After("company"))),
			want:  "{company}\n{vat_id}\n{name}\n{address_1}\n{postcode} {city}\n{country}",
		},
		{
			name:  "before first_name matches name",
			field: model.NewField("title", model.WithPosition(model.Before("first_name")), model.WithDelimiter(" ")),
			want:  "{company}\n{title} {name}\n{address_1}\n{postcode} {city}\n{country}",
		},
		{
			name:  "first",
			field: model.NewField("ref", model.WithPosition(model.First())),
			want:  "{ref}\n" + deTemplate,
		},
		{
			name:  "last",
			field: model.NewField("note"),
			want:  deTemplate + "\n{note}",
		},
		{
			name:  "no match leaves template unchanged",
			field: model.NewField("x", model.WithPosition(model.After("state"))),
			want:  deTemplate,
		},
		{
			name:  "first key alternative that matches wins by position",
			field: model.NewField("x", model.WithPosition(model.Before("city", "company")), model.WithDelimiter(" ")),
			want:  "{x} {company}\n{name}\n{address_1}\n{postcode} {city}\n{country}",
		},
		{
			name:  "dollar in delimiter is literal",
			field: model.NewField("x", model.WithPosition(model.After("city")), model.WithDelimiter(" $1 ")),
			want:  "{company}\n{name}\n{address_1}\n{postcode} {city} $1 {x}\n{country}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rewriteOne(deTemplate, tc.field))
		})
	}
}

func TestRewrite_TokenVariants(t *testing.T) {
	t.Parallel()
	field := model.NewField("x", model.WithPosition(model.After("last_name")), model.WithDelimiter(" "))

	assert.Equal(t, "{first_name} {LAST_NAME_UPPERCASE} {x}", rewriteOne("{first_name} {LAST_NAME_UPPERCASE}", field))
	assert.Equal(t, "{name_uppercase} {x}", rewriteOne("{name_uppercase}", field))

	meta := model.NewField("y", model.WithPosition(model.After("a.b")))
	assert.Equal(t, "{axb}", rewriteOne("{axb}", meta), "keys are matched literally")
}

func TestRewrite_ChainsAndCountries(t *testing.T) {
	t.Parallel()
	in := formats("default", "{company}\n{city}", "US", "{city}")
	fields := []model.FieldDefinition{
		model.NewField("vat_id", model.WithPosition(model.After("company"))),
		model.NewField("tax_office", model.WithPosition(model.After("vat_id")), model.WithDelimiter(", ")),
	}

	got := Rewrite(in, fields)
	assert.Equal(t, []string{"default", "US"}, got.Keys())

	def, _ := got.Get("default")
	assert.Equal(t, "{company}\n{vat_id}, {tax_office}\n{city}", def)
	us, _ := got.Get("US")
	assert.Equal(t, "{city}", us)

	orig, _ := in.Get("default")
	assert.Equal(t, "{company}\n{city}", orig, "input is not modified")
}

func TestRewrite_Hooks(t *testing.T) {
	t.Parallel()
	field := model.NewField("vat_id", model.WithPosition(model.After("company")))

	var seen []string
	got := Rewrite(formats("DE", deTemplate, "AT", deTemplate), []model.FieldDefinition{field},
		WithSearch(func(pattern string, f model.FieldDefinition, country string) string {
			seen = append(seen, country)
			if country == "AT" {
				return `\{(country)\}`
			}
			return pattern
		}),
		WithReplace(func(replacement string, f model.FieldDefinition, country string) string {
			if country == "AT" {
				return "{${1}} ({" + f.Name + "})"
			}
			return replacement
		}),
	)

	assert.Equal(t, []string{"DE", "AT"}, seen)
	at, _ := got.Get("AT")
	assert.Equal(t, "{company}\n{name}\n{address_1}\n{postcode} {city}\n{country} ({vat_id})", at)
}

func TestRewrite_InvalidHookPatternIsIgnored(t *testing.T) {
	t.Parallel()
	got := Rewrite(formats("DE", deTemplate), []model.FieldDefinition{model.NewField("x")},
		WithSearch(func(string, model.FieldDefinition, string) string { return "(" }))
	v, _ := got.Get("DE")
	assert.Equal(t, deTemplate, v)
}
