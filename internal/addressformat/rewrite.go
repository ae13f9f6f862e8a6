package addressformat

import (
	"regexp"
	"strings"

	"github.com/specialistvlad/checkoutfields/internal/model"
	"github.com/specialistvlad/checkoutfields/internal/ordered"
)

// SearchFunc may replace the search pattern computed for a field in a country.
type SearchFunc func(pattern string, field model.FieldDefinition, country string) string

// ReplaceFunc may replace the replacement template computed for a field in a
// country. Templates use regexp.Expand syntax; ${1} is the matched token.
type ReplaceFunc func(replacement string, field model.FieldDefinition, country string) string

type options struct {
	search  SearchFunc
	replace ReplaceFunc
}

// Option configures Rewrite.
type Option func(*options)

// WithSearch installs a hook over the computed search pattern.
func WithSearch(fn SearchFunc) Option {
	return func(o *options) { o.search = fn }
}

// WithReplace installs a hook over the computed replacement template.
func WithReplace(fn ReplaceFunc) Option {
	return func(o *options) { o.replace = fn }
}

// Rewrite returns a copy of formats with a "{name}" placeholder for every
// field inserted into every country's template:
//
//   - Before(keys): in front of the first matching "{key}" token.
//   - After(keys): behind the first matching "{key}" token.
//   - First: at the start of the template.
//   - Last: at the end of the template.
//
// Tokens are matched case-insensitively against each key, "<key>_uppercase",
// and "name"/"name_uppercase" for first_name and last_name. The field's
// delimiter separates the placeholder from its neighbour. Fields are applied
// in order, so a later field may anchor on an earlier field's placeholder.
// A template without a matching token is left unchanged.
func Rewrite(formats *ordered.Map[string], fields []model.FieldDefinition, opts ...Option) *ordered.Map[string] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	out := formats.Clone()
	for _, field := range fields {
		search, replace := rule(field)
		for country, format := range out.All() {
			s, r := search, replace
			if o.search != nil {
				s = o.search(s, field, country)
			}
			if o.replace != nil {
				r = o.replace(r, field, country)
			}
			out.Set(country, replaceOnce(s, format, r))
		}
	}
	return out
}

// rule computes the search pattern and replacement template for a field.
func rule(field model.FieldDefinition) (search, replace string) {
	placeholder := escapeTemplate("{" + field.Name + "}")
	delimiter := escapeTemplate(field.FormattedAddressDelimiter)

	switch field.Position.Mode {
	case model.PositionBefore:
		return tokenPattern(field.Position.Keys), placeholder + delimiter + "{${1}}"
	case model.PositionAfter:
		return tokenPattern(field.Position.Keys), "{${1}}" + delimiter + placeholder
	case model.PositionFirst:
		return `(?s)\A(.*)\z`, placeholder + delimiter + "${1}"
	default:
		return `(?s)\A(.*)\z`, "${1}" + delimiter + placeholder
	}
}

// tokenPattern builds the alternation of template tokens a key may match.
func tokenPattern(keys []string) string {
	alts := make([]string, 0, len(keys)*4)
	for _, key := range keys {
		alts = append(alts, regexp.QuoteMeta(key), regexp.QuoteMeta(key+"_uppercase"))
		if key == "first_name" || key == "last_name" {
			alts = append(alts, "name", "name_uppercase")
		}
	}
	return `(?is)\{(` + strings.Join(alts, "|") + `)\}`
}

// replaceOnce replaces the first match of pattern in src. An invalid pattern
// leaves src unchanged.
func replaceOnce(pattern, src, template string) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return src
	}
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src
	}
	expanded := re.ExpandString(nil, template, src, loc)
	return src[:loc[0]] + string(expanded) + src[loc[1]:]
}

func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
