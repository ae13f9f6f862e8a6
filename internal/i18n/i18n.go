// Package i18n translates the few host-visible words the field weaver adds
// to labels, such as the "Billing" prefix of privacy export properties.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/specialistvlad/checkoutfields/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	defaultCatalog, supportedTags = mustLoad(localeFS)
	tagMatcher                    = language.NewMatcher(supportedTags)
)

// targetWords maps targets to their message keys.
var targetWords = map[model.Target]string{
	model.TargetBilling:  "Billing",
	model.TargetShipping: "Shipping",
	model.TargetOrder:    "Order",
}

// Labels renders translated words for one language.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
}

// Default returns the fallback language.
func Default() language.Tag {
	return language.English
}

// Supported returns the languages with a catalog, English first.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// NewLabels returns labels for the best supported match of lang. Unknown or
// malformed tags fall back to English.
func NewLabels(lang string) Labels {
	tag := Default()
	if parsed, err := language.Parse(strings.TrimSpace(lang)); err == nil {
		_, idx, conf := tagMatcher.Match(parsed)
		if conf != language.No {
			tag = supportedTags[idx]
		}
	}
	return Labels{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(defaultCatalog)),
	}
}

// Tag returns the resolved language.
func (l Labels) Tag() language.Tag {
	return l.tag
}

// Target returns the translated word for a known target, or the target
// itself.
func (l Labels) Target(t model.Target) string {
	key, ok := targetWords[t]
	if !ok {
		return string(t)
	}
	return l.sprint(key)
}

// Prefix prepends the translated target word to label. Labels of targets
// without a word are returned unchanged.
func (l Labels) Prefix(t model.Target, label string) string {
	key, ok := targetWords[t]
	if !ok {
		return label
	}
	return l.sprint(key) + " " + label
}

func (l Labels) sprint(key string) string {
	if l.printer == nil {
		return key
	}
	return l.printer.Sprintf(key)
}

func mustLoad(fsys fs.FS) (*catalog.Builder, []language.Tag) {
	cat, tags, err := Load(fsys)
	if err != nil {
		panic(err)
	}
	return cat, tags
}

// Load builds a catalog from every locales/*.yaml file of fsys. English is
// always listed first so the matcher falls back to it.
func Load(fsys fs.FS) (*catalog.Builder, []language.Tag, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	cat := catalog.NewBuilder(catalog.Fallback(Default()))
	tags := []language.Tag{Default()}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("read locale %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("parse locale %s: %w", path, err)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, nil, fmt.Errorf("locale %s: invalid tag %q: %w", path, file.Locale, err)
		}
		for key, msg := range file.Messages {
			if err := cat.SetString(tag, key, msg); err != nil {
				return nil, nil, fmt.Errorf("locale %s: message %q: %w", path, key, err)
			}
		}
		if tag != Default() {
			tags = append(tags, tag)
		}
	}
	return cat, tags, nil
}
