// Package i18n provides translation lookups for the details view. Catalogs
// are YAML documents whose nested keys are flattened with ".", so
// `info: {request: ...}` is looked up as "info.request".
package i18n

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var builtin embed.FS

// FallbackLocale is used for keys missing from the selected locale.
var FallbackLocale = language.English

// Translator looks up translated strings. Exists never has side effects.
type Translator interface {
	Exists(key string) bool
	T(key string) string
}

// Catalog is a flattened set of messages for one locale.
type Catalog struct {
	locale   language.Tag
	messages map[string]string
}

// NewCatalog builds a catalog from already flattened messages.
func NewCatalog(locale language.Tag, messages map[string]string) *Catalog {
	m := make(map[string]string, len(messages))
	for k, v := range messages {
		m[k] = v
	}
	return &Catalog{locale: locale, messages: m}
}

// Locale returns the locale the catalog was resolved to.
func (c *Catalog) Locale() language.Tag {
	return c.locale
}

// Exists reports whether key has a translation.
func (c *Catalog) Exists(key string) bool {
	_, ok := c.messages[key]
	return ok
}

// T returns the translation for key, or key itself when it is missing.
func (c *Catalog) T(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}

// Keys returns all keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.messages))
	for k := range c.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load resolves locale against the built-in catalogs and any
// "<locale>.yaml" files in overrideDir, then merges, in order: the fallback
// catalog, the built-in catalog for the matched locale, and the override
// file for the matched locale. overrideDir may be empty or missing.
func Load(locale, overrideDir string) (*Catalog, error) {
	sources, err := discover(overrideDir)
	if err != nil {
		return nil, err
	}

	tags := make([]language.Tag, 0, len(sources))
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	// Fallback first so the matcher prefers it when nothing matches.
	sort.SliceStable(names, func(i, j int) bool {
		return names[i] == FallbackLocale.String() && names[j] != FallbackLocale.String()
	})
	for _, name := range names {
		tags = append(tags, language.Make(name))
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	_, idx, _ := language.NewMatcher(tags).Match(requested)
	chosen := names[idx]

	messages := map[string]string{}
	for _, name := range []string{FallbackLocale.String(), chosen} {
		src, ok := sources[name]
		if !ok {
			continue
		}
		for _, data := range src {
			flat, err := Parse(data)
			if err != nil {
				return nil, fmt.Errorf("parse catalog %s: %w", name, err)
			}
			for k, v := range flat {
				messages[k] = v
			}
		}
	}

	return &Catalog{locale: tags[idx], messages: messages}, nil
}

// discover returns catalog documents per locale name, built-ins before
// overrides.
func discover(overrideDir string) (map[string][][]byte, error) {
	sources := map[string][][]byte{}

	entries, err := builtin.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read built-in catalogs: %w", err)
	}
	for _, e := range entries {
		data, err := builtin.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read built-in catalog %s: %w", e.Name(), err)
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		sources[name] = append(sources[name], data)
	}

	if overrideDir == "" {
		return sources, nil
	}

	files, err := filepath.Glob(filepath.Join(overrideDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".yaml")
		if _, err := language.Parse(name); err != nil {
			continue
		}
		sources[name] = append(sources[name], data)
	}

	return sources, nil
}

// Parse decodes a YAML catalog and flattens nested keys with ".".
// Non-string scalars are formatted with fmt.
func Parse(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := map[string]string{}
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
			// empty values are treated as missing
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}
