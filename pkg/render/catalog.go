package render

import "strings"

// MissingHandler observes catalog lookups that found nothing, typically to
// log the gap while wording is still being translated.
type MissingHandler func(locale, key string)

// Catalog maps (locale, key) pairs to template content. Lookup walks from
// the exact locale to its base language to the unkeyed default, so "pt-BR"
// falls back to "pt" and then to entries added under the empty locale.
// Catalogs are built up front and safe for concurrent reads afterwards.
type Catalog struct {
	entries map[string]map[string]string
	missing MissingHandler
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]map[string]string)}
}

// Add stores template content for a locale and key, replacing any previous
// entry, and returns the catalog for chaining.
func (c *Catalog) Add(locale, key, content string) *Catalog {
	locale = normalizeLocale(locale)
	bucket, ok := c.entries[locale]
	if !ok {
		bucket = make(map[string]string)
		c.entries[locale] = bucket
	}
	bucket[key] = content
	return c
}

// OnMissing installs a handler called when Lookup exhausts the fallback
// chain without a match.
func (c *Catalog) OnMissing(fn MissingHandler) *Catalog {
	c.missing = fn
	return c
}

// Lookup resolves the template content for a key under the given locale.
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	for _, candidate := range fallbackChain(locale) {
		if bucket, ok := c.entries[candidate]; ok {
			if content, ok := bucket[key]; ok {
				return content, true
			}
		}
	}
	if c.missing != nil {
		c.missing(locale, key)
	}
	return "", false
}

func fallbackChain(locale string) []string {
	locale = normalizeLocale(locale)
	chain := []string{locale}
	if base, _, found := strings.Cut(locale, "-"); found && base != "" {
		chain = append(chain, base)
	}
	if locale != "" {
		chain = append(chain, "")
	}
	return chain
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(locale, "_", "-")))
}
