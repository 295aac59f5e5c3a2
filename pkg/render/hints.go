package render

import (
	"github.com/goliatone/go-prompter/pkg/hint"
)

// HintFormatter adapts inline template content into a hint formatter. The
// template sees the hint as {{ key }} and {{ payload }}, with struct
// payloads exposed field by field. Render failures suppress the hint
// rather than leak template errors into prompt lines.
func HintFormatter(engine MessageRenderer, content string) hint.Formatter {
	return func(h hint.Hint) (string, bool) {
		text, err := engine.RenderString(content, hintContext(h))
		if err != nil {
			return "", false
		}
		return text, true
	}
}

// CatalogFormatter renders hints through per-locale templates looked up in
// a catalog. Keys the catalog does not cover fall through to next, so the
// usual wiring is registry.SetFallback(CatalogFormatter(...)) with next set
// to the formatter the registry used before.
func CatalogFormatter(engine MessageRenderer, catalog *Catalog, locale string, next hint.Formatter) hint.Formatter {
	return func(h hint.Hint) (string, bool) {
		content, ok := catalog.Lookup(locale, h.Key())
		if !ok {
			if next != nil {
				return next(h)
			}
			return "", false
		}
		text, err := engine.RenderString(content, hintContext(h))
		if err != nil {
			if next != nil {
				return next(h)
			}
			return "", false
		}
		return text, true
	}
}

func hintContext(h hint.Hint) map[string]any {
	return map[string]any{
		"key":     h.Key(),
		"payload": h.Payload(),
	}
}
