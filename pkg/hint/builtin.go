package hint

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Tier names a bundle of built-in formatters. Applying a tier registers every
// formatter in the bundle, so callers opt into coarser or finer hint output
// without wiring keys one by one.
type Tier string

const (
	// TierEssential covers the hints a prompt is hard to use without:
	// annotations, the requested type, and the boolean default answer.
	TierEssential Tier = "essential"
	// TierCommon adds the string and numeric constraint hints.
	TierCommon Tier = "common"
	// TierAll adds the path and floating-point special cases on top.
	TierAll Tier = "all"
)

var tierKeys = map[Tier][]string{
	TierEssential: {
		KeyAnnotation, KeyType, KeyBoolDefault,
	},
	TierCommon: {
		KeyAnnotation, KeyType, KeyBoolDefault,
		KeyLength, KeyLengthRange, KeyNotEmpty, KeyNotBlank,
		KeyRange, KeyNotEqual,
	},
	TierAll: {
		KeyAnnotation, KeyType, KeyBoolDefault,
		KeyLength, KeyLengthRange, KeyNotEmpty, KeyNotBlank,
		KeyRange, KeyNotEqual,
		KeyPath, KeyFilePath, KeyDirPath,
		KeyFinite, KeyNotInfinite, KeyNotNaN,
	},
}

var builtin = map[string]Formatter{
	KeyAnnotation:  formatAnnotation,
	KeyType:        formatAnnotation,
	KeyBoolDefault: formatBoolDefault,
	KeyLength:      formatLength,
	KeyLengthRange: formatLengthRange,
	KeyNotEmpty:    staticText("not empty"),
	KeyNotBlank:    staticText("not blank"),
	KeyPath:        staticText("path"),
	KeyFilePath:    pathText("file path"),
	KeyDirPath:     pathText("directory path"),
	KeyRange:       formatRange,
	KeyFinite:      staticText("finite"),
	KeyNotInfinite: staticText("not infinite"),
	KeyNotNaN:      staticText("not NaN"),
	KeyNotEqual:    formatNotEqual,
}

// ApplyTier registers the tier's built-in formatters on r, replacing any
// formatter already present for the same keys.
func ApplyTier(r *Registry, tier Tier) error {
	keys, ok := tierKeys[tier]
	if !ok {
		return fmt.Errorf("hint: unknown tier %q", tier)
	}
	for _, key := range keys {
		if err := r.SetFormatter(key, builtin[key]); err != nil {
			return err
		}
	}
	return nil
}

// Builtin returns the stock formatter for one of the package's keys.
func Builtin(key string) (Formatter, bool) {
	fn, ok := builtin[key]
	return fn, ok
}

// DefaultRegistry returns a fresh registry with every built-in formatter
// registered. This is the registry new prompter sessions start from.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := ApplyTier(r, TierAll); err != nil {
		panic(err)
	}
	return r
}

// DebugFormatter renders the raw key/payload pair. It is the default fallback
// so hints with unregistered keys stay visible instead of vanishing silently.
func DebugFormatter(h Hint) (string, bool) {
	if h.Payload() == nil {
		return h.Key(), true
	}
	return fmt.Sprintf("%s=%s", h.Key(), strings.TrimSpace(spew.Sprintf("%#v", h.Payload()))), true
}

func formatAnnotation(h Hint) (string, bool) {
	switch v := h.Payload().(type) {
	case nil:
		return "", false
	case string:
		return v, true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func formatBoolDefault(h Hint) (string, bool) {
	def, ok := h.Payload().(bool)
	if !ok {
		return "", false
	}
	if def {
		return "Y/n", true
	}
	return "y/N", true
}

func formatLength(h Hint) (string, bool) {
	n, ok := h.Payload().(int)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("length %d", n), true
}

func formatLengthRange(h Hint) (string, bool) {
	b, ok := h.Payload().(LengthBounds)
	if !ok {
		return "", false
	}
	switch {
	case !b.Bounded && b.Min <= 0:
		return "", false
	case !b.Bounded:
		return fmt.Sprintf("length >= %d", b.Min), true
	case b.Min <= 0:
		return fmt.Sprintf("length <= %d", b.Max), true
	case b.Min == b.Max:
		return fmt.Sprintf("length %d", b.Min), true
	default:
		return fmt.Sprintf("length %d..%d", b.Min, b.Max), true
	}
}

func formatRange(h Hint) (string, bool) {
	b, ok := h.Payload().(Bounds)
	if !ok {
		return "", false
	}
	switch {
	case b.Min == "" && b.Max == "":
		return "", false
	case b.Max == "":
		return ">= " + b.Min, true
	case b.Min == "":
		return "<= " + b.Max, true
	default:
		return b.Min + ".." + b.Max, true
	}
}

func formatNotEqual(h Hint) (string, bool) {
	if h.Payload() == nil {
		return "", false
	}
	return fmt.Sprintf("not %v", h.Payload()), true
}

func staticText(text string) Formatter {
	return func(Hint) (string, bool) {
		return text, true
	}
}

func pathText(base string) Formatter {
	return func(h Hint) (string, bool) {
		if d, ok := h.Payload().(PathDetail); ok && d.Exists {
			return "existing " + base, true
		}
		return base, true
	}
}
