package style

import (
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-prompter/pkg/prompt"
)

// Template keys a theme manifest may set. Values are display templates with
// the positional slots pkg/prompt documents for each format.
const (
	KeyPrompt         = "prompt.with-hints"
	KeyPromptBare     = "prompt.bare"
	KeyNullPrompt     = "prompt.null-with-hints"
	KeyNullPromptBare = "prompt.null-bare"
	KeyInvalidInput   = "prompt.invalid"
	KeyHintSeparator  = "prompt.separator"
)

// Style is a resolved theme: complete display templates plus the merged
// token table. Tokens carry console styling values, typically ANSI
// sequences, keyed by purpose.
type Style struct {
	Theme     string
	Variant   string
	Templates prompt.Templates
	Tokens    map[string]string
}

// Resolve selects a theme through any theme.ThemeSelector and merges the
// selection into a Style.
func Resolve(selector theme.ThemeSelector, name, variant string) (Style, error) {
	if selector == nil {
		return Style{}, errors.New("style: selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Style{}, err
	}
	return FromSelection(selection)
}

// FromSelection merges a theme selection into a Style. Manifest templates
// override the defaults, variant templates override the manifest, and the
// same layering applies to tokens. Keys a theme never mentions keep their
// stock values.
func FromSelection(selection *theme.Selection) (Style, error) {
	if selection == nil || selection.Manifest == nil {
		return Style{}, errors.New("style: selection has no manifest")
	}
	manifest := selection.Manifest

	templates := prompt.DefaultTemplates()
	applyTemplates(&templates, manifest.Templates)

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}

	if selection.Variant != "" {
		variant, ok := manifest.Variants[selection.Variant]
		if !ok {
			return Style{}, fmt.Errorf("style: theme %q has no variant %q", selection.Theme, selection.Variant)
		}
		applyTemplates(&templates, variant.Templates)
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	return Style{
		Theme:     selection.Theme,
		Variant:   selection.Variant,
		Templates: templates,
		Tokens:    tokens,
	}, nil
}

// Apply installs the style's templates on a session.
func (s Style) Apply(session *prompt.Prompter) {
	if session == nil {
		return
	}
	session.SetTemplates(s.Templates)
}

// Token returns a styling token's value, or the empty string when the
// theme does not define it.
func (s Style) Token(name string) string {
	return s.Tokens[name]
}

func applyTemplates(dst *prompt.Templates, overrides map[string]string) {
	if len(overrides) == 0 {
		return
	}
	if v, ok := overrides[KeyPrompt]; ok {
		dst.Prompt = v
	}
	if v, ok := overrides[KeyPromptBare]; ok {
		dst.PromptBare = v
	}
	if v, ok := overrides[KeyNullPrompt]; ok {
		dst.NullPrompt = v
	}
	if v, ok := overrides[KeyNullPromptBare]; ok {
		dst.NullPromptBare = v
	}
	if v, ok := overrides[KeyInvalidInput]; ok {
		dst.InvalidInput = v
	}
	if v, ok := overrides[KeyHintSeparator]; ok {
		dst.HintSeparator = v
	}
}
