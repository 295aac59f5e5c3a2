package timezones

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// Parser resolves raw input to the canonical zone name, case-insensitively.
// Unknown zones come back as retryable input errors listing up to
// opts.Suggestions close matches.
func Parser(zones []string, opts Options) prompt.ParseFunc[string] {
	canonical := make(map[string]string, len(zones))
	for _, zone := range zones {
		canonical[strings.ToLower(zone)] = zone
	}

	return func(raw string, _ prompt.Locale) (string, error) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", prompt.NewInputError(prompt.KindMalformed, "time zone is required")
		}
		if zone, ok := canonical[strings.ToLower(trimmed)]; ok {
			return zone, nil
		}

		msg := fmt.Sprintf("unknown time zone %q", trimmed)
		if opts.Suggestions > 0 {
			if matches := Search(zones, trimmed, opts.Suggestions, opts); len(matches) > 0 {
				msg += ", close matches: " + strings.Join(matches, ", ")
			}
		}
		return "", prompt.NewInputError(prompt.KindInvalidArgument, msg)
	}
}

// Prompt builds a zone prompt on session. The zone list comes from
// WithZones when given, falling back to the embedded default list.
func Prompt(session *prompt.Prompter, text string, fns ...OptionFn) (*prompt.Prompt[string], error) {
	opts := NewOptions(fns...)

	zones := opts.Zones
	if zones == nil {
		var err error
		zones, err = DefaultZones()
		if err != nil {
			return nil, fmt.Errorf("timezones: load default zones: %w", err)
		}
	}

	p := prompt.For(session, text, Parser(zones, opts))
	p.ReplaceHint(hint.KeyType, hint.New(hint.KeyAnnotation, "IANA time zone"))
	return p, nil
}
