package prompt

import (
	"strconv"
	"strings"
)

// Templates holds the session's display format strings. Slots are positional:
// {0} and {1} are replaced by the documented values for each template. A
// template is free to repeat a slot or omit it.
type Templates struct {
	// Prompt renders a prompt that has both text and hints.
	// {0} = prompt text, {1} = joined hint string.
	Prompt string
	// PromptBare renders a prompt with text but no hints. {0} = prompt text.
	PromptBare string
	// NullPrompt renders a textless prompt that still has hints.
	// {0} = joined hint string.
	NullPrompt string
	// NullPromptBare renders a prompt with neither text nor hints. No slots.
	NullPromptBare string
	// InvalidInput renders the retry message. {0} = error message.
	InvalidInput string
	// HintSeparator is placed between rendered hints.
	HintSeparator string
}

// DefaultTemplates returns the stock console formats.
func DefaultTemplates() Templates {
	return Templates{
		Prompt:         "{0} ({1}): ",
		PromptBare:     "{0}: ",
		NullPrompt:     "({0}): ",
		NullPromptBare: "> ",
		InvalidInput:   "Invalid input: {0}",
		HintSeparator:  ", ",
	}
}

func expandSlots(template string, args ...string) string {
	if len(args) == 0 {
		return template
	}
	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", arg)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
