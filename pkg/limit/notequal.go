package limit

import (
	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// NotEqual rejects one specific value.
func NotEqual[T comparable](p *prompt.Prompt[T], excluded T) *prompt.Prompt[T] {
	p.AddValidator(func(v T) error {
		if v == excluded {
			return prompt.NewInputErrorf(prompt.KindInvalidArgument, "must not be %v", excluded)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyNotEqual, excluded)
}
