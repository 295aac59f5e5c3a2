package limit

import (
	"strings"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// Length requires the answer to be exactly n characters long.
func Length(p *prompt.Prompt[string], n int) *prompt.Prompt[string] {
	p.AddValidator(func(s string) error {
		if len(s) != n {
			return prompt.NewInputErrorf(prompt.KindWrongLength, "must be exactly %d characters", n)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyLength, n)
}

// LengthBetween requires the answer's length to fall inside [min, max],
// inclusive. Reversed bounds are swapped. With min and max equal this is the
// exact-length constraint, and a [0, 0] range means empty input only.
func LengthBetween(p *prompt.Prompt[string], min, max int) *prompt.Prompt[string] {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return Length(p, min)
	}
	p.AddValidator(func(s string) error {
		if len(s) < min || len(s) > max {
			return prompt.NewInputErrorf(prompt.KindWrongLength, "must be %d to %d characters", min, max)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyLengthRange, hint.LengthBounds{Min: min, Max: max, Bounded: true})
}

// MinLength requires at least min characters. A zero or negative bound
// constrains nothing and leaves the prompt untouched.
func MinLength(p *prompt.Prompt[string], min int) *prompt.Prompt[string] {
	if min <= 0 {
		return p
	}
	p.AddValidator(func(s string) error {
		if len(s) < min {
			return prompt.NewInputErrorf(prompt.KindWrongLength, "must be at least %d characters", min)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyLengthRange, hint.LengthBounds{Min: min})
}

// MaxLength requires at most max characters.
func MaxLength(p *prompt.Prompt[string], max int) *prompt.Prompt[string] {
	if max < 0 {
		max = 0
	}
	p.AddValidator(func(s string) error {
		if len(s) > max {
			return prompt.NewInputErrorf(prompt.KindWrongLength, "must be at most %d characters", max)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyLengthRange, hint.LengthBounds{Max: max, Bounded: true})
}

// NotEmpty rejects empty answers.
func NotEmpty(p *prompt.Prompt[string]) *prompt.Prompt[string] {
	p.AddValidator(func(s string) error {
		if s == "" {
			return prompt.NewInputError(prompt.KindInvalidArgument, "must not be empty")
		}
		return nil
	})
	return p.AddHintKV(hint.KeyNotEmpty, nil)
}

// NotBlank rejects empty and whitespace-only answers.
func NotBlank(p *prompt.Prompt[string]) *prompt.Prompt[string] {
	p.AddValidator(func(s string) error {
		if strings.TrimSpace(s) == "" {
			return prompt.NewInputError(prompt.KindInvalidArgument, "must not be blank")
		}
		return nil
	})
	return p.AddHintKV(hint.KeyNotBlank, nil)
}
