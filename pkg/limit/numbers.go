package limit

import (
	"fmt"
	"math"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// Range requires the answer to fall inside [min, max], inclusive. Reversed
// bounds are swapped.
func Range[N prompt.Number](p *prompt.Prompt[N], min, max N) *prompt.Prompt[N] {
	if min > max {
		min, max = max, min
	}
	p.AddValidator(func(v N) error {
		if v < min || v > max {
			return prompt.NewInputErrorf(prompt.KindOutOfRange, "must be between %v and %v", min, max)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyRange, hint.Bounds{Min: number(min), Max: number(max)})
}

// Min requires the answer to be at least min.
func Min[N prompt.Number](p *prompt.Prompt[N], min N) *prompt.Prompt[N] {
	p.AddValidator(func(v N) error {
		if v < min {
			return prompt.NewInputErrorf(prompt.KindOutOfRange, "must be at least %v", min)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyRange, hint.Bounds{Min: number(min)})
}

// Max requires the answer to be at most max.
func Max[N prompt.Number](p *prompt.Prompt[N], max N) *prompt.Prompt[N] {
	p.AddValidator(func(v N) error {
		if v > max {
			return prompt.NewInputErrorf(prompt.KindOutOfRange, "must be at most %v", max)
		}
		return nil
	})
	return p.AddHintKV(hint.KeyRange, hint.Bounds{Max: number(max)})
}

// NotInfinite rejects positive and negative infinity. Integer kinds always
// pass.
func NotInfinite[N prompt.Number](p *prompt.Prompt[N]) *prompt.Prompt[N] {
	p.AddValidator(func(v N) error {
		if math.IsInf(float64(v), 0) {
			return prompt.NewInputError(prompt.KindOutOfRange, "must not be infinite")
		}
		return nil
	})
	return p.AddHintKV(hint.KeyNotInfinite, nil)
}

// NotNaN rejects NaN. Integer kinds always pass.
func NotNaN[N prompt.Number](p *prompt.Prompt[N]) *prompt.Prompt[N] {
	p.AddValidator(func(v N) error {
		if math.IsNaN(float64(v)) {
			return prompt.NewInputError(prompt.KindOutOfRange, "must not be NaN")
		}
		return nil
	})
	return p.AddHintKV(hint.KeyNotNaN, nil)
}

// ForceFinite rejects infinity and NaN with a single validator and hint.
func ForceFinite[N prompt.Number](p *prompt.Prompt[N]) *prompt.Prompt[N] {
	p.AddValidator(prompt.FiniteValidator[N]())
	return p.AddHintKV(hint.KeyFinite, nil)
}

func number[N prompt.Number](v N) string {
	return fmt.Sprintf("%v", v)
}
