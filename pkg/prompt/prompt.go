package prompt

import (
	"strings"

	"github.com/goliatone/go-prompter/pkg/hint"
)

// Prompt is one configured request for a typed value: display text, ordered
// hints, a parser, and a validator chain, bound to the session that renders
// and reads for it. Configuration calls mutate and return the same instance,
// and nothing resets between Display calls, so a prompt can be reused with
// its accumulated state intact.
type Prompt[T any] struct {
	session    *Prompter
	text       string
	hints      []hint.Hint
	parser     ParseFunc[T]
	validators []func(T) error
}

// NewPrompt builds an unconfigured prompt bound to session. A nil session is
// replaced by a default stdin/stdout one on first use.
func NewPrompt[T any](session *Prompter) *Prompt[T] {
	return &Prompt[T]{session: session}
}

// SetPrompt sets the display text. Blank text means no prompt text, which
// switches rendering to the textless templates.
func (p *Prompt[T]) SetPrompt(text string) *Prompt[T] {
	p.text = strings.TrimSpace(text)
	return p
}

// Text returns the current display text, empty when none is set.
func (p *Prompt[T]) Text() string { return p.text }

// AddHint appends h to the hint list.
func (p *Prompt[T]) AddHint(h hint.Hint) *Prompt[T] {
	p.hints = append(p.hints, h)
	return p
}

// AddHintKV appends a hint built from key and payload.
func (p *Prompt[T]) AddHintKV(key string, payload any) *Prompt[T] {
	return p.AddHint(hint.New(key, payload))
}

// RemoveLastHint drops the most recently added hint, if any.
func (p *Prompt[T]) RemoveLastHint() *Prompt[T] {
	if len(p.hints) > 0 {
		p.hints = p.hints[:len(p.hints)-1]
	}
	return p
}

// RemoveAllHints clears the hint list.
func (p *Prompt[T]) RemoveAllHints() *Prompt[T] {
	p.hints = nil
	return p
}

// RemoveHintsMatching drops every hint pred reports true for.
func (p *Prompt[T]) RemoveHintsMatching(pred func(hint.Hint) bool) *Prompt[T] {
	if pred == nil || len(p.hints) == 0 {
		return p
	}
	kept := p.hints[:0]
	for _, h := range p.hints {
		if !pred(h) {
			kept = append(kept, h)
		}
	}
	p.hints = kept
	return p
}

// ReplaceHint swaps the first hint whose key matches for h, keeping its
// position. When no hint matches, h is appended instead.
func (p *Prompt[T]) ReplaceHint(key string, h hint.Hint) *Prompt[T] {
	for i := range p.hints {
		if p.hints[i].Key() == key {
			p.hints[i] = h
			return p
		}
	}
	return p.AddHint(h)
}

// Hints returns a copy of the current hint list in display order.
func (p *Prompt[T]) Hints() []hint.Hint {
	if len(p.hints) == 0 {
		return nil
	}
	out := make([]hint.Hint, len(p.hints))
	copy(out, p.hints)
	return out
}

// SetParser replaces the parsing function. Setting nil leaves the prompt
// misconfigured; the next Display or ParseAndValidate fails with ErrNoParser.
func (p *Prompt[T]) SetParser(fn ParseFunc[T]) *Prompt[T] {
	p.parser = fn
	return p
}

// AddValidator appends fn to the validation chain. Validators run in
// registration order after a successful parse; the first error stops the
// chain. Return an *InputError to have Display retry, any other error to
// abort the prompt.
func (p *Prompt[T]) AddValidator(fn func(T) error) *Prompt[T] {
	if fn != nil {
		p.validators = append(p.validators, fn)
	}
	return p
}

// Session returns the owning prompter, creating the default one if the
// prompt was built without a session.
func (p *Prompt[T]) Session() *Prompter {
	return p.ensureSession()
}

// ParseAndValidate runs the parser and then the full validator chain on raw.
// It performs no stream I/O and no error classification; callers see exactly
// what the parser or the failing validator returned.
func (p *Prompt[T]) ParseAndValidate(raw string) (T, error) {
	var zero T
	if p.parser == nil {
		return zero, ErrNoParser
	}
	v, err := p.parser(raw, p.ensureSession().Locale())
	if err != nil {
		return zero, err
	}
	for _, validate := range p.validators {
		if err := validate(v); err != nil {
			return zero, err
		}
	}
	return v, nil
}

// Display runs the interactive loop: write the rendered prompt, read one
// line, parse and validate. Retryable input errors are printed through the
// session's invalid-input template before asking again; everything else,
// including ErrNoParser, returns immediately. End of input reads as an empty
// answer, so an exhausted source does not end the loop by itself.
func (p *Prompt[T]) Display() (T, error) {
	var zero T
	if p.parser == nil {
		return zero, ErrNoParser
	}
	session := p.ensureSession()
	for {
		if err := session.writePrompt(p.text, p.hints); err != nil {
			return zero, err
		}
		line, err := session.readLine()
		if err != nil {
			return zero, err
		}
		v, err := p.ParseAndValidate(line)
		if err == nil {
			return v, nil
		}
		if !IsInputError(err) {
			return zero, err
		}
		session.logRetry(line, err)
		if werr := session.writeError(err); werr != nil {
			return zero, werr
		}
	}
}

func (p *Prompt[T]) ensureSession() *Prompter {
	if p.session == nil {
		p.session = NewPrompter()
	}
	return p.session
}
