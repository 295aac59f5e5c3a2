// Package prompter is the single-import surface of the toolkit: session
// construction, typed ask helpers, and fluent builders that bundle the
// constraint library. Everything here delegates to pkg/prompt, pkg/limit,
// and pkg/hint; import those directly for the full API.
package prompter

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/limit"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// Prompter is an interactive session; alias exported via the root package
// for convenience.
type Prompter = prompt.Prompter

// Option configures a session during construction.
type Option = prompt.Option

// Templates holds the session display format strings.
type Templates = prompt.Templates

// LineSource yields one line of user input per call.
type LineSource = prompt.LineSource

// Locale carries the input conventions handed to parsers.
type Locale = prompt.Locale

// Hint is one tagged constraint descriptor shown next to a prompt.
type Hint = hint.Hint

// Registry maps hint keys to their formatters.
type Registry = hint.Registry

// New builds a session reading from in and writing to out. Nil streams keep
// the stdin/stdout defaults.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	base := []Option{prompt.WithInput(in), prompt.WithOutput(out)}
	return prompt.NewPrompter(append(base, opts...)...)
}

// NewStdio builds a session over the process terminal.
func NewStdio(opts ...Option) *Prompter {
	return prompt.NewPrompter(opts...)
}

// WithSource reads answers from an existing line source, such as one of the
// pkg/drivers adapters.
func WithSource(src LineSource) Option { return prompt.WithSource(src) }

// WithTemplates replaces the whole template set.
func WithTemplates(t Templates) Option { return prompt.WithTemplates(t) }

// WithAutoTypeHint controls whether factories prepend a requested-type hint.
func WithAutoTypeHint(enabled bool) Option { return prompt.WithAutoTypeHint(enabled) }

// WithLocale sets the input conventions handed to parsers.
func WithLocale(loc Locale) Option { return prompt.WithLocale(loc) }

// WithRegistry hands the session an existing formatter registry.
func WithRegistry(reg *Registry) Option { return prompt.WithRegistry(reg) }

// WithLogger enables debug traces of retries and reads.
func WithLogger(l *slog.Logger) Option { return prompt.WithLogger(l) }

// DefaultTemplates returns the stock console formats.
func DefaultTemplates() Templates { return prompt.DefaultTemplates() }

// Ask builds a prompt from parser and runs its display loop.
func Ask[T any](session *Prompter, text string, parser prompt.ParseFunc[T]) (T, error) {
	return prompt.For(session, text, parser).Display()
}

// AskString displays a text prompt and returns the trimmed answer.
func AskString(session *Prompter, text string) (string, error) {
	return session.PromptForString(text, true).Display()
}

// AskBool displays a yes/no prompt answering def on empty input.
func AskBool(session *Prompter, text string, def bool) (bool, error) {
	return session.PromptForBool(text, def).Display()
}

// AskInt displays an integer prompt.
func AskInt(session *Prompter, text string) (int64, error) {
	return prompt.ForNumber[int64](session, text, false).Display()
}

// AskFloat displays a floating-point prompt rejecting Inf and NaN.
func AskFloat(session *Prompter, text string) (float64, error) {
	return prompt.ForNumber[float64](session, text, true).Display()
}

// StringBuilder chains text constraints onto one prompt before asking.
type StringBuilder struct {
	p *prompt.Prompt[string]
}

// String starts a fluent text prompt with whitespace trimming on.
func String(session *Prompter, text string) *StringBuilder {
	return &StringBuilder{p: session.PromptForString(text, true)}
}

// RawString starts a fluent text prompt returning answers exactly as typed.
func RawString(session *Prompter, text string) *StringBuilder {
	return &StringBuilder{p: session.PromptForString(text, false)}
}

// Length requires exactly n characters.
func (b *StringBuilder) Length(n int) *StringBuilder {
	limit.Length(b.p, n)
	return b
}

// LengthBetween requires the answer's length to fall inside [min, max].
func (b *StringBuilder) LengthBetween(min, max int) *StringBuilder {
	limit.LengthBetween(b.p, min, max)
	return b
}

// MinLength requires at least min characters.
func (b *StringBuilder) MinLength(min int) *StringBuilder {
	limit.MinLength(b.p, min)
	return b
}

// MaxLength requires at most max characters.
func (b *StringBuilder) MaxLength(max int) *StringBuilder {
	limit.MaxLength(b.p, max)
	return b
}

// NotEmpty rejects empty answers.
func (b *StringBuilder) NotEmpty() *StringBuilder {
	limit.NotEmpty(b.p)
	return b
}

// NotBlank rejects empty and whitespace-only answers.
func (b *StringBuilder) NotBlank() *StringBuilder {
	limit.NotBlank(b.p)
	return b
}

// Path requires a syntactically usable filesystem path.
func (b *StringBuilder) Path() *StringBuilder {
	limit.Path(b.p)
	return b
}

// FilePath requires the answer to name a file, present when mustExist is set.
func (b *StringBuilder) FilePath(mustExist bool) *StringBuilder {
	limit.FilePath(b.p, mustExist)
	return b
}

// DirPath requires the answer to name a directory, present when mustExist is
// set.
func (b *StringBuilder) DirPath(mustExist bool) *StringBuilder {
	limit.DirPath(b.p, mustExist)
	return b
}

// Annotate adds a free-text hint.
func (b *StringBuilder) Annotate(note string) *StringBuilder {
	b.p.AddHintKV(hint.KeyAnnotation, note)
	return b
}

// Check appends a custom validator. Return Reject(...) to retry with a
// message, any other error to abort.
func (b *StringBuilder) Check(fn func(string) error) *StringBuilder {
	b.p.AddValidator(fn)
	return b
}

// Prompt exposes the underlying prompt for configuration the builder does
// not cover.
func (b *StringBuilder) Prompt() *prompt.Prompt[string] { return b.p }

// Ask runs the display loop.
func (b *StringBuilder) Ask() (string, error) { return b.p.Display() }

// NumberBuilder chains numeric constraints onto one prompt before asking.
type NumberBuilder[N prompt.Number] struct {
	p *prompt.Prompt[N]
}

// Number starts a fluent numeric prompt for any integer or float kind.
func Number[N prompt.Number](session *Prompter, text string) *NumberBuilder[N] {
	return &NumberBuilder[N]{p: prompt.ForNumber[N](session, text, false)}
}

// Range requires the answer to fall inside [min, max].
func (b *NumberBuilder[N]) Range(min, max N) *NumberBuilder[N] {
	limit.Range(b.p, min, max)
	return b
}

// Min requires the answer to be at least min.
func (b *NumberBuilder[N]) Min(min N) *NumberBuilder[N] {
	limit.Min(b.p, min)
	return b
}

// Max requires the answer to be at most max.
func (b *NumberBuilder[N]) Max(max N) *NumberBuilder[N] {
	limit.Max(b.p, max)
	return b
}

// NotEqual rejects one specific value.
func (b *NumberBuilder[N]) NotEqual(excluded N) *NumberBuilder[N] {
	limit.NotEqual(b.p, excluded)
	return b
}

// Finite rejects Inf and NaN.
func (b *NumberBuilder[N]) Finite() *NumberBuilder[N] {
	limit.ForceFinite(b.p)
	return b
}

// Annotate adds a free-text hint.
func (b *NumberBuilder[N]) Annotate(note string) *NumberBuilder[N] {
	b.p.AddHintKV(hint.KeyAnnotation, note)
	return b
}

// Check appends a custom validator.
func (b *NumberBuilder[N]) Check(fn func(N) error) *NumberBuilder[N] {
	b.p.AddValidator(fn)
	return b
}

// Prompt exposes the underlying prompt.
func (b *NumberBuilder[N]) Prompt() *prompt.Prompt[N] { return b.p }

// Ask runs the display loop.
func (b *NumberBuilder[N]) Ask() (N, error) { return b.p.Display() }

// BoolBuilder configures a yes/no prompt before asking.
type BoolBuilder struct {
	p *prompt.Prompt[bool]
}

// Bool starts a fluent yes/no prompt answering def on empty input.
func Bool(session *Prompter, text string, def bool) *BoolBuilder {
	return &BoolBuilder{p: session.PromptForBool(text, def)}
}

// Annotate adds a free-text hint.
func (b *BoolBuilder) Annotate(note string) *BoolBuilder {
	b.p.AddHintKV(hint.KeyAnnotation, note)
	return b
}

// Check appends a custom validator.
func (b *BoolBuilder) Check(fn func(bool) error) *BoolBuilder {
	b.p.AddValidator(fn)
	return b
}

// Prompt exposes the underlying prompt.
func (b *BoolBuilder) Prompt() *prompt.Prompt[bool] { return b.p }

// Ask runs the display loop.
func (b *BoolBuilder) Ask() (bool, error) { return b.p.Display() }
