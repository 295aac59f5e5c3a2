package prompt

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/goliatone/go-prompter/pkg/hint"
)

// Prompter is the interactive session: it owns the borrowed line source and
// output writer plus every piece of presentation policy, and it is the
// factory prompts are built through. Sessions are cheap; callers typically
// keep one per conversation and mutate its templates or formatters between
// prompts. A Prompter is not safe for concurrent use.
type Prompter struct {
	source       LineSource
	out          io.Writer
	templates    Templates
	registry     *hint.Registry
	locale       Locale
	autoTypeHint bool
	logger       *slog.Logger
}

// Option configures a Prompter during construction.
type Option func(*Prompter)

// WithInput reads user answers from r through a fresh line source.
func WithInput(r io.Reader) Option {
	return func(p *Prompter) {
		if r != nil {
			p.source = NewReaderSource(r)
		}
	}
}

// WithSource reads user answers from an existing line source, such as one of
// the terminal drivers.
func WithSource(src LineSource) Option {
	return func(p *Prompter) {
		if src != nil {
			p.source = src
		}
	}
}

// WithOutput writes prompts and retry messages to w.
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		if w != nil {
			p.out = w
		}
	}
}

// WithTemplates replaces the whole template set. Start from
// DefaultTemplates when only some formats should change.
func WithTemplates(t Templates) Option {
	return func(p *Prompter) {
		p.templates = t
	}
}

// WithRegistry hands the session an existing formatter registry. The session
// uses it as-is; clone first to keep the original untouched.
func WithRegistry(reg *hint.Registry) Option {
	return func(p *Prompter) {
		if reg != nil {
			p.registry = reg
		}
	}
}

// WithTier starts the session from a fresh registry carrying only the given
// built-in tier. Panics on an unknown tier name.
func WithTier(tier hint.Tier) Option {
	return func(p *Prompter) {
		reg := hint.NewRegistry()
		if err := hint.ApplyTier(reg, tier); err != nil {
			panic(err)
		}
		p.registry = reg
	}
}

// WithLocale sets the input conventions handed to parsers.
func WithLocale(loc Locale) Option {
	return func(p *Prompter) {
		p.locale = loc
	}
}

// WithAutoTypeHint controls whether factories prepend a requested-type hint.
func WithAutoTypeHint(enabled bool) Option {
	return func(p *Prompter) {
		p.autoTypeHint = enabled
	}
}

// WithLogger enables debug traces of retries and reads. Nil keeps the
// session silent.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prompter) {
		p.logger = l
	}
}

// NewPrompter builds a session over stdin/stdout with default templates, the
// full built-in formatter set, and automatic type hints enabled.
func NewPrompter(opts ...Option) *Prompter {
	p := &Prompter{
		source:       NewReaderSource(os.Stdin),
		out:          os.Stdout,
		templates:    DefaultTemplates(),
		registry:     hint.DefaultRegistry(),
		autoTypeHint: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// SetInput redirects answers to come from r.
func (pr *Prompter) SetInput(r io.Reader) {
	if r != nil {
		pr.source = NewReaderSource(r)
	}
}

// SetSource redirects answers to come from src.
func (pr *Prompter) SetSource(src LineSource) {
	if src != nil {
		pr.source = src
	}
}

// SetOutput redirects prompt and retry output to w.
func (pr *Prompter) SetOutput(w io.Writer) {
	if w != nil {
		pr.out = w
	}
}

// Templates returns the current template set.
func (pr *Prompter) Templates() Templates { return pr.templates }

// SetTemplates replaces the template set.
func (pr *Prompter) SetTemplates(t Templates) { pr.templates = t }

// Locale returns the session locale handed to parsers.
func (pr *Prompter) Locale() Locale { return pr.locale }

// SetLocale replaces the session locale.
func (pr *Prompter) SetLocale(loc Locale) { pr.locale = loc }

// AutoTypeHint reports whether factories prepend a requested-type hint.
func (pr *Prompter) AutoTypeHint() bool { return pr.autoTypeHint }

// SetAutoTypeHint toggles automatic type hints for later factory calls.
func (pr *Prompter) SetAutoTypeHint(enabled bool) { pr.autoTypeHint = enabled }

// Registry exposes the session's formatter registry.
func (pr *Prompter) Registry() *hint.Registry { return pr.registry }

// SetFormatter registers or replaces the session formatter for key.
func (pr *Prompter) SetFormatter(key string, fn hint.Formatter) error {
	return pr.registry.SetFormatter(key, fn)
}

// SetFallbackFormatter replaces the session handler for unregistered keys.
func (pr *Prompter) SetFallbackFormatter(fn hint.Formatter) error {
	return pr.registry.SetFallback(fn)
}

// ApplyTier registers a built-in formatter tier on the session registry.
func (pr *Prompter) ApplyTier(tier hint.Tier) error {
	return hint.ApplyTier(pr.registry, tier)
}

// RenderHints formats hints through the session registry, in order, with
// suppressed and blank results dropped.
func (pr *Prompter) RenderHints(hints []hint.Hint) []string {
	return pr.registry.Render(hints)
}

// FormatPromptDisplay renders the line shown before reading an answer. The
// template is chosen by what is actually present: text, hints, both, or
// neither. Hints that render to nothing count as absent.
func (pr *Prompter) FormatPromptDisplay(text string, hints []hint.Hint) string {
	rendered := pr.registry.Render(hints)
	hasText := strings.TrimSpace(text) != ""
	switch {
	case hasText && len(rendered) > 0:
		return expandSlots(pr.templates.Prompt, text, strings.Join(rendered, pr.templates.HintSeparator))
	case hasText:
		return expandSlots(pr.templates.PromptBare, text)
	case len(rendered) > 0:
		return expandSlots(pr.templates.NullPrompt, strings.Join(rendered, pr.templates.HintSeparator))
	default:
		return pr.templates.NullPromptBare
	}
}

// FormatInputError renders the retry message for err.
func (pr *Prompter) FormatInputError(err error) string {
	if err == nil {
		return ""
	}
	return expandSlots(pr.templates.InvalidInput, err.Error())
}

// PromptForString builds a text prompt. With trim set the answer is
// whitespace-trimmed, otherwise it is returned exactly as typed.
func (pr *Prompter) PromptForString(text string, trim bool) *Prompt[string] {
	return For(pr, text, StringParser(trim))
}

// PromptForBool builds a yes/no prompt answering def on empty input. The
// default-answer hint replaces the automatic type hint, which would only
// repeat what Y/n already says.
func (pr *Prompter) PromptForBool(text string, def bool) *Prompt[bool] {
	p := For(pr, text, BoolParser(def))
	p.RemoveHintsMatching(func(h hint.Hint) bool { return h.Key() == hint.KeyType })
	return p.AddHintKV(hint.KeyBoolDefault, def)
}

// For builds a prompt for any type given its parser. When the session has
// automatic type hints enabled, the prompt starts with a requested-type hint
// ahead of anything constraints add later.
func For[T any](session *Prompter, text string, parser ParseFunc[T]) *Prompt[T] {
	p := NewPrompt[T](session).SetPrompt(text).SetParser(parser)
	if p.ensureSession().autoTypeHint {
		p.AddHintKV(hint.KeyType, TypeName[T]())
	}
	return p
}

// ForParseable builds a prompt for a self-parsing type, one whose pointer
// implements encoding.TextUnmarshaler.
func ForParseable[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](session *Prompter, text string) *Prompt[T] {
	return For(session, text, TextParser[T, PT]())
}

// ForNumber builds a numeric prompt. With forceFinite set, Inf and NaN are
// rejected by a validator and the finite hint is shown.
func ForNumber[N Number](session *Prompter, text string, forceFinite bool) *Prompt[N] {
	p := For(session, text, NumberParser[N]())
	if forceFinite {
		p.AddValidator(FiniteValidator[N]())
		p.AddHintKV(hint.KeyFinite, nil)
	}
	return p
}

// FiniteValidator rejects NaN and infinite values with retryable errors.
func FiniteValidator[N Number]() func(N) error {
	return func(v N) error {
		f := float64(v)
		if math.IsNaN(f) {
			return NewInputError(KindOutOfRange, "must not be NaN")
		}
		if math.IsInf(f, 0) {
			return NewInputError(KindOutOfRange, "must be finite")
		}
		return nil
	}
}

func (pr *Prompter) writePrompt(text string, hints []hint.Hint) error {
	display := pr.FormatPromptDisplay(text, hints)
	if _, err := io.WriteString(pr.out, display); err != nil {
		return fmt.Errorf("prompt: write prompt: %w", err)
	}
	return nil
}

// readLine maps an exhausted source to an empty answer so Display keeps its
// loop; only genuine read faults surface as errors.
func (pr *Prompter) readLine() (string, error) {
	line, err := pr.source.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", fmt.Errorf("prompt: read input: %w", err)
	}
	return line, nil
}

func (pr *Prompter) writeError(err error) error {
	if _, werr := fmt.Fprintln(pr.out, pr.FormatInputError(err)); werr != nil {
		return fmt.Errorf("prompt: write retry message: %w", werr)
	}
	return nil
}

func (pr *Prompter) logRetry(line string, err error) {
	if pr.logger != nil {
		pr.logger.Debug("prompt retry", "input", line, "error", err)
	}
}
