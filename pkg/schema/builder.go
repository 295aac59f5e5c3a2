package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/limit"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// Schema type names as they appear in OpenAPI documents.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Builder instantiates prompts on a Prompter from OpenAPI schemas.
type Builder struct {
	prompter *prompt.Prompter
	finite   bool
	describe bool
}

// Option mutates a Builder during construction.
type Option func(*Builder)

// WithFiniteNumbers controls whether number prompts reject infinities and
// NaN. Enabled by default; schema bounds never describe non-finite values.
func WithFiniteNumbers(enabled bool) Option {
	return func(b *Builder) {
		b.finite = enabled
	}
}

// WithDescriptions controls whether schema descriptions surface as
// annotation hints. Enabled by default.
func WithDescriptions(enabled bool) Option {
	return func(b *Builder) {
		b.describe = enabled
	}
}

// NewBuilder binds a Builder to the Prompter that will own the prompts.
func NewBuilder(p *prompt.Prompter, opts ...Option) *Builder {
	b := &Builder{
		prompter: p,
		finite:   true,
		describe: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// TypeOf reports the schema's declared type. Multi-type schemas report the
// first declared type; nil or untyped schemas report the empty string.
func TypeOf(s *openapi3.Schema) string {
	if s == nil || s.Type == nil {
		return ""
	}
	values := s.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// StringPrompt builds a free-text prompt constrained by the schema's
// length bounds, pattern, and enum. Input is trimmed before parsing.
func (b *Builder) StringPrompt(name string, s *openapi3.Schema) (*prompt.Prompt[string], error) {
	p := b.prompter.PromptForString(promptText(name, s), true)
	if s == nil {
		return p, nil
	}

	annotate(b, p, s)
	applyLengthBounds(p, s)
	if err := applyPattern(p, s); err != nil {
		return nil, fmt.Errorf("schema: compile pattern for %s: %w", name, err)
	}
	if values := stringEnum(s.Enum); len(values) > 0 {
		applyMembership(p, values, values)
	}
	if def, ok := s.Default.(string); ok && def != "" {
		p.AddHintKV(hint.KeyAnnotation, "default "+def)
	}
	return p, nil
}

// IntPrompt builds an integer prompt constrained by the schema's numeric
// bounds and enum. Fractional bounds are tightened to the nearest integer.
func (b *Builder) IntPrompt(name string, s *openapi3.Schema) (*prompt.Prompt[int64], error) {
	p := prompt.ForNumber[int64](b.prompter, promptText(name, s), false)
	if s == nil {
		return p, nil
	}

	annotate(b, p, s)
	applyIntBounds(p, s)
	if values := intEnum(s.Enum); len(values) > 0 {
		applyMembership(p, values, formatValues(values))
	}
	if def, ok := asInt64(s.Default); ok {
		p.AddHintKV(hint.KeyAnnotation, fmt.Sprintf("default %d", def))
	}
	return p, nil
}

// FloatPrompt builds a floating-point prompt constrained by the schema's
// numeric bounds and enum.
func (b *Builder) FloatPrompt(name string, s *openapi3.Schema) (*prompt.Prompt[float64], error) {
	p := prompt.ForNumber[float64](b.prompter, promptText(name, s), b.finite)
	if s == nil {
		return p, nil
	}

	annotate(b, p, s)
	applyFloatBounds(p, s)
	if values := floatEnum(s.Enum); len(values) > 0 {
		applyMembership(p, values, formatValues(values))
	}
	if def, ok := asFloat64(s.Default); ok {
		p.AddHintKV(hint.KeyAnnotation, fmt.Sprintf("default %v", def))
	}
	return p, nil
}

// BoolPrompt builds a yes/no prompt. The schema default selects the answer
// an empty line resolves to.
func (b *Builder) BoolPrompt(name string, s *openapi3.Schema) (*prompt.Prompt[bool], error) {
	def := false
	if s != nil {
		if v, ok := s.Default.(bool); ok {
			def = v
		}
	}
	p := b.prompter.PromptForBool(promptText(name, s), def)
	if s != nil {
		annotate(b, p, s)
	}
	return p, nil
}

func annotate[T any](b *Builder, p *prompt.Prompt[T], s *openapi3.Schema) {
	if !b.describe || s.Description == "" {
		return
	}
	p.AddHintKV(hint.KeyAnnotation, s.Description)
}

func promptText(name string, s *openapi3.Schema) string {
	if s != nil && s.Title != "" {
		return s.Title
	}
	return name
}

func applyLengthBounds(p *prompt.Prompt[string], s *openapi3.Schema) {
	minLen := int(s.MinLength)
	switch {
	case s.MaxLength != nil:
		limit.LengthBetween(p, minLen, int(*s.MaxLength))
	case minLen > 0:
		limit.MinLength(p, minLen)
	}
}

func applyPattern(p *prompt.Prompt[string], s *openapi3.Schema) error {
	if s.Pattern == "" {
		return nil
	}
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return err
	}
	p.AddValidator(func(v string) error {
		if !re.MatchString(v) {
			return prompt.NewInputErrorf(prompt.KindInvalidArgument, "must match pattern %s", re.String())
		}
		return nil
	})
	p.AddHintKV(hint.KeyAnnotation, "matches "+re.String())
	return nil
}

func applyIntBounds(p *prompt.Prompt[int64], s *openapi3.Schema) {
	lo, hasLo := intBound(s.Min, math.Ceil)
	hi, hasHi := intBound(s.Max, math.Floor)
	switch {
	case hasLo && hasHi:
		limit.Range(p, lo, hi)
	case hasLo:
		limit.Min(p, lo)
	case hasHi:
		limit.Max(p, hi)
	}
	// Exclusive fractional bounds are already tightened by the rounding
	// above; only integral bounds still need the endpoint excluded.
	if hasLo && s.ExclusiveMin && integral(*s.Min) {
		limit.NotEqual(p, lo)
	}
	if hasHi && s.ExclusiveMax && integral(*s.Max) {
		limit.NotEqual(p, hi)
	}
}

func applyFloatBounds(p *prompt.Prompt[float64], s *openapi3.Schema) {
	switch {
	case s.Min != nil && s.Max != nil:
		limit.Range(p, *s.Min, *s.Max)
	case s.Min != nil:
		limit.Min(p, *s.Min)
	case s.Max != nil:
		limit.Max(p, *s.Max)
	}
	if s.Min != nil && s.ExclusiveMin {
		limit.NotEqual(p, *s.Min)
	}
	if s.Max != nil && s.ExclusiveMax {
		limit.NotEqual(p, *s.Max)
	}
}

func applyMembership[T comparable](p *prompt.Prompt[T], values []T, display []string) {
	allowed := strings.Join(display, ", ")
	p.AddValidator(func(v T) error {
		for _, candidate := range values {
			if v == candidate {
				return nil
			}
		}
		return prompt.NewInputErrorf(prompt.KindInvalidArgument, "must be one of %s", allowed)
	})
	p.AddHintKV(hint.KeyAnnotation, "one of "+allowed)
}

func intBound(v *float64, round func(float64) float64) (int64, bool) {
	if v == nil {
		return 0, false
	}
	return int64(round(*v)), true
}

func integral(v float64) bool {
	return math.Trunc(v) == v
}

func stringEnum(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intEnum(values []any) []int64 {
	out := make([]int64, 0, len(values))
	for _, v := range values {
		if n, ok := asInt64(v); ok {
			out = append(out, n)
		}
	}
	return out
}

func floatEnum(values []any) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if n, ok := asFloat64(v); ok {
			out = append(out, n)
		}
	}
	return out
}

// asInt64 accepts the numeric shapes kin-openapi produces when decoding
// documents plus the plain integer types used when schemas are built in
// code. Non-integral floats are rejected.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if !integral(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatValues[T any](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprintf("%v", v))
	}
	return out
}
