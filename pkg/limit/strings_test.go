package limit_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/limit"
	"github.com/goliatone/go-prompter/pkg/prompt"
	"github.com/goliatone/go-prompter/pkg/testsupport"
)

func stringPrompt(t *testing.T) *prompt.Prompt[string] {
	t.Helper()
	session, _, _ := testsupport.Session(t)
	session.SetAutoTypeHint(false)
	return session.PromptForString("S", false)
}

func accepts[T any](t *testing.T, p *prompt.Prompt[T], raw string) bool {
	t.Helper()
	_, err := p.ParseAndValidate(raw)
	if err != nil && !prompt.IsInputError(err) {
		t.Fatalf("non-retryable error from constraint: %v", err)
	}
	return err == nil
}

func TestLengthExact(t *testing.T) {
	p := limit.Length(stringPrompt(t), 3)

	if !accepts(t, p, "abc") {
		t.Fatal("exact length rejected")
	}
	for _, s := range []string{"", "ab", "abcd"} {
		if accepts(t, p, s) {
			t.Fatalf("wrong length %q accepted", s)
		}
	}

	_, err := p.ParseAndValidate("ab")
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindWrongLength {
		t.Fatalf("error kind = %v, want wrong-length", err)
	}

	hints := p.Hints()
	if len(hints) != 1 || hints[0].Key() != hint.KeyLength {
		t.Fatalf("hints = %v, want single length hint", hints)
	}
}

func TestLengthBetweenBoundsInclusive(t *testing.T) {
	p := limit.LengthBetween(stringPrompt(t), 2, 4)

	for _, s := range []string{"ab", "abc", "abcd"} {
		if !accepts(t, p, s) {
			t.Fatalf("in-range %q rejected", s)
		}
	}
	for _, s := range []string{"a", "abcde"} {
		if accepts(t, p, s) {
			t.Fatalf("out-of-range %q accepted", s)
		}
	}
}

func TestLengthBetweenSwapsReversedBounds(t *testing.T) {
	forward := limit.LengthBetween(stringPrompt(t), 2, 4)
	reversed := limit.LengthBetween(stringPrompt(t), 4, 2)

	samples := []string{"", "a", "ab", "abc", "abcd", "abcde"}
	var fw, rv []bool
	for _, s := range samples {
		fw = append(fw, accepts(t, forward, s))
		rv = append(rv, accepts(t, reversed, s))
	}
	if diff := cmp.Diff(fw, rv); diff != "" {
		t.Fatalf("reversed bounds accept a different set (-forward +reversed):\n%s", diff)
	}
}

func TestLengthBetweenDegeneratesToExact(t *testing.T) {
	ranged := limit.LengthBetween(stringPrompt(t), 3, 3)
	exact := limit.Length(stringPrompt(t), 3)

	samples := []string{"", "ab", "abc", "abcd"}
	for _, s := range samples {
		if accepts(t, ranged, s) != accepts(t, exact, s) {
			t.Fatalf("degenerate range and exact disagree on %q", s)
		}
	}

	// the degenerate range advertises itself as an exact length
	hints := ranged.Hints()
	if len(hints) != 1 || hints[0].Key() != hint.KeyLength {
		t.Fatalf("hints = %v, want exact length hint", hints)
	}
}

func TestMinLengthZeroIsNoOp(t *testing.T) {
	p := limit.MinLength(stringPrompt(t), 0)

	if len(p.Hints()) != 0 {
		t.Fatalf("no-op constraint added hints: %v", p.Hints())
	}
	for _, s := range []string{"", "anything at all"} {
		if !accepts(t, p, s) {
			t.Fatalf("no-op constraint rejected %q", s)
		}
	}
}

func TestMinAndMaxLength(t *testing.T) {
	longEnough := limit.MinLength(stringPrompt(t), 3)
	if accepts(t, longEnough, "ab") || !accepts(t, longEnough, "abc") {
		t.Fatal("min length misbehaves at the boundary")
	}

	shortEnough := limit.MaxLength(stringPrompt(t), 3)
	if !accepts(t, shortEnough, "abc") || accepts(t, shortEnough, "abcd") {
		t.Fatal("max length misbehaves at the boundary")
	}
	if !accepts(t, shortEnough, "") {
		t.Fatal("max length rejected empty input")
	}
}

func TestNotEmpty(t *testing.T) {
	p := limit.NotEmpty(stringPrompt(t))

	if accepts(t, p, "") {
		t.Fatal("empty input accepted")
	}
	if !accepts(t, p, "  ") {
		t.Fatal("whitespace rejected by not-empty")
	}
	if !accepts(t, p, "x") {
		t.Fatal("non-empty input rejected")
	}
}

func TestNotBlank(t *testing.T) {
	p := limit.NotBlank(stringPrompt(t))

	for _, s := range []string{"", "   ", "\t\n"} {
		if accepts(t, p, s) {
			t.Fatalf("blank input %q accepted", s)
		}
	}
	if !accepts(t, p, " x ") {
		t.Fatal("non-blank input rejected")
	}
}

func TestConstraintsCompose(t *testing.T) {
	p := stringPrompt(t)
	limit.NotBlank(limit.LengthBetween(p, 2, 8))

	if accepts(t, p, "        ") {
		t.Fatal("blank but in-length input accepted")
	}
	if accepts(t, p, "x") {
		t.Fatal("short input accepted")
	}
	if !accepts(t, p, "hello") {
		t.Fatal("valid input rejected")
	}

	// first failing validator reports, in registration order
	_, err := p.ParseAndValidate("x")
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindWrongLength {
		t.Fatalf("error kind = %v, want wrong-length from the first validator", err)
	}
}

func TestCustomValidatorErrorsPassThrough(t *testing.T) {
	p := stringPrompt(t)
	fatal := errors.New("lookup failed")
	p.AddValidator(func(string) error { return fatal })

	_, err := p.ParseAndValidate("anything")
	if !errors.Is(err, fatal) {
		t.Fatalf("error = %v, want the validator's own error", err)
	}
	if prompt.IsInputError(err) {
		t.Fatal("plain error misclassified as retryable")
	}
}
