package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

func newSession() *prompt.Prompter {
	return prompt.NewPrompter(
		prompt.WithInput(strings.NewReader("")),
		prompt.WithOutput(&bytes.Buffer{}),
	)
}

func TestFormatPromptDisplayFourWays(t *testing.T) {
	session := newSession()
	hints := []hint.Hint{hint.New(hint.KeyAnnotation, "be honest")}

	cases := []struct {
		name  string
		text  string
		hints []hint.Hint
		want  string
	}{
		{"text and hints", "Name", hints, "Name (be honest): "},
		{"text only", "Name", nil, "Name: "},
		{"hints only", "", hints, "(be honest): "},
		{"neither", "", nil, "> "},
		{"blank text counts as absent", "   ", hints, "(be honest): "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := session.FormatPromptDisplay(tc.text, tc.hints); got != tc.want {
				t.Fatalf("FormatPromptDisplay = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatPromptDisplayJoinsHintsInOrder(t *testing.T) {
	session := newSession()
	hints := []hint.Hint{
		hint.New(hint.KeyType, "integer"),
		hint.New(hint.KeyRange, hint.Bounds{Min: "1", Max: "10"}),
		hint.New(hint.KeyNotEqual, 5),
	}

	want := "Pick (integer, 1..10, not 5): "
	if got := session.FormatPromptDisplay("Pick", hints); got != want {
		t.Fatalf("FormatPromptDisplay = %q, want %q", got, want)
	}
}

func TestFormatPromptDisplaySuppressedHintsPickBareTemplate(t *testing.T) {
	session := newSession()
	if err := session.SetFormatter("ghost", func(hint.Hint) (string, bool) { return "", false }); err != nil {
		t.Fatalf("SetFormatter: %v", err)
	}

	got := session.FormatPromptDisplay("Name", []hint.Hint{hint.New("ghost", nil)})
	if got != "Name: " {
		t.Fatalf("suppressed hints still influenced template: %q", got)
	}

	got = session.FormatPromptDisplay("", []hint.Hint{hint.New("ghost", nil)})
	if got != "> " {
		t.Fatalf("suppressed hints on null prompt: %q", got)
	}
}

func TestFormatPromptDisplayCustomTemplates(t *testing.T) {
	session := newSession()
	tpl := session.Templates()
	tpl.Prompt = "{0} [{1}] {0}? "
	tpl.HintSeparator = " | "
	session.SetTemplates(tpl)

	hints := []hint.Hint{
		hint.New(hint.KeyNotEmpty, nil),
		hint.New(hint.KeyNotBlank, nil),
	}
	want := "Q [not empty | not blank] Q? "
	if got := session.FormatPromptDisplay("Q", hints); got != want {
		t.Fatalf("custom template render = %q, want %q", got, want)
	}
}

func TestFormatInputError(t *testing.T) {
	session := newSession()

	got := session.FormatInputError(prompt.Reject("already taken"))
	if got != "Invalid input: already taken" {
		t.Fatalf("FormatInputError = %q", got)
	}
	if got := session.FormatInputError(nil); got != "" {
		t.Fatalf("FormatInputError(nil) = %q, want empty", got)
	}
}

func TestForPrependsTypeHint(t *testing.T) {
	session := newSession()

	p := prompt.For(session, "Count", prompt.NumberParser[int]())
	hints := p.Hints()
	if len(hints) != 1 || hints[0].Key() != hint.KeyType {
		t.Fatalf("hints = %v, want single type hint", hints)
	}
	if hints[0].Payload() != "integer" {
		t.Fatalf("type hint payload = %v, want integer", hints[0].Payload())
	}

	p.AddHintKV(hint.KeyRange, hint.Bounds{Min: "1", Max: "9"})
	keys := hintKeys(p.Hints())
	want := []string{hint.KeyType, hint.KeyRange}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("hint order mismatch (-want +got):\n%s", diff)
	}
}

func TestForHonoursAutoTypeHintToggle(t *testing.T) {
	session := newSession()
	session.SetAutoTypeHint(false)

	p := prompt.For(session, "Count", prompt.NumberParser[int]())
	if hints := p.Hints(); len(hints) != 0 {
		t.Fatalf("hints = %v, want none with auto type hint off", hints)
	}

	session2 := prompt.NewPrompter(
		prompt.WithInput(strings.NewReader("")),
		prompt.WithOutput(&bytes.Buffer{}),
		prompt.WithAutoTypeHint(false),
	)
	if hints := prompt.For(session2, "X", prompt.StringParser(false)).Hints(); len(hints) != 0 {
		t.Fatalf("option did not disable auto type hint: %v", hints)
	}
}

func TestPromptForBoolSwapsTypeHintForDefault(t *testing.T) {
	session := newSession()

	p := session.PromptForBool("Proceed", true)
	hints := p.Hints()
	if len(hints) != 1 {
		t.Fatalf("hints = %v, want single default-answer hint", hints)
	}
	if hints[0].Key() != hint.KeyBoolDefault || hints[0].Payload() != true {
		t.Fatalf("unexpected hint %v", hints[0])
	}

	if got := session.FormatPromptDisplay(p.Text(), hints); got != "Proceed (Y/n): " {
		t.Fatalf("bool prompt display = %q", got)
	}
}

func TestForNumberForceFinite(t *testing.T) {
	session := newSession()

	p := prompt.ForNumber[float64](session, "Ratio", true)
	keys := hintKeys(p.Hints())
	want := []string{hint.KeyType, hint.KeyFinite}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("hint keys mismatch (-want +got):\n%s", diff)
	}

	if _, err := p.ParseAndValidate("Inf"); err == nil {
		t.Fatal("Inf accepted by force-finite prompt")
	} else if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindOutOfRange {
		t.Fatalf("Inf rejection kind = %v", err)
	}
	if _, err := p.ParseAndValidate("NaN"); err == nil {
		t.Fatal("NaN accepted by force-finite prompt")
	}
	got, err := p.ParseAndValidate("2.5")
	if err != nil || got != 2.5 {
		t.Fatalf("finite value rejected: %v, %v", got, err)
	}

	relaxed := prompt.ForNumber[float64](session, "Ratio", false)
	if _, err := relaxed.ParseAndValidate("Inf"); err != nil {
		t.Fatalf("Inf rejected without force-finite: %v", err)
	}
}

func TestForParseableUsesSelfParsing(t *testing.T) {
	session := newSession()
	session.SetAutoTypeHint(false)

	p := prompt.ForParseable[namedColor](session, "Colour")
	got, err := p.ParseAndValidate("teal")
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if got.name != "teal" {
		t.Fatalf("parsed %+v", got)
	}
	if _, err := p.ParseAndValidate("!!"); err == nil {
		t.Fatal("invalid colour accepted")
	}
}

type namedColor struct {
	name string
}

func (c *namedColor) UnmarshalText(text []byte) error {
	if strings.ContainsAny(string(text), "!?") {
		return prompt.NewInputErrorf(prompt.KindMalformed, "%q is not a colour name", text)
	}
	c.name = string(text)
	return nil
}

func TestWithTierLimitsSessionFormatters(t *testing.T) {
	session := prompt.NewPrompter(
		prompt.WithInput(strings.NewReader("")),
		prompt.WithOutput(&bytes.Buffer{}),
		prompt.WithTier(hint.TierEssential),
	)

	if session.Registry().Has(hint.KeyRange) {
		t.Fatal("essential session registered range formatter")
	}
	if !session.Registry().Has(hint.KeyBoolDefault) {
		t.Fatal("essential session missing bool default formatter")
	}

	if err := session.ApplyTier(hint.TierAll); err != nil {
		t.Fatalf("ApplyTier: %v", err)
	}
	if !session.Registry().Has(hint.KeyRange) {
		t.Fatal("ApplyTier did not add range formatter")
	}
}

func TestSessionLocale(t *testing.T) {
	loc := prompt.Locale{DecimalSeparator: ',', TrueWords: []string{"oui"}}
	session := prompt.NewPrompter(
		prompt.WithInput(strings.NewReader("")),
		prompt.WithOutput(&bytes.Buffer{}),
		prompt.WithLocale(loc),
	)

	p := prompt.ForNumber[float64](session, "Prix", false)
	got, err := p.ParseAndValidate("9,95")
	if err != nil || got != 9.95 {
		t.Fatalf("locale-aware parse: %v, %v", got, err)
	}

	b := session.PromptForBool("Continuer", false)
	v, err := b.ParseAndValidate("OUI")
	if err != nil || !v {
		t.Fatalf("locale-aware bool parse: %v, %v", v, err)
	}
}

func hintKeys(hints []hint.Hint) []string {
	keys := make([]string, len(hints))
	for i, h := range hints {
		keys[i] = h.Key()
	}
	return keys
}
