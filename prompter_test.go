package prompter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	prompter "github.com/goliatone/go-prompter"
	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/prompt"
	"github.com/goliatone/go-prompter/pkg/testsupport"
)

func TestNewWiresStreams(t *testing.T) {
	var out bytes.Buffer
	session := prompter.New(strings.NewReader("alice\n"), &out)

	v, err := prompter.AskString(session, "Name")
	if err != nil {
		t.Fatalf("ask string: %v", err)
	}
	if v != "alice" {
		t.Fatalf("answer = %q, want alice", v)
	}
	if out.String() != "Name (text): " {
		t.Fatalf("output = %q, want the typed prompt line", out.String())
	}
}

func TestAskHelpers(t *testing.T) {
	session, src, out := testsupport.Session(t, "7", "2.5", "", "nope", "n")

	n, err := prompter.AskInt(session, "Count")
	if err != nil || n != 7 {
		t.Fatalf("AskInt = %v, %v; want 7", n, err)
	}

	f, err := prompter.AskFloat(session, "Ratio")
	if err != nil || f != 2.5 {
		t.Fatalf("AskFloat = %v, %v; want 2.5", f, err)
	}

	b, err := prompter.AskBool(session, "Continue", true)
	if err != nil || !b {
		t.Fatalf("AskBool on empty input = %v, %v; want the default true", b, err)
	}

	b, err = prompter.AskBool(session, "Continue", true)
	if err != nil || b {
		t.Fatalf("AskBool = %v, %v; want false after one retry", b, err)
	}
	if !strings.Contains(out.String(), "Invalid input") {
		t.Fatalf("output %q lacks the retry message for %q", out.String(), "nope")
	}
	if rest := src.Remaining(); rest != nil {
		t.Fatalf("unread answers: %v", rest)
	}
}

func TestAskWithCustomParser(t *testing.T) {
	session, _, _ := testsupport.Session(t, "on")

	v, err := prompter.Ask(session, "Toggle", func(raw string, _ prompt.Locale) (string, error) {
		switch raw {
		case "on", "off":
			return raw, nil
		default:
			return "", prompt.NewInputError(prompt.KindMalformed, "must be on or off")
		}
	})
	if err != nil || v != "on" {
		t.Fatalf("Ask = %q, %v; want on", v, err)
	}
}

func TestStringBuilder(t *testing.T) {
	session, _, _ := testsupport.Session(t)

	b := prompter.String(session, "Username").
		LengthBetween(3, 12).
		NotBlank().
		Annotate("letters only")

	want := []string{hint.KeyType, hint.KeyLengthRange, hint.KeyNotBlank, hint.KeyAnnotation}
	got := make([]string, 0, len(want))
	for _, h := range b.Prompt().Hints() {
		got = append(got, h.Key())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hint keys mismatch (-want +got):\n%s", diff)
	}

	if _, err := b.Prompt().ParseAndValidate("ab"); err == nil {
		t.Fatal("two characters should fail the length constraint")
	}
	if v, err := b.Prompt().ParseAndValidate("  alice  "); err != nil || v != "alice" {
		t.Fatalf("ParseAndValidate = %q, %v; want trimmed alice", v, err)
	}
}

func TestRawStringKeepsWhitespace(t *testing.T) {
	session, _, _ := testsupport.Session(t, "  padded  ")

	v, err := prompter.RawString(session, "Exact").Ask()
	if err != nil || v != "  padded  " {
		t.Fatalf("raw answer = %q, %v; want the whitespace kept", v, err)
	}
}

func TestNumberBuilder(t *testing.T) {
	session, _, out := testsupport.Session(t, "0", "3")

	v, err := prompter.Number[int](session, "Port offset").
		Range(1, 9).
		NotEqual(5).
		Ask()
	if err != nil || v != 3 {
		t.Fatalf("Ask = %v, %v; want 3 after one retry", v, err)
	}
	if !strings.Contains(out.String(), "must be between 1 and 9") {
		t.Fatalf("output %q lacks the range retry message", out.String())
	}
}

func TestNumberBuilderFinite(t *testing.T) {
	session, _, _ := testsupport.Session(t)

	p := prompter.Number[float64](session, "Scale").Finite().Prompt()
	if _, err := p.ParseAndValidate("Inf"); err == nil {
		t.Fatal("infinity should be rejected")
	}
	if v, err := p.ParseAndValidate("1.5"); err != nil || v != 1.5 {
		t.Fatalf("ParseAndValidate = %v, %v; want 1.5", v, err)
	}
}

func TestBoolBuilderCheck(t *testing.T) {
	session, _, out := testsupport.Session(t, "n", "y")

	v, err := prompter.Bool(session, "Deploy", false).
		Check(func(v bool) error {
			if !v {
				return prompter.Reject("deploy is required here")
			}
			return nil
		}).
		Ask()
	if err != nil || !v {
		t.Fatalf("Ask = %v, %v; want true after one rejection", v, err)
	}
	if !strings.Contains(out.String(), "deploy is required here") {
		t.Fatalf("output %q lacks the rejection message", out.String())
	}
}

func TestKindReExports(t *testing.T) {
	err := prompt.NewInputError(prompt.KindOutOfRange, "too big")
	kind, ok := prompter.KindOf(err)
	if !ok || kind != prompter.KindOutOfRange {
		t.Fatalf("KindOf = %q, %v; want the out-of-range kind", kind, ok)
	}
	if !prompter.IsInputError(err) {
		t.Fatal("IsInputError should see the input error")
	}
	if prompter.ErrNoParser == nil {
		t.Fatal("ErrNoParser re-export missing")
	}
}
