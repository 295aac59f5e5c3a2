package prompt_test

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-prompter/pkg/prompt"
)

func TestStringParserTrimBehaviour(t *testing.T) {
	trimmed := prompt.StringParser(true)
	raw := prompt.StringParser(false)

	for _, s := range []string{"  padded  ", "plain", "", "\ttabs\t"} {
		got, err := trimmed(s, prompt.Locale{})
		if err != nil {
			t.Fatalf("trimmed parser errored on %q: %v", s, err)
		}
		if want := strings.TrimSpace(s); got != want {
			t.Fatalf("trimmed parser(%q) = %q, want %q", s, got, want)
		}

		got, err = raw(s, prompt.Locale{})
		if err != nil {
			t.Fatalf("raw parser errored on %q: %v", s, err)
		}
		if got != s {
			t.Fatalf("raw parser(%q) = %q, want input unchanged", s, got)
		}
	}
}

func TestBoolParserTable(t *testing.T) {
	cases := []struct {
		input   string
		def     bool
		want    bool
		wantErr bool
	}{
		{"", true, true, false},
		{"", false, false, false},
		{"   ", true, true, false},
		{"y", false, true, false},
		{"Y", false, true, false},
		{"t", false, true, false},
		{"T", false, true, false},
		{"1", false, true, false},
		{"n", true, false, false},
		{"N", true, false, false},
		{"f", true, false, false},
		{"F", true, false, false},
		{"0", true, false, false},
		{"true", false, true, false},
		{"TRUE", false, true, false},
		{"tRuE", false, true, false},
		{"false", true, false, false},
		{"False", true, false, false},
		{" y ", false, true, false},
		{"x", false, false, true},
		{"yeah", false, false, true},
		{"10", false, false, true},
	}

	for _, tc := range cases {
		t.Run(strconv.Quote(tc.input), func(t *testing.T) {
			got, err := prompt.BoolParser(tc.def)(tc.input, prompt.Locale{})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected parse failure for %q", tc.input)
				}
				if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindMalformed {
					t.Fatalf("error kind = %v, want malformed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("parse %q = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestBoolParserLocaleWords(t *testing.T) {
	loc := prompt.Locale{TrueWords: []string{"yes", "ja"}, FalseWords: []string{"no", "nein"}}

	got, err := prompt.BoolParser(false)("JA", loc)
	if err != nil || !got {
		t.Fatalf("locale true word: got %v, %v", got, err)
	}
	got, err = prompt.BoolParser(true)("nein", loc)
	if err != nil || got {
		t.Fatalf("locale false word: got %v, %v", got, err)
	}
}

func TestNumberParserIntRoundTrip(t *testing.T) {
	parser := prompt.NumberParser[int]()

	for _, s := range []string{"0", "-17", "123456", " 42 "} {
		got, err := parser(s, prompt.Locale{})
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		want, err := strconv.ParseInt(strings.TrimSpace(s), 10, 0)
		if err != nil {
			t.Fatalf("reference parse %q: %v", s, err)
		}
		if int64(got) != want {
			t.Fatalf("parse %q = %d, want %d", s, got, want)
		}
	}
}

func TestNumberParserIntFailures(t *testing.T) {
	parser := prompt.NumberParser[int]()

	for _, s := range []string{"abc", "5.5", "", "1e3"} {
		_, err := parser(s, prompt.Locale{})
		if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindMalformed {
			t.Fatalf("parse %q: got %v, want malformed input error", s, err)
		}
	}
}

func TestNumberParserSmallIntOverflow(t *testing.T) {
	parser := prompt.NumberParser[int8]()

	if got, err := parser("127", prompt.Locale{}); err != nil || got != 127 {
		t.Fatalf("parse 127: got %d, %v", got, err)
	}
	_, err := parser("300", prompt.Locale{})
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindOutOfRange {
		t.Fatalf("parse 300 into int8: got %v, want out-of-range", err)
	}
}

func TestNumberParserUnsigned(t *testing.T) {
	parser := prompt.NumberParser[uint8]()

	if got, err := parser("255", prompt.Locale{}); err != nil || got != 255 {
		t.Fatalf("parse 255: got %d, %v", got, err)
	}
	if _, err := parser("-1", prompt.Locale{}); err == nil {
		t.Fatal("negative input accepted by unsigned parser")
	}
	_, err := parser("300", prompt.Locale{})
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindOutOfRange {
		t.Fatalf("parse 300 into uint8: got %v, want out-of-range", err)
	}

	big := prompt.NumberParser[uint64]()
	if got, err := big("18446744073709551615", prompt.Locale{}); err != nil || got != math.MaxUint64 {
		t.Fatalf("parse max uint64: got %d, %v", got, err)
	}
}

func TestNumberParserFloat(t *testing.T) {
	parser := prompt.NumberParser[float64]()

	got, err := parser("3.25", prompt.Locale{})
	if err != nil || got != 3.25 {
		t.Fatalf("parse 3.25: got %v, %v", got, err)
	}

	inf, err := parser("Inf", prompt.Locale{})
	if err != nil || !math.IsInf(inf, 1) {
		t.Fatalf("parse Inf: got %v, %v", inf, err)
	}
	nan, err := parser("NaN", prompt.Locale{})
	if err != nil || !math.IsNaN(nan) {
		t.Fatalf("parse NaN: got %v, %v", nan, err)
	}

	_, err = parser("1e999", prompt.Locale{})
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindOutOfRange {
		t.Fatalf("parse 1e999: got %v, want out-of-range", err)
	}
}

func TestNumberParserFloat32Range(t *testing.T) {
	parser := prompt.NumberParser[float32]()

	if got, err := parser("1.5", prompt.Locale{}); err != nil || got != 1.5 {
		t.Fatalf("parse 1.5: got %v, %v", got, err)
	}
	_, err := parser("1e40", prompt.Locale{})
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindOutOfRange {
		t.Fatalf("parse 1e40 into float32: got %v, want out-of-range", err)
	}
}

func TestNumberParserDecimalSeparator(t *testing.T) {
	loc := prompt.Locale{DecimalSeparator: ','}

	got, err := prompt.NumberParser[float64]()("3,5", loc)
	if err != nil || got != 3.5 {
		t.Fatalf("parse 3,5 with comma locale: got %v, %v", got, err)
	}
}

type level int

func TestNumberParserDefinedType(t *testing.T) {
	got, err := prompt.NumberParser[level]()("7", prompt.Locale{})
	if err != nil || got != level(7) {
		t.Fatalf("parse defined type: got %v, %v", got, err)
	}
}

func TestDurationParser(t *testing.T) {
	got, err := prompt.DurationParser()("1h30m", prompt.Locale{})
	if err != nil || got != 90*time.Minute {
		t.Fatalf("parse 1h30m: got %v, %v", got, err)
	}
	_, err = prompt.DurationParser()("soon", prompt.Locale{})
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindMalformed {
		t.Fatalf("parse invalid duration: got %v, want malformed", err)
	}
}

func TestTextParser(t *testing.T) {
	parser := prompt.TextParser[time.Time]()

	got, err := parser("2026-08-25T10:00:00Z", prompt.Locale{})
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	want := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parsed %v, want %v", got, want)
	}

	_, err = parser("not a time", prompt.Locale{})
	if kind, ok := prompt.KindOf(err); !ok || kind != prompt.KindMalformed {
		t.Fatalf("invalid timestamp: got %v, want malformed", err)
	}
}

type widget struct{}

func TestTypeName(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{prompt.TypeName[string](), "text"},
		{prompt.TypeName[bool](), "yes/no"},
		{prompt.TypeName[int](), "integer"},
		{prompt.TypeName[uint32](), "integer"},
		{prompt.TypeName[float64](), "number"},
		{prompt.TypeName[time.Duration](), "duration"},
		{prompt.TypeName[time.Time](), "date/time"},
		{prompt.TypeName[widget](), "widget"},
		{prompt.TypeName[level](), "level"},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("TypeName = %q, want %q", tc.got, tc.want)
		}
	}
}
