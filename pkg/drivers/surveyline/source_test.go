package surveyline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateInterrupt(t *testing.T) {
	if got := translate(terminal.InterruptErr); !errors.Is(got, ErrAborted) {
		t.Fatalf("translate(InterruptErr) = %v, want ErrAborted", got)
	}

	wrapped := fmt.Errorf("ask: %w", terminal.InterruptErr)
	if got := translate(wrapped); !errors.Is(got, ErrAborted) {
		t.Fatalf("translate(wrapped interrupt) = %v, want ErrAborted", got)
	}
}

func TestTranslateKeepsOtherErrors(t *testing.T) {
	fault := errors.New("no tty")
	if got := translate(fault); !errors.Is(got, fault) {
		t.Fatalf("translate(%v) = %v, want the original error", fault, got)
	}
	if translate(nil) != nil {
		t.Fatal("translate(nil) should stay nil")
	}
}

func TestOptionsApply(t *testing.T) {
	s := New(WithMessage("Name"), WithHelp("your login"), nil)
	if s.message != "Name" {
		t.Fatalf("message = %q, want Name", s.message)
	}
	if s.help != "your login" {
		t.Fatalf("help = %q, want your login", s.help)
	}
	if len(s.ask) != 0 {
		t.Fatalf("ask opts = %d, want none", len(s.ask))
	}
}
