package readlineline_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"

	"github.com/goliatone/go-prompter/pkg/drivers/readlineline"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// script replays canned readline results, then repeats io.EOF.
type script struct {
	lines []string
	errs  []error
}

func (s *script) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line, err := s.lines[0], s.errs[0]
	s.lines, s.errs = s.lines[1:], s.errs[1:]
	return line, err
}

func scripted(results ...any) *script {
	s := &script{}
	for _, r := range results {
		switch v := r.(type) {
		case string:
			s.lines = append(s.lines, v)
			s.errs = append(s.errs, nil)
		case error:
			s.lines = append(s.lines, "")
			s.errs = append(s.errs, v)
		}
	}
	return s
}

func TestNewRejectsNilReader(t *testing.T) {
	if _, err := readlineline.New(nil); err == nil {
		t.Fatal("expected an error for a nil reader")
	}
}

func TestReadLine(t *testing.T) {
	src, err := readlineline.New(scripted("first", "second"))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}

	for _, want := range []string{"first", "second"} {
		line, err := src.ReadLine()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if line != want {
			t.Fatalf("line = %q, want %q", line, want)
		}
	}

	if _, err := src.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("exhausted read err = %v, want io.EOF", err)
	}
}

func TestInterruptAborts(t *testing.T) {
	src, err := readlineline.New(scripted(readline.ErrInterrupt))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}

	if _, err := src.ReadLine(); !errors.Is(err, readlineline.ErrInterrupted) {
		t.Fatalf("interrupt err = %v, want ErrInterrupted", err)
	}
}

func TestInterruptEmptyOption(t *testing.T) {
	src, err := readlineline.New(
		scripted(readline.ErrInterrupt, "after"),
		readlineline.WithInterruptEmpty(),
	)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}

	line, err := src.ReadLine()
	if !errors.Is(err, io.EOF) || line != "" {
		t.Fatalf("interrupt read = %q, %v; want empty answer", line, err)
	}

	line, err = src.ReadLine()
	if err != nil || line != "after" {
		t.Fatalf("next read = %q, %v; want after", line, err)
	}
}

func TestReadFaultsPassThrough(t *testing.T) {
	fault := errors.New("terminal gone")
	src, err := readlineline.New(scripted(fault))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}

	if _, err := src.ReadLine(); !errors.Is(err, fault) {
		t.Fatalf("fault err = %v, want the original fault", err)
	}
}

func TestInterruptEscapesDisplay(t *testing.T) {
	src, err := readlineline.New(scripted("not a number", readline.ErrInterrupt))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}

	var out bytes.Buffer
	session := prompt.NewPrompter(prompt.WithSource(src), prompt.WithOutput(&out))

	_, err = prompt.ForNumber[int](session, "Count", false).Display()
	if !errors.Is(err, readlineline.ErrInterrupted) {
		t.Fatalf("display err = %v, want ErrInterrupted in the chain", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("Invalid input")) {
		t.Fatalf("output %q should show one retry before the interrupt", out.String())
	}
}

func TestCloseWithoutOwnedInstance(t *testing.T) {
	src, err := readlineline.New(scripted())
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("close borrowed source: %v", err)
	}
	if src.Instance() != nil {
		t.Fatal("borrowed source should have no owned instance")
	}
}
