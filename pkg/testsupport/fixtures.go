// Package testsupport carries the shared fixtures the toolkit's tests build
// interactive sessions from: scripted line sources, captured output, and
// display helpers that keep the behavioural tests concise.
package testsupport

import (
	"bytes"
	"io"
	"testing"

	"github.com/goliatone/go-prompter/pkg/prompt"
)

// ScriptedSource replays canned answers one ReadLine at a time and reports
// io.EOF once they run out. It records how many reads happened so tests can
// assert a code path performed no I/O at all.
type ScriptedSource struct {
	lines []string
	pos   int
	calls int
}

// Lines builds a scripted source from the given answers.
func Lines(lines ...string) *ScriptedSource {
	return &ScriptedSource{lines: lines}
}

// ReadLine returns the next scripted answer, or io.EOF when exhausted.
func (s *ScriptedSource) ReadLine() (string, error) {
	s.calls++
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Remaining returns the answers not yet consumed.
func (s *ScriptedSource) Remaining() []string {
	if s.pos >= len(s.lines) {
		return nil
	}
	out := make([]string, len(s.lines)-s.pos)
	copy(out, s.lines[s.pos:])
	return out
}

// Calls reports how many times ReadLine ran, including EOF reads.
func (s *ScriptedSource) Calls() int { return s.calls }

// Session builds a prompter over scripted answers, returning the source and
// the buffer prompt output lands in alongside the session itself.
func Session(t *testing.T, lines ...string) (*prompt.Prompter, *ScriptedSource, *bytes.Buffer) {
	t.Helper()

	src := Lines(lines...)
	var out bytes.Buffer
	session := prompt.NewPrompter(
		prompt.WithSource(src),
		prompt.WithOutput(&out),
	)
	return session, src, &out
}

// MustDisplay runs the prompt's interactive loop and fails the test on any
// escaping error.
func MustDisplay[T any](t *testing.T, p *prompt.Prompt[T]) T {
	t.Helper()

	v, err := p.Display()
	if err != nil {
		t.Fatalf("display prompt: %v", err)
	}
	return v
}
