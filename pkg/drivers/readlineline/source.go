package readlineline

import (
	"errors"
	"io"

	"github.com/chzyer/readline"

	"github.com/goliatone/go-prompter/pkg/prompt"
)

// ErrInterrupted reports that the user pressed Ctrl+C during a read. Display
// surfaces it wrapped, so check with errors.Is.
var ErrInterrupted = errors.New("readlineline: interrupted")

// Reader is the reading side of a readline instance.
type Reader interface {
	Readline() (string, error)
}

// Source turns readline reads into prompt answers.
type Source struct {
	reader         Reader
	owned          *readline.Instance
	interruptEmpty bool
}

var _ prompt.LineSource = (*Source)(nil)

// Option configures a Source during construction.
type Option func(*Source)

// WithInterruptEmpty makes Ctrl+C read as an empty answer instead of
// aborting the prompt. The session then re-asks, with any empty-input
// validators still applying.
func WithInterruptEmpty() Option {
	return func(s *Source) {
		s.interruptEmpty = true
	}
}

// New builds a source over an existing reader, typically a
// *readline.Instance the caller configured and will close.
func New(r Reader, opts ...Option) (*Source, error) {
	if r == nil {
		return nil, errors.New("readlineline: reader is nil")
	}
	s := &Source{reader: r}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// NewTerminal builds a source over its own readline instance. A nil config
// gets a bare default. Close the source when the session is done with it.
func NewTerminal(cfg *readline.Config, opts ...Option) (*Source, error) {
	if cfg == nil {
		cfg = &readline.Config{InterruptPrompt: "^C"}
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	s, err := New(rl, opts...)
	if err != nil {
		return nil, err
	}
	s.owned = rl
	return s, nil
}

// ReadLine reads the next line. Ctrl+C aborts with ErrInterrupted unless
// WithInterruptEmpty was set, and an exhausted terminal reports io.EOF, which
// sessions read as an empty answer.
func (s *Source) ReadLine() (string, error) {
	line, err := s.reader.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		if s.interruptEmpty {
			return "", io.EOF
		}
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", err
	}
}

// Instance returns the readline instance NewTerminal created, nil for a
// source over a borrowed reader. Use it to adjust the terminal prompt or to
// write through its cooperative stdout while a read is active.
func (s *Source) Instance() *readline.Instance {
	return s.owned
}

// Close releases the instance NewTerminal created. Borrowed readers are left
// alone.
func (s *Source) Close() error {
	if s.owned == nil {
		return nil
	}
	return s.owned.Close()
}
