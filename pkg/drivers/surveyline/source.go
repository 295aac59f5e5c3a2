package surveyline

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-prompter/pkg/prompt"
)

// ErrAborted signals the user aborted input with Ctrl+C.
var ErrAborted = errors.New("surveyline: aborted")

// Source asks a survey input per ReadLine. Sessions usually pair it with
// bare templates, since survey draws its own message and glyphs.
type Source struct {
	message string
	help    string
	ask     []survey.AskOpt
}

var _ prompt.LineSource = (*Source)(nil)

// Option configures a Source during construction.
type Option func(*Source)

// WithMessage sets the survey message drawn ahead of the input field. The
// session's own prompt text still goes to its output writer, so either leave
// this empty or silence the session templates.
func WithMessage(message string) Option {
	return func(s *Source) {
		s.message = message
	}
}

// WithHelp sets the survey help text shown on "?".
func WithHelp(help string) Option {
	return func(s *Source) {
		s.help = help
	}
}

// WithStdio redirects survey's terminal streams, which is how callers drive
// the source from a pseudo-terminal.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) Option {
	return func(s *Source) {
		s.ask = append(s.ask, survey.WithStdio(in, out, errOut))
	}
}

// New builds a terminal-backed source.
func New(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ReadLine asks one survey input and returns the typed answer. Ctrl+C
// surfaces as ErrAborted.
func (s *Source) ReadLine() (string, error) {
	var out string
	input := &survey.Input{
		Message: s.message,
		Help:    s.help,
	}
	if err := survey.AskOne(input, &out, s.ask...); err != nil {
		return "", translate(err)
	}
	return out, nil
}

// Confirm asks a survey yes/no question outside the session loop, answering
// def on enter.
func (s *Source) Confirm(message string, def bool) (bool, error) {
	var out bool
	confirm := &survey.Confirm{
		Message: message,
		Default: def,
		Help:    s.help,
	}
	if err := survey.AskOne(confirm, &out, s.ask...); err != nil {
		return false, translate(err)
	}
	return out, nil
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
