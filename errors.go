package prompter

import "github.com/goliatone/go-prompter/pkg/prompt"

// InputError describes input the user can correct by retyping.
type InputError = prompt.InputError

// Kind classifies the input errors Display treats as retryable.
type Kind = prompt.Kind

const (
	KindMalformed       = prompt.KindMalformed
	KindOutOfRange      = prompt.KindOutOfRange
	KindWrongLength     = prompt.KindWrongLength
	KindInvalidArgument = prompt.KindInvalidArgument
	KindPathTooLong     = prompt.KindPathTooLong
	KindNotSupported    = prompt.KindNotSupported
	KindNotImplemented  = prompt.KindNotImplemented
	KindRejected        = prompt.KindRejected
)

// ErrNoParser reports a prompt displayed before a parser was set.
var ErrNoParser = prompt.ErrNoParser

// IsInputError reports whether err is, or wraps, an *InputError.
func IsInputError(err error) bool { return prompt.IsInputError(err) }

// KindOf extracts the kind from err when it is, or wraps, an *InputError.
func KindOf(err error) (Kind, bool) { return prompt.KindOf(err) }

// Reject builds the retryable error custom validators return to re-ask with
// msg shown to the user.
func Reject(msg string) *InputError { return prompt.Reject(msg) }

// Rejectf is Reject with a formatted message.
func Rejectf(format string, args ...any) *InputError {
	return prompt.Rejectf(format, args...)
}
